package vm

// SyscallFunc is invoked for the sysCall opcode with the 8-bit syscall id.
// It may read the caller's arguments via s.StackAt but must not mutate the
// stack pointer; the interpreter resets RetValue to 0 immediately after the
// call returns, matching the reference machine's behavior of a syscall
// never itself yielding a value to scripts in this trace-only mode.
type SyscallFunc func(s *State, id uint8)

// Step executes exactly one instruction and reports whether the machine
// should continue. It returns false on every halting condition the
// reference machine defines: running off either end of the code, an
// unrecognized opcode, an out-of-range register index, or one of a handful
// of opcodes' own explicit "malformed call frame" guards. None of these are
// errors from the caller's point of view — a static trace simply stops
// discovering further side effects for that function.
func Step(s *State, onSyscall SyscallFunc) bool {
	if s.Halted {
		return false
	}
	if s.IP < 0 || s.IP >= len(s.Data) {
		return false
	}

	word := s.Data[s.IP]
	s.IP++

	var opcode int
	var param int32

	switch {
	case word&0x8000 != 0:
		opcode = 0
		param = int32(word & 0x7FFF)
	case word&0x4000 != 0:
		opcode = int((word >> 8) & 0x1F)
		param = int32(int8(word & 0xFF))
	case word&0x2000 != 0:
		opcode = int((word >> 8) & 0x1F)
		if s.IP >= len(s.Data) {
			return false
		}
		param = int32(int16(s.Data[s.IP]))
		s.IP++
	default:
		opcode = int((word >> 8) & 0x1F)
		param = 0
	}

	switch opcode {
	case 0: // jmp
		s.IP = int(param)

	case 1: // setRetValue
		s.RetValue = param

	case 2: // pushRetOrFrame
		switch param {
		case 0:
			s.push(s.RetValue)
		case 1:
			s.push(int32(s.IP + 1))
			s.push(int32(s.BP))
			s.BP = s.SP + 2
		default:
			return false
		}

	case 3, 4: // push
		s.push(param)

	case 5: // pushReg
		if param < 0 || int(param) >= NumRegs {
			return false
		}
		s.push(s.Regs[param])

	case 6: // pushBPNeg
		idx := s.BP - (int(param) + 2)
		s.push(s.stackGet(idx))

	case 7: // pushBPAdd
		idx := s.BP + (int(param) - 1)
		s.push(s.stackGet(idx))

	case 8: // popRetOrFrame
		switch param {
		case 0:
			s.RetValue = s.pop()
		case 1:
			if s.SP >= StackSize-1 {
				return false
			}
			s.BP = int(s.pop())
			s.IP = int(s.pop())
		default:
			return false
		}

	case 9: // popReg
		if param < 0 || int(param) >= NumRegs {
			return false
		}
		s.Regs[param] = s.pop()

	case 10: // popBPNeg
		idx := s.BP - (int(param) + 2)
		s.stackSet(idx, s.pop())

	case 11: // popBPAdd
		idx := s.BP + (int(param) - 1)
		s.stackSet(idx, s.pop())

	case 12: // addSP
		s.SP += int(param)

	case 13: // subSP
		s.SP -= int(param)

	case 14: // sysCall
		if onSyscall != nil {
			onSyscall(s, uint8(param&0xFF))
		}
		s.RetValue = 0

	case 15: // ifNotJmp
		if s.pop() == 0 {
			s.IP = int(param) & 0x7FFF
		}

	case 16: // negate
		v := s.stackGet(s.SP)
		switch param {
		case 0:
			if v == 0 {
				s.stackSet(s.SP, 1)
			} else {
				s.stackSet(s.SP, 0)
			}
		case 1:
			s.stackSet(s.SP, -v)
		case 2:
			s.stackSet(s.SP, ^v)
		default:
			return false
		}

	case 17: // eval
		v1 := s.pop()
		v2 := s.pop()
		ret, ok := evalBinOp(int(param), v1, v2)
		if !ok {
			return false
		}
		s.push(ret)

	case 18: // setRetAndJmp
		if s.SP >= StackSize-1 {
			return false
		}
		s.RetValue = s.pop()
		target := s.pop()
		s.Stack[StackSize-1] = 0
		s.IP = int(target)

	default:
		return false
	}

	return s.IP >= 0 && s.IP < len(s.Data)
}

// evalBinOp implements the eval opcode's 18 binary operators. v1 is the
// value popped first (the top of stack), v2 the value popped second, which
// matters for the non-commutative operators (subtract, divide, shift,
// modulo): they all compute against v2 as the left-hand operand.
func evalBinOp(op int, v1, v2 int32) (int32, bool) {
	switch op {
	case 0:
		return boolToI32(v2 != 0 && v1 != 0), true
	case 1:
		return boolToI32(v2 != 0 || v1 != 0), true
	case 2:
		return boolToI32(v1 == v2), true
	case 3:
		return boolToI32(v1 != v2), true
	case 4:
		return boolToI32(v1 > v2), true
	case 5:
		return boolToI32(v1 >= v2), true
	case 6:
		return boolToI32(v1 < v2), true
	case 7:
		return boolToI32(v1 <= v2), true
	case 8:
		return v1 + v2, true
	case 9:
		return v2 - v1, true
	case 10:
		return v1 * v2, true
	case 11:
		if v1 == 0 {
			return 0, true
		}
		return v2 / v1, true
	case 12:
		return v2 >> uint32(v1&31), true
	case 13:
		return v2 << uint32(v1&31), true
	case 14:
		return v1 & v2, true
	case 15:
		return v1 | v2, true
	case 16:
		if v1 == 0 {
			return 0, true
		}
		return floorMod(v2, v1), true
	case 17:
		return v1 ^ v2, true
	default:
		return 0, false
	}
}

func boolToI32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// floorMod computes Python-style floor modulo, where the result's sign
// matches the divisor rather than the dividend; the reference interpreter
// derives its remainder from true (floor) division, not truncation.
func floorMod(a, b int32) int32 {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}
