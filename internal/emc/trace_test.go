package emc

import "testing"

func word(opcode int, param int8) uint16 {
	return 0x4000 | uint16(opcode&0x1F)<<8 | uint16(uint8(param))
}

// sceneAnimShapeProgram builds a one-function program that pushes the five
// sceneAnimShape arguments (in reverse, so the first argument ends up
// nearest the top of the stack) and issues a single sysCall.
func sceneAnimShapeProgram(page, flags, y, x, shape int8, sysID int8) *Program {
	data := []uint16{
		word(3, page),
		word(4, flags),
		word(3, y),
		word(4, x),
		word(3, shape),
		word(14, sysID), // sysCall
	}
	return &Program{Ordr: []uint16{0}, Data: data}
}

func TestExtractCollectsSceneAnimShape(t *testing.T) {
	p := sceneAnimShapeProgram(9, 8, 30, 20, 5, sysDrawSceneAnimShape)
	r := Extract(p, 100)
	if len(r.SceneAnimShapes) != 1 {
		t.Fatalf("len(SceneAnimShapes) = %d, want 1", len(r.SceneAnimShapes))
	}
	got := r.SceneAnimShapes[0]
	want := SceneAnimShape{Func: 0, Shape: 5, X: 20, Y: 30, Flags: 8, Page: 9}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestExtractCollectsDropItem(t *testing.T) {
	data := []uint16{
		word(3, 7),  // y
		word(4, 4),  // x
		word(3, 12), // item
		word(14, sysDropItemInScene),
	}
	p := &Program{Ordr: []uint16{0}, Data: data}
	r := Extract(p, 100)
	if len(r.DropItems) != 1 {
		t.Fatalf("len(DropItems) = %d, want 1", len(r.DropItems))
	}
	want := DropItem{Func: 0, Item: 12, X: 4, Y: 7}
	if r.DropItems[0] != want {
		t.Fatalf("got %+v, want %+v", r.DropItems[0], want)
	}
}

func TestExtractSkipsUnsetFunctions(t *testing.T) {
	p := &Program{Ordr: []uint16{0xFFFF}, Data: []uint16{word(14, sysDropItemInScene)}}
	r := Extract(p, 100)
	if len(r.DropItems) != 0 {
		t.Fatalf("expected no records for an unset function slot, got %+v", r.DropItems)
	}
}

