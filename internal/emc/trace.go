package emc

import "github.com/kyrarebuild/kyraconv/internal/vm"

// Syscall ids the trace driver recognizes as side-effecting draw/placement
// calls. Every other syscall id is observed (the dispatch still runs) but
// produces no record.
const (
	sysDrawSceneAnimShape  = 0x03
	sysDrawAnimShape       = 0x0D
	sysDrawItemShape       = 0x62
	sysDropItemInScene     = 0x0C
	sysItemAppearsOnGround = 0x7C
)

// SceneAnimShape is a recorded sceneAnimShape draw call.
type SceneAnimShape struct {
	Func  int32 `json:"func"`
	Shape int32 `json:"shape"`
	X     int32 `json:"x"`
	Y     int32 `json:"y"`
	Flags int32 `json:"flags"`
	Page  int32 `json:"page"`
}

// SceneShape is a recorded sceneShape draw call.
type SceneShape struct {
	Func  int32 `json:"func"`
	Shape int32 `json:"shape"`
	X     int32 `json:"x"`
	Y     int32 `json:"y"`
	Flags int32 `json:"flags"`
}

// ItemShape is a recorded itemShape draw call.
type ItemShape struct {
	Func        int32 `json:"func"`
	Item        int32 `json:"item"`
	X           int32 `json:"x"`
	Y           int32 `json:"y"`
	Flags       int32 `json:"flags"`
	OnlyHidPage int32 `json:"onlyHidPage"`
}

// DropItem is a recorded dropItem placement.
type DropItem struct {
	Func int32 `json:"func"`
	Item int32 `json:"item"`
	X    int32 `json:"x"`
	Y    int32 `json:"y"`
}

// GroundItem is a recorded groundItem placement.
type GroundItem struct {
	Func int32 `json:"func"`
	Item int32 `json:"item"`
	X    int32 `json:"x"`
	Y    int32 `json:"y"`
}

// Result collects every record discovered across all of a program's traced
// functions.
type Result struct {
	SceneAnimShapes []SceneAnimShape `json:"sceneAnimShapes"`
	SceneShapes     []SceneShape     `json:"sceneShapes"`
	ItemShapes      []ItemShape      `json:"itemShapes"`
	DropItems       []DropItem       `json:"dropItems"`
	GroundItems     []GroundItem     `json:"groundItems"`
}

// Extract traces every defined function in p with the given per-function
// step budget and returns every draw/placement record discovered along the
// way, in function-index then discovery order.
func Extract(p *Program, stepLimit int) *Result {
	r := &Result{}
	for _, fnIndex := range p.Functions() {
		start := int(p.Ordr[fnIndex])
		fn := int32(fnIndex)
		vm.Trace(p.Data, start, stepLimit, func(s *vm.State, id uint8) {
			switch id {
			case sysDrawSceneAnimShape:
				r.SceneAnimShapes = append(r.SceneAnimShapes, SceneAnimShape{
					Func: fn, Shape: s.StackAt(0), X: s.StackAt(1), Y: s.StackAt(2),
					Flags: s.StackAt(3), Page: s.StackAt(4),
				})
			case sysDrawAnimShape:
				r.SceneShapes = append(r.SceneShapes, SceneShape{
					Func: fn, Shape: s.StackAt(0), X: s.StackAt(1), Y: s.StackAt(2),
					Flags: s.StackAt(3),
				})
			case sysDrawItemShape:
				r.ItemShapes = append(r.ItemShapes, ItemShape{
					Func: fn, Item: s.StackAt(0), X: s.StackAt(1), Y: s.StackAt(2),
					Flags: s.StackAt(3), OnlyHidPage: s.StackAt(4),
				})
			case sysDropItemInScene:
				r.DropItems = append(r.DropItems, DropItem{
					Func: fn, Item: s.StackAt(0), X: s.StackAt(1), Y: s.StackAt(2),
				})
			case sysItemAppearsOnGround:
				r.GroundItems = append(r.GroundItems, GroundItem{
					Func: fn, Item: s.StackAt(0), X: s.StackAt(1), Y: s.StackAt(2),
				})
			}
		})
	}
	return r
}
