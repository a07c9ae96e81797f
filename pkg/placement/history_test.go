package placement

import (
	"testing"

	"github.com/philipparndt/goroom/pkg/geometry"
)

func TestPlaceUndoRedo(t *testing.T) {
	scene := NewScene()
	stack := NewCommandStack(scene, 0)

	obj := unitBoxObject()
	obj.Position = geometry.NewVector3(1, 0, 1)
	stack.Execute(NewPlaceCommand(obj))

	if !scene.Contains(obj) {
		t.Fatal("place did not add the object")
	}

	if !stack.Undo() {
		t.Fatal("undo failed")
	}
	if scene.Contains(obj) {
		t.Error("undo place must remove the object")
	}

	if !stack.Redo() {
		t.Fatal("redo failed")
	}
	if !scene.Contains(obj) {
		t.Error("redo place must re-add the object")
	}
	if obj.Position.Distance(geometry.NewVector3(1, 0, 1)) > 1e-9 {
		t.Errorf("redo place must restore the transform, got %+v", obj.Position)
	}
}

func TestMoveUndoRestoresTransform(t *testing.T) {
	scene := NewScene()
	stack := NewCommandStack(scene, 0)

	obj := unitBoxObject()
	stack.Execute(NewPlaceCommand(obj))

	before := CaptureState(obj)
	obj.Position = geometry.NewVector3(3, 0, -1)
	AlignToSurface(obj, geometry.NewVector3(1, 0, 0), AxisPlusY)
	stack.Record(NewMoveCommand(obj, before))

	stack.Undo()
	if obj.Position.Distance(before.Position) > 1e-9 {
		t.Errorf("undo move: position %+v", obj.Position)
	}
	if !obj.Rotation.EqualsOrientation(before.Rotation, 1e-9) {
		t.Errorf("undo move: rotation %+v", obj.Rotation)
	}
	if obj.HasSurface != before.HasSurface || obj.ContactAxis != before.ContactAxis {
		t.Error("undo move must restore surface metadata")
	}

	stack.Redo()
	if obj.Position.Distance(geometry.NewVector3(3, 0, -1)) > 1e-9 {
		t.Errorf("redo move: position %+v", obj.Position)
	}
}

func TestDeleteUndoRedo(t *testing.T) {
	scene := NewScene()
	stack := NewCommandStack(scene, 0)

	obj := unitBoxObject()
	obj.Position = geometry.NewVector3(2, 0, 2)
	stack.Execute(NewPlaceCommand(obj))
	stack.Execute(NewDeleteCommand(obj))

	if scene.Contains(obj) {
		t.Fatal("delete did not remove the object")
	}

	stack.Undo()
	if !scene.Contains(obj) {
		t.Error("undo delete must restore the object")
	}
	if obj.Position.Distance(geometry.NewVector3(2, 0, 2)) > 1e-9 {
		t.Errorf("undo delete must restore the transform, got %+v", obj.Position)
	}

	stack.Redo()
	if scene.Contains(obj) {
		t.Error("redo delete must remove the object again")
	}
}

func TestScaleUndo(t *testing.T) {
	scene := NewScene()
	stack := NewCommandStack(scene, 0)

	obj := unitBoxObject()
	stack.Execute(NewPlaceCommand(obj))

	before := CaptureState(obj)
	obj.Scale = obj.Scale.Mul(1.5)
	stack.Record(NewScaleCommand(obj, before))

	stack.Undo()
	if obj.Scale.Distance(before.Scale) > 1e-9 {
		t.Errorf("undo scale: %+v", obj.Scale)
	}
}

func TestHistoryBound(t *testing.T) {
	scene := NewScene()
	stack := NewCommandStack(scene, 3)

	obj := unitBoxObject()
	stack.Execute(NewPlaceCommand(obj))
	positions := []geometry.Vector3{
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(2, 0, 0),
		geometry.NewVector3(3, 0, 0),
	}
	for _, p := range positions {
		before := CaptureState(obj)
		obj.Position = p
		stack.Record(NewMoveCommand(obj, before))
	}

	if stack.UndoDepth() != 3 {
		t.Fatalf("expected depth capped at 3, got %d", stack.UndoDepth())
	}

	// The place command was evicted; undoing everything walks back the
	// moves but leaves the object in the scene at its first position
	for stack.Undo() {
	}
	if !scene.Contains(obj) {
		t.Error("evicted place must not be undone")
	}
	if obj.Position.X != 0 {
		t.Errorf("expected position back at origin, got %+v", obj.Position)
	}
}

func TestRedoClearedByNewCommand(t *testing.T) {
	scene := NewScene()
	stack := NewCommandStack(scene, 0)

	obj := unitBoxObject()
	stack.Execute(NewPlaceCommand(obj))

	before := CaptureState(obj)
	obj.Position = geometry.NewVector3(1, 0, 0)
	stack.Record(NewMoveCommand(obj, before))

	stack.Undo()
	if !stack.CanRedo() {
		t.Fatal("expected redo after undo")
	}

	before = CaptureState(obj)
	obj.Position = geometry.NewVector3(0, 0, 5)
	stack.Record(NewMoveCommand(obj, before))

	if stack.CanRedo() {
		t.Error("new command must clear the redo stack")
	}
	if stack.Redo() {
		t.Error("redo must fail after being cleared")
	}
}

func TestUndoEmpty(t *testing.T) {
	stack := NewCommandStack(NewScene(), 0)
	if stack.Undo() {
		t.Error("undo on empty history must fail")
	}
	if stack.CanUndo() {
		t.Error("empty history reports CanUndo")
	}
}
