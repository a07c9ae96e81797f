package placement

import (
	"testing"

	"github.com/philipparndt/goroom/pkg/geometry"
)

func newTestController(mesh Raycaster) (*Scene, *CommandStack, *DragController) {
	scene := NewScene()
	stack := NewCommandStack(scene, 0)
	ctrl := NewDragController(scene, downCamera{}, mesh, stack)
	return scene, stack, ctrl
}

func floorHit() geometry.SurfaceHit {
	return geometry.SurfaceHit{
		Point:    geometry.NewVector3(0, 0, 0),
		Normal:   geometry.NewVector3(0, 1, 0),
		Distance: 10,
	}
}

func testBounds() geometry.BoundingBox {
	return geometry.BoundingBox{
		Min: geometry.NewVector3(-0.5, 0, -0.5),
		Max: geometry.NewVector3(0.5, 1, 0.5),
	}
}

func TestPlaceFurnitureOnFloor(t *testing.T) {
	scene, stack, ctrl := newTestController(flatFloor())

	obj := ctrl.PlaceFurniture("chair-01", testBounds(), geometry.NewVector3(1, 1, 1), floorHit())
	if obj == nil {
		t.Fatal("placement failed")
	}
	if !scene.Contains(obj) {
		t.Error("placed object missing from scene")
	}
	if scene.Selected() != obj {
		t.Error("placed object should be selected")
	}
	if !obj.Rotation.EqualsOrientation(geometry.IdentityQuaternion(), 1e-9) {
		t.Errorf("floor placement changed rotation: %+v", obj.Rotation)
	}
	if obj.Position.Distance(geometry.Vector3{}) > 1e-9 {
		t.Errorf("origin-on-bottom model should sit at the hit point, got %+v", obj.Position)
	}
	if stack.UndoDepth() != 1 {
		t.Errorf("expected 1 undoable command, got %d", stack.UndoDepth())
	}
}

func TestPlaceFurnitureNoGeometry(t *testing.T) {
	_, stack, ctrl := newTestController(flatFloor())

	empty := geometry.NewBoundingBox()
	if obj := ctrl.PlaceFurniture("broken-07", empty, geometry.NewVector3(1, 1, 1), floorHit()); obj != nil {
		t.Error("expected placement of empty geometry to abort")
	}
	if stack.UndoDepth() != 0 {
		t.Error("aborted placement must not touch the history")
	}
}

func TestClickSelectsWithoutMoving(t *testing.T) {
	scene, stack, ctrl := newTestController(flatFloor())
	obj := ctrl.PlaceFurniture("chair-01", testBounds(), geometry.NewVector3(1, 1, 1), floorHit())
	scene.ClearSelection()
	depth := stack.UndoDepth()

	ctrl.PointerDown(0, 0, 0)
	ctrl.PointerMove(0, 4, 0)
	ctrl.PointerUp(0, 4, 0)

	if scene.Selected() != obj {
		t.Error("short press must select the object")
	}
	if obj.Position.Distance(geometry.Vector3{}) > 1e-9 {
		t.Errorf("sub-threshold movement must not move the object, got %+v", obj.Position)
	}
	if stack.UndoDepth() != depth {
		t.Error("a click must not record a command")
	}
	if ctrl.State() != StateIdle {
		t.Errorf("controller not idle after click, state %d", ctrl.State())
	}
}

func TestDragMovesAndRecordsCommand(t *testing.T) {
	_, stack, ctrl := newTestController(flatFloor())
	obj := ctrl.PlaceFurniture("chair-01", testBounds(), geometry.NewVector3(1, 1, 1), floorHit())
	depth := stack.UndoDepth()

	ctrl.PointerDown(0, 0, 0)
	ctrl.PointerMove(0, 20, 0)
	if ctrl.State() != StateDragging {
		t.Fatalf("expected dragging after threshold, state %d", ctrl.State())
	}
	ctrl.PointerMove(0, 100, 0)
	ctrl.PointerUp(0, 100, 0)

	want := geometry.NewVector3(100*pixelScale, 0, 0)
	if obj.Position.Distance(want) > 1e-9 {
		t.Errorf("expected position %+v, got %+v", want, obj.Position)
	}
	if stack.UndoDepth() != depth+1 {
		t.Fatalf("expected one move command, depth %d", stack.UndoDepth())
	}

	stack.Undo()
	if obj.Position.Distance(geometry.Vector3{}) > 1e-9 {
		t.Errorf("undo must restore the pre-drag position, got %+v", obj.Position)
	}
}

func TestDragThresholdMoveApplies(t *testing.T) {
	// The move event that crosses the threshold both starts the drag and
	// carries its own displacement; the object must not lag one event
	_, _, ctrl := newTestController(flatFloor())
	obj := ctrl.PlaceFurniture("chair-01", testBounds(), geometry.NewVector3(1, 1, 1), floorHit())

	ctrl.PointerDown(0, 0, 0)
	ctrl.PointerMove(0, 30, 0)

	if ctrl.State() != StateDragging {
		t.Fatalf("expected dragging after threshold, state %d", ctrl.State())
	}
	want := geometry.NewVector3(30*pixelScale, 0, 0)
	if obj.Position.Distance(want) > 1e-9 {
		t.Errorf("threshold-crossing move must move the object to %+v, got %+v", want, obj.Position)
	}
	ctrl.PointerUp(0, 30, 0)
}

func TestDragHoldsAtIncompatibleSurface(t *testing.T) {
	// Floor turns into a wall past x=0.5: dragging across must hold the
	// object at the last valid floor position instead of jumping
	mesh := meshFunc(func(ray geometry.Ray) (geometry.SurfaceHit, bool) {
		hit, ok := flatFloor()(ray)
		if ok && hit.Point.X > 0.5 {
			hit.Normal = geometry.NewVector3(1, 0, 0)
		}
		return hit, ok
	})
	_, stack, ctrl := newTestController(mesh)
	obj := ctrl.PlaceFurniture("chair-01", testBounds(), geometry.NewVector3(1, 1, 1), floorHit())
	depth := stack.UndoDepth()

	ctrl.PointerDown(0, 0, 0)
	ctrl.PointerMove(0, 10, 0)
	ctrl.PointerMove(0, 30, 0)
	ctrl.PointerMove(0, 100, 0)

	lastValid := geometry.NewVector3(0.3, 0, 0)
	if obj.Position.Distance(lastValid) > 1e-9 {
		t.Errorf("expected hold at %+v, got %+v", lastValid, obj.Position)
	}
	if !obj.Rotation.EqualsOrientation(geometry.IdentityQuaternion(), 1e-9) {
		t.Error("held object must keep its floor orientation")
	}

	ctrl.PointerUp(0, 100, 0)
	if stack.UndoDepth() != depth+1 {
		t.Errorf("drag ending on hold still records the net move, depth %d", stack.UndoDepth())
	}
}

func TestDragCancel(t *testing.T) {
	_, stack, ctrl := newTestController(flatFloor())
	obj := ctrl.PlaceFurniture("chair-01", testBounds(), geometry.NewVector3(1, 1, 1), floorHit())
	depth := stack.UndoDepth()

	ctrl.PointerDown(0, 0, 0)
	ctrl.PointerMove(0, 30, 0)
	ctrl.Cancel()

	if stack.UndoDepth() != depth {
		t.Error("cancel must not record a command")
	}
	if obj.Position.Distance(geometry.NewVector3(0.3, 0, 0)) > 1e-9 {
		t.Errorf("cancel keeps the last valid position, got %+v", obj.Position)
	}
	if ctrl.State() != StateIdle {
		t.Error("controller not idle after cancel")
	}
}

func TestSecondaryPointerIgnored(t *testing.T) {
	_, _, ctrl := newTestController(flatFloor())
	ctrl.PlaceFurniture("chair-01", testBounds(), geometry.NewVector3(1, 1, 1), floorHit())

	ctrl.PointerDown(1, 0, 0)
	if ctrl.State() != StateIdle {
		t.Error("secondary pointer must not start an interaction")
	}

	ctrl.PointerDown(0, 0, 0)
	ctrl.PointerMove(1, 200, 0)
	if ctrl.State() != StateArmed {
		t.Error("secondary pointer must not advance the state machine")
	}
	ctrl.PointerUp(0, 0, 0)
}

func TestBeginPlacementRecordsPlace(t *testing.T) {
	scene, stack, ctrl := newTestController(flatFloor())

	obj := NewPlacedObject("table-02", testBounds(), geometry.NewVector3(1, 1, 1))
	AlignToSurface(obj, geometry.NewVector3(0, 1, 0), DefaultContactAxis)
	scene.Add(obj)

	if !ctrl.BeginPlacement(obj, 0, 0) {
		t.Fatal("begin placement failed")
	}
	ctrl.PointerMove(0, 50, 0)
	ctrl.PointerUp(0, 50, 0)

	if stack.UndoDepth() != 1 {
		t.Fatalf("expected a place command, depth %d", stack.UndoDepth())
	}
	stack.Undo()
	if scene.Contains(obj) {
		t.Error("undo of drag-in placement must remove the object")
	}
}

func TestRotateScaleSessions(t *testing.T) {
	scene, stack, ctrl := newTestController(flatFloor())
	obj := ctrl.PlaceFurniture("chair-01", testBounds(), geometry.NewVector3(1, 1, 1), floorHit())
	depth := stack.UndoDepth()

	if !ctrl.BeginRotate() {
		t.Fatal("begin rotate failed")
	}
	ctrl.RotateBy(0.5)
	ctrl.RotateBy(0.25)
	ctrl.EndRotate()

	want := geometry.QuaternionFromAxisAngle(geometry.NewVector3(0, 1, 0), 0.75)
	if !obj.Rotation.EqualsOrientation(want, 1e-9) {
		t.Errorf("expected 0.75 rad yaw, got %+v", obj.Rotation)
	}
	if stack.UndoDepth() != depth+1 {
		t.Fatalf("rotate session must record one command, depth %d", stack.UndoDepth())
	}

	if !ctrl.BeginScale() {
		t.Fatal("begin scale failed")
	}
	ctrl.ScaleBy(2)
	ctrl.EndScale()
	if obj.Scale.X != 2 {
		t.Errorf("expected scale 2, got %+v", obj.Scale)
	}
	if stack.UndoDepth() != depth+2 {
		t.Fatalf("scale session must record one command, depth %d", stack.UndoDepth())
	}

	stack.Undo()
	stack.Undo()
	if !obj.Rotation.EqualsOrientation(geometry.IdentityQuaternion(), 1e-9) {
		t.Errorf("undo must restore identity rotation, got %+v", obj.Rotation)
	}
	if obj.Scale.X != 1 {
		t.Errorf("undo must restore scale 1, got %+v", obj.Scale)
	}

	scene.ClearSelection()
	if ctrl.BeginRotate() {
		t.Error("rotate without selection must fail")
	}
}

func TestCancelRollsBackRotateScaleSessions(t *testing.T) {
	_, stack, ctrl := newTestController(flatFloor())
	obj := ctrl.PlaceFurniture("chair-01", testBounds(), geometry.NewVector3(1, 1, 1), floorHit())
	depth := stack.UndoDepth()

	if !ctrl.BeginRotate() {
		t.Fatal("begin rotate failed")
	}
	ctrl.RotateBy(0.5)
	ctrl.Cancel()

	if !obj.Rotation.EqualsOrientation(geometry.IdentityQuaternion(), 1e-9) {
		t.Errorf("cancel must roll the rotation back, got %+v", obj.Rotation)
	}
	if stack.UndoDepth() != depth {
		t.Error("cancelled rotate must not record a command")
	}
	if !ctrl.BeginRotate() {
		t.Error("rotate session must be available again after cancel")
	}
	ctrl.EndRotate()

	if !ctrl.BeginScale() {
		t.Fatal("begin scale failed")
	}
	ctrl.ScaleBy(2)
	ctrl.Cancel()

	if obj.Scale.X != 1 {
		t.Errorf("cancel must roll the scale back, got %+v", obj.Scale)
	}
	if stack.UndoDepth() != depth {
		t.Error("cancelled scale must not record a command")
	}
	if !ctrl.BeginScale() {
		t.Error("scale session must be available again after cancel")
	}
	ctrl.EndScale()
}

func TestDeleteSelected(t *testing.T) {
	scene, stack, ctrl := newTestController(flatFloor())
	obj := ctrl.PlaceFurniture("chair-01", testBounds(), geometry.NewVector3(1, 1, 1), floorHit())

	if !ctrl.DeleteSelected() {
		t.Fatal("delete failed")
	}
	if scene.Contains(obj) {
		t.Error("object still in scene after delete")
	}

	stack.Undo()
	if !scene.Contains(obj) {
		t.Error("undo delete must restore the object")
	}

	scene.ClearSelection()
	if ctrl.DeleteSelected() {
		t.Error("delete without selection must fail")
	}
}
