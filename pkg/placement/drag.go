package placement

import (
	"math"

	"github.com/philipparndt/goroom/pkg/geometry"
)

// DragState is the pointer interaction state
type DragState int

const (
	// StateIdle: no interaction in progress
	StateIdle DragState = iota
	// StateArmed: pointer went down on a placed object but movement has
	// not exceeded the drag threshold yet; release here is a select click
	StateArmed
	// StateDragging: the object follows the pointer across the surface
	StateDragging
)

const (
	// DragThresholdPx is the screen-space movement below which a
	// down/up pair counts as a click instead of a drag
	DragThresholdPx = 5.0

	// surfaceToleranceDeg is how far a sampled normal may deviate from
	// the spawn surface normal before the drag treats it as a different
	// surface and holds position
	surfaceToleranceDeg = 15.0

	// probeLift raises the probe ray origin above the candidate point
	// so the down-cast starts clear of the surface
	probeLift = 0.25

	// probeRange bounds the probe ray: surfaces further away than this
	// below the drag plane are not the surface being dragged along
	probeRange = 3.0
)

// dragSession is the scratch state of one drag, created on entering
// StateDragging and discarded on release or cancel. Keeping it per
// interaction (instead of long-lived controller fields) makes the
// lifecycle explicit: no stale spawn normal or grab offset can leak into
// the next drag.
type dragSession struct {
	object      *PlacedObject
	axis        ContactAxis
	spawnNormal geometry.Vector3
	plane       geometry.Plane
	grabOffset  geometry.Vector3
	normals     *NormalHistory

	lastValidPos geometry.Vector3

	start   TransformState
	placing bool
}

// DragController owns the interactive placement and move session: it maps
// pointer events onto the scene, slides objects across the room mesh with
// normal smoothing, and emits a command into the history on release.
//
// When the pointer crosses onto a surface whose normal is outside the
// spawn tolerance (floor to wall, for example), the controller holds the
// object at its last valid transform until the pointer returns to a
// compatible surface. The alternative of immediately re-resolving the
// contact axis and snapping to the new surface makes objects jump between
// surfaces mid-drag; the sticky behavior keeps them predictable.
type DragController struct {
	scene   *Scene
	camera  Camera
	mesh    Raycaster
	history *CommandStack

	// Threshold is the click-vs-drag distance in screen pixels
	Threshold float64
	// SurfaceToleranceCos is the minimum dot product between a sampled
	// normal and the spawn normal for the sample to count as the same
	// surface
	SurfaceToleranceCos float64

	state         DragState
	activePointer int
	target        *PlacedObject
	downX, downY  float64
	session       *dragSession

	rotateStart *TransformState
	scaleStart  *TransformState
}

// NewDragController wires the controller to the scene, camera, room mesh
// and command history
func NewDragController(scene *Scene, camera Camera, mesh Raycaster, history *CommandStack) *DragController {
	return &DragController{
		scene:               scene,
		camera:              camera,
		mesh:                mesh,
		history:             history,
		Threshold:           DragThresholdPx,
		SurfaceToleranceCos: math.Cos(surfaceToleranceDeg * math.Pi / 180),
		activePointer:       -1,
	}
}

// State returns the current interaction state
func (c *DragController) State() DragState {
	return c.state
}

// HoveredObject returns the placed object under the screen position
func (c *DragController) HoveredObject(x, y float64) (*PlacedObject, bool) {
	obj, _, ok := c.scene.ObjectAt(c.camera.ScreenRay(x, y))
	return obj, ok
}

// PointerDown starts an interaction. Only the primary pointer is
// accepted; a second touch during a drag is ignored.
func (c *DragController) PointerDown(pointerID int, x, y float64) {
	if c.state != StateIdle || pointerID != 0 {
		return
	}

	obj, _, ok := c.scene.ObjectAt(c.camera.ScreenRay(x, y))
	if !ok {
		c.scene.ClearSelection()
		return
	}

	c.state = StateArmed
	c.activePointer = pointerID
	c.target = obj
	c.downX, c.downY = x, y
}

// PointerMove updates an active interaction. In StateArmed, exceeding the
// drag threshold begins the drag; in StateDragging the object follows the
// pointer.
func (c *DragController) PointerMove(pointerID int, x, y float64) {
	if pointerID != c.activePointer {
		return
	}

	switch c.state {
	case StateArmed:
		dx, dy := x-c.downX, y-c.downY
		if math.Hypot(dx, dy) > c.Threshold {
			c.beginDrag(x, y)
			// Apply the displacement of the move that crossed the
			// threshold; beginDrag resets on a degenerate plane
			// intersection, so re-check the state
			if c.state == StateDragging {
				c.dragStep(x, y)
			}
		}
	case StateDragging:
		c.dragStep(x, y)
	}
}

// PointerUp finishes an interaction: a short press selects, a drag
// finalizes the transform and records a command
func (c *DragController) PointerUp(pointerID int, x, y float64) {
	if pointerID != c.activePointer {
		return
	}

	switch c.state {
	case StateArmed:
		c.scene.Select(c.target)
	case StateDragging:
		c.finishDrag()
	}
	c.reset()
}

// Cancel abandons the interaction (touch interruption, modal UI taking
// focus). A drag keeps its last valid transform, an open rotate or scale
// session rolls back to its start state, and no command is recorded.
func (c *DragController) Cancel() {
	if c.state == StateDragging && c.session != nil {
		c.session.object.Position = c.session.lastValidPos
	}
	if obj := c.scene.Selected(); obj != nil {
		if c.rotateStart != nil {
			c.rotateStart.applyTo(obj)
		}
		if c.scaleStart != nil {
			c.scaleStart.applyTo(obj)
		}
	}
	c.rotateStart = nil
	c.scaleStart = nil
	c.reset()
}

func (c *DragController) reset() {
	c.state = StateIdle
	c.activePointer = -1
	c.target = nil
	if c.session != nil {
		c.session.normals.Clear()
		c.session = nil
	}
}

// beginDrag captures the spawn surface and grab offset and enters
// StateDragging
func (c *DragController) beginDrag(x, y float64) {
	obj := c.target

	spawn := geometry.NewVector3(0, 1, 0)
	if obj.HasSurface {
		spawn = obj.SurfaceNormal
	}

	// The drag plane passes through the grab point on the spawn
	// surface; the grab offset keeps the object from snapping its
	// origin to the pointer
	plane := geometry.NewPlane(obj.Position, spawn)
	grabPoint, ok := plane.IntersectRay(c.camera.ScreenRay(c.downX, c.downY))
	if !ok {
		c.reset()
		return
	}

	c.session = &dragSession{
		object: obj,
		// Re-derive the axis from the current orientation so manual
		// rotation applied earlier defines the bottom face
		axis:         ResolveContactAxis(obj.Rotation, spawn),
		spawnNormal:  spawn,
		plane:        geometry.NewPlane(grabPoint, spawn),
		grabOffset:   grabPoint.Sub(obj.Position),
		normals:      NewNormalHistory(NormalHistoryDepth),
		lastValidPos: obj.Position,
		start:        CaptureState(obj),
	}
	c.scene.Select(obj)
	c.state = StateDragging
}

// BeginPlacement starts a drag session for a newly created object that
// has just been placed under the pointer, so the user can slide it into
// position before release. The object must already be aligned and in the
// scene; release records a Place command instead of a Move.
func (c *DragController) BeginPlacement(obj *PlacedObject, x, y float64) bool {
	if c.state != StateIdle || !c.scene.Contains(obj) || !obj.HasSurface {
		return false
	}
	c.state = StateArmed
	c.activePointer = 0
	c.target = obj
	c.downX, c.downY = x, y
	c.beginDrag(x, y)
	if c.session == nil {
		return false
	}
	c.session.placing = true
	return true
}

// dragStep slides the object to follow the pointer: intersect the pointer
// ray with the drag plane, probe the mesh below the candidate, and
// re-align on the smoothed normal. Out-of-tolerance or missing surface
// holds the last valid transform.
func (c *DragController) dragStep(x, y float64) {
	s := c.session
	obj := s.object

	planePoint, ok := s.plane.IntersectRay(c.camera.ScreenRay(x, y))
	if !ok {
		obj.Position = s.lastValidPos
		return
	}
	candidate := planePoint.Sub(s.grabOffset)

	// Probe from slightly above the candidate, against the spawn
	// normal, to find the actual surface under it
	origin := candidate.Add(s.spawnNormal.Mul(probeLift + obj.ContactDepth()))
	hit, ok := c.mesh.Raycast(geometry.NewRay(origin, s.spawnNormal.Negate()))

	if !ok || hit.Distance > probeRange || hit.Normal.Dot(s.spawnNormal) < c.SurfaceToleranceCos {
		// Different surface type or a gap in the scan: hold position
		// rather than flying off or penetrating geometry
		obj.Position = s.lastValidPos
		return
	}

	s.normals.Push(hit.Normal)
	smoothed := s.normals.Average()

	obj.Position = hit.Point.Add(smoothed.Mul(obj.ContactDepth()))
	AlignToSurface(obj, smoothed, s.axis)

	s.lastValidPos = obj.Position
}

// finishDrag records the net mutation of the drag, if any
func (c *DragController) finishDrag() {
	s := c.session
	obj := s.object

	if s.placing {
		c.history.Record(NewPlaceCommand(obj))
		return
	}

	moved := s.start.Position.Distance(obj.Position) > 1e-9 ||
		!s.start.Rotation.EqualsOrientation(obj.Rotation, 1e-9)
	if moved {
		c.history.Record(NewMoveCommand(obj, s.start))
	}
}

// PlaceFurniture creates an object for a catalog entry, aligns it onto
// the given surface hit and executes a Place command. Returns nil when
// the object has no geometry to bound (the placement aborts without
// touching the history).
func (c *DragController) PlaceFurniture(entryID string, bounds geometry.BoundingBox, baseScale geometry.Vector3, hit geometry.SurfaceHit) *PlacedObject {
	obj := NewPlacedObject(entryID, bounds, baseScale)
	if !obj.HasGeometry() {
		return nil
	}

	AlignToSurface(obj, hit.Normal, DefaultContactAxis)
	obj.Position = hit.Point.Add(obj.SurfaceNormal.Mul(obj.ContactDepth()))

	c.history.Execute(NewPlaceCommand(obj))
	c.scene.Select(obj)
	return obj
}

// DeleteSelected removes the selected object through the history.
// Returns false when nothing is selected or a drag is active.
func (c *DragController) DeleteSelected() bool {
	obj := c.scene.Selected()
	if obj == nil || c.state != StateIdle {
		return false
	}
	c.history.Execute(NewDeleteCommand(obj))
	return true
}

// BeginRotate opens a discrete rotate session on the selected object
func (c *DragController) BeginRotate() bool {
	if c.scene.Selected() == nil || c.state != StateIdle || c.rotateStart != nil {
		return false
	}
	start := CaptureState(c.scene.Selected())
	c.rotateStart = &start
	return true
}

// RotateBy spins the selected object by angle radians around its surface
// normal (world up before first placement), keeping the contact
// invariant intact
func (c *DragController) RotateBy(angle float64) {
	obj := c.scene.Selected()
	if obj == nil || c.rotateStart == nil {
		return
	}
	axis := geometry.NewVector3(0, 1, 0)
	if obj.HasSurface {
		axis = obj.SurfaceNormal
	}
	obj.Rotation = geometry.QuaternionFromAxisAngle(axis, angle).Mul(obj.Rotation).Normalize()
}

// EndRotate closes the rotate session, recording a Rotate command when
// the rotation changed
func (c *DragController) EndRotate() {
	obj := c.scene.Selected()
	if c.rotateStart == nil {
		return
	}
	if obj != nil && !c.rotateStart.Rotation.EqualsOrientation(obj.Rotation, 1e-9) {
		c.history.Record(NewRotateCommand(obj, *c.rotateStart))
	}
	c.rotateStart = nil
}

// BeginScale opens a discrete scale session on the selected object
func (c *DragController) BeginScale() bool {
	if c.scene.Selected() == nil || c.state != StateIdle || c.scaleStart != nil {
		return false
	}
	start := CaptureState(c.scene.Selected())
	c.scaleStart = &start
	return true
}

// ScaleBy multiplies the selected object's scale by factor, shifting the
// object along its surface normal so the contact face stays on the
// surface
func (c *DragController) ScaleBy(factor float64) {
	obj := c.scene.Selected()
	if obj == nil || c.scaleStart == nil || factor <= 0 {
		return
	}
	before := obj.ContactDepth()
	obj.Scale = obj.Scale.Mul(factor)
	if obj.HasSurface {
		obj.Position = obj.Position.Add(obj.SurfaceNormal.Mul(obj.ContactDepth() - before))
	}
}

// EndScale closes the scale session, recording a Scale command when the
// scale changed
func (c *DragController) EndScale() {
	obj := c.scene.Selected()
	if c.scaleStart == nil {
		return
	}
	if obj != nil && c.scaleStart.Scale.Distance(obj.Scale) > 1e-12 {
		c.history.Record(NewScaleCommand(obj, *c.scaleStart))
	}
	c.scaleStart = nil
}
