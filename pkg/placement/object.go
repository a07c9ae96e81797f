// Package placement is the surface-aware placement engine: it samples the
// room scan for position and normal, decides which face of a furniture
// model rests on a surface, keeps models upright on tilted surfaces,
// drives the interactive drag session and records every mutation for
// undo/redo.
package placement

import (
	"fmt"

	"github.com/philipparndt/goroom/pkg/geometry"
)

// ContactAxis is one of the six signed local cardinal directions of a
// model. It names the face that rests on a surface by the local direction
// that points along the surface normal (away from the surface), so an
// unrotated object standing on the floor has contact axis +Y.
type ContactAxis int

const (
	AxisPlusX ContactAxis = iota
	AxisMinusX
	AxisPlusY
	AxisMinusY
	AxisPlusZ
	AxisMinusZ
)

// DefaultContactAxis is used when an object is first placed: the bottom
// face rests on the surface.
const DefaultContactAxis = AxisPlusY

// contactAxes lists all axes in resolution order. The order is the
// tie-break for ResolveContactAxis and must stay stable.
var contactAxes = [6]ContactAxis{
	AxisPlusX, AxisMinusX, AxisPlusY, AxisMinusY, AxisPlusZ, AxisMinusZ,
}

// Vector returns the axis direction in the object's local space
func (a ContactAxis) Vector() geometry.Vector3 {
	switch a {
	case AxisPlusX:
		return geometry.NewVector3(1, 0, 0)
	case AxisMinusX:
		return geometry.NewVector3(-1, 0, 0)
	case AxisPlusY:
		return geometry.NewVector3(0, 1, 0)
	case AxisMinusY:
		return geometry.NewVector3(0, -1, 0)
	case AxisPlusZ:
		return geometry.NewVector3(0, 0, 1)
	default:
		return geometry.NewVector3(0, 0, -1)
	}
}

// String returns the axis name used in layout files
func (a ContactAxis) String() string {
	switch a {
	case AxisPlusX:
		return "+x"
	case AxisMinusX:
		return "-x"
	case AxisPlusY:
		return "+y"
	case AxisMinusY:
		return "-y"
	case AxisPlusZ:
		return "+z"
	default:
		return "-z"
	}
}

// ParseContactAxis parses an axis name from a layout file
func ParseContactAxis(s string) (ContactAxis, error) {
	for _, axis := range contactAxes {
		if axis.String() == s {
			return axis, nil
		}
	}
	return DefaultContactAxis, fmt.Errorf("unknown contact axis %q", s)
}

// PlacedObject is a furniture instance resting on a room surface
type PlacedObject struct {
	// EntryID links back to the furniture catalog entry
	EntryID string

	Position geometry.Vector3
	Rotation geometry.Quaternion
	// Scale is the current scale, BaseScale times any user adjustment
	Scale geometry.Vector3
	// BaseScale is derived from the entry's real-world dimensions and is
	// unaffected by interactive scaling
	BaseScale geometry.Vector3

	// Bounds are the unscaled local model bounds
	Bounds geometry.BoundingBox

	// SurfaceNormal is the world normal of the surface the object rests
	// on; only valid when HasSurface is true (an object has no surface
	// before its first placement)
	SurfaceNormal geometry.Vector3
	HasSurface    bool
	ContactAxis   ContactAxis
}

// NewPlacedObject creates an object for a catalog entry, not yet resting
// on any surface
func NewPlacedObject(entryID string, bounds geometry.BoundingBox, baseScale geometry.Vector3) *PlacedObject {
	return &PlacedObject{
		EntryID:     entryID,
		Rotation:    geometry.IdentityQuaternion(),
		Scale:       baseScale,
		BaseScale:   baseScale,
		Bounds:      bounds,
		ContactAxis: DefaultContactAxis,
	}
}

// HasGeometry reports whether the object has loaded geometry to bound.
// Objects without geometry cannot be placed or aligned.
func (o *PlacedObject) HasGeometry() bool {
	return o.Bounds.Min.X <= o.Bounds.Max.X &&
		o.Bounds.Min.Y <= o.Bounds.Max.Y &&
		o.Bounds.Min.Z <= o.Bounds.Max.Z
}

// ContactDepth returns the distance from the object origin to its contact
// face along the contact axis, in scaled local units. Positioning the
// origin this far along the surface normal from the hit point makes the
// contact face touch the mesh. Zero when the origin already sits on the
// contact face.
func (o *PlacedObject) ContactDepth() float64 {
	switch o.ContactAxis {
	case AxisPlusX:
		return -o.Bounds.Min.X * o.Scale.X
	case AxisMinusX:
		return o.Bounds.Max.X * o.Scale.X
	case AxisPlusY:
		return -o.Bounds.Min.Y * o.Scale.Y
	case AxisMinusY:
		return o.Bounds.Max.Y * o.Scale.Y
	case AxisPlusZ:
		return -o.Bounds.Min.Z * o.Scale.Z
	default:
		return o.Bounds.Max.Z * o.Scale.Z
	}
}

// WorldBounds returns the axis-aligned bounds of the scaled, rotated and
// translated object
func (o *PlacedObject) WorldBounds() geometry.BoundingBox {
	world := geometry.NewBoundingBox()
	for _, corner := range o.Bounds.Corners() {
		scaled := geometry.NewVector3(corner.X*o.Scale.X, corner.Y*o.Scale.Y, corner.Z*o.Scale.Z)
		world.Extend(o.Rotation.Apply(scaled).Add(o.Position))
	}
	return world
}
