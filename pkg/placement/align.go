package placement

import (
	"math"

	"github.com/philipparndt/goroom/pkg/geometry"
)

const (
	// Surfaces within ~25 degrees of horizontal need no upright
	// correction: the user's own rotation already defines the facing
	horizontalNormalY = 0.9

	// Projections shorter than this are treated as degenerate and the
	// upright correction is skipped for the frame
	degenerateProjection = 1e-3
)

// AlignToSurface rotates the object so its contact axis points along the
// surface normal, then corrects around the normal so the object's local up
// stays as close to world up as the surface allows. Updates the object's
// surface metadata. Calling it again with the same normal and axis leaves
// the rotation unchanged.
//
// Step 1 pre-multiplies the minimal rotation from the axis's current world
// direction onto the normal, preserving any twist the user has applied
// around the contact axis.
func AlignToSurface(obj *PlacedObject, normal geometry.Vector3, axis ContactAxis) {
	normal = normal.Normalize()

	worldAxis := obj.Rotation.Apply(axis.Vector())
	delta := geometry.QuaternionBetween(worldAxis.Normalize(), normal)
	obj.Rotation = delta.Mul(obj.Rotation).Normalize()

	uprightCorrect(obj, normal)

	obj.SurfaceNormal = normal
	obj.HasSurface = true
	obj.ContactAxis = axis
}

// uprightCorrect rotates the object around the surface normal so that the
// projection of its local up onto the surface plane matches the projection
// of world up. Skipped for near-horizontal surfaces and for degenerate
// projections (normal nearly parallel to either up vector).
func uprightCorrect(obj *PlacedObject, normal geometry.Vector3) {
	if math.Abs(normal.Y) > horizontalNormalY {
		return
	}

	worldUp := geometry.NewVector3(0, 1, 0)
	objectUp := obj.Rotation.Apply(worldUp)

	projWorld := worldUp.Sub(normal.Mul(worldUp.Dot(normal)))
	projObject := objectUp.Sub(normal.Mul(objectUp.Dot(normal)))
	if projWorld.Length() < degenerateProjection || projObject.Length() < degenerateProjection {
		return
	}

	projWorld = projWorld.Normalize()
	projObject = projObject.Normalize()

	// Signed angle from the object's projected up to the world's,
	// measured around the surface normal
	angle := math.Atan2(projObject.Cross(projWorld).Dot(normal), projObject.Dot(projWorld))
	if angle == 0 {
		return
	}

	correction := geometry.QuaternionFromAxisAngle(normal, angle)
	obj.Rotation = correction.Mul(obj.Rotation).Normalize()
}
