package placement

import "github.com/philipparndt/goroom/pkg/geometry"

// ResolveContactAxis returns the local cardinal axis whose world direction
// under the given rotation points most along the surface normal. Ties are
// broken by enumeration order (+X, -X, +Y, -Y, +Z, -Z); exact ties only
// occur at 45 degree ambiguity.
//
// Called when an object is first placed (identity rotation picks the
// default bottom face) and when the user re-grabs an already placed
// object, so that manual rotation applied earlier defines the new bottom.
func ResolveContactAxis(rotation geometry.Quaternion, normal geometry.Vector3) ContactAxis {
	best := contactAxes[0]
	bestDot := rotation.Apply(best.Vector()).Dot(normal)

	for _, axis := range contactAxes[1:] {
		d := rotation.Apply(axis.Vector()).Dot(normal)
		if d > bestDot {
			best = axis
			bestDot = d
		}
	}
	return best
}
