package geometry

import "math"

// Plane is an infinite plane through a point with a unit normal
type Plane struct {
	Point  Vector3
	Normal Vector3
}

// NewPlane creates a plane through point with the given normal
func NewPlane(point, normal Vector3) Plane {
	return Plane{Point: point, Normal: normal.Normalize()}
}

// IntersectRay returns the intersection of the ray with the plane.
// Returns false when the ray is parallel to the plane or the intersection
// lies behind the ray origin.
func (p Plane) IntersectRay(r Ray) (Vector3, bool) {
	denom := p.Normal.Dot(r.Direction)
	if math.Abs(denom) < 1e-9 {
		return Vector3{}, false
	}
	t := p.Point.Sub(r.Origin).Dot(p.Normal) / denom
	if t < 0 {
		return Vector3{}, false
	}
	return r.At(t), true
}

// DistanceTo returns the signed distance from a point to the plane,
// positive on the normal side
func (p Plane) DistanceTo(point Vector3) float64 {
	return point.Sub(p.Point).Dot(p.Normal)
}
