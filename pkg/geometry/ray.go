package geometry

// Ray is a half-line with an origin and a normalized direction
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray, normalizing the direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// SurfaceHit is the result of intersecting a ray with scene geometry:
// the hit point, the surface normal there (unit length, pointing away from
// the solid side) and the distance from the ray origin.
type SurfaceHit struct {
	Point    Vector3
	Normal   Vector3
	Distance float64
}
