package geometry

import "math"

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// CalculateNormal computes the normal vector from the vertex winding
func (t Triangle) CalculateNormal() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Length() / 2.0
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return Vector3{
		X: (t.V1.X + t.V2.X + t.V3.X) / 3.0,
		Y: (t.V1.Y + t.V2.Y + t.V3.Y) / 3.0,
		Z: (t.V1.Z + t.V2.Z + t.V3.Z) / 3.0,
	}
}

// IntersectRay intersects a ray with the triangle using the
// Möller–Trumbore algorithm. Returns the distance along the ray and
// whether the triangle was hit in front of the ray origin.
func (t Triangle) IntersectRay(r Ray) (float64, bool) {
	const epsilon = 1e-9

	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)

	h := r.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if math.Abs(a) < epsilon {
		return 0, false // Ray parallel to triangle plane
	}

	f := 1.0 / a
	s := r.Origin.Sub(t.V1)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * r.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	dist := f * edge2.Dot(q)
	if dist < epsilon {
		return 0, false
	}
	return dist, true
}
