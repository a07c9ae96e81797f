package geometry

import (
	"math"
	"testing"
)

func TestTriangleCalculateNormal(t *testing.T) {
	// Counter-clockwise triangle in the XZ plane, normal should point up
	tri := NewTriangle(Vector3{},
		NewVector3(0, 0, 0),
		NewVector3(0, 0, 1),
		NewVector3(1, 0, 0),
	)

	normal := tri.CalculateNormal()
	expected := NewVector3(0, 1, 0)
	if !vecApproxEqual(normal, expected, 1e-10) {
		t.Errorf("expected normal %v, got %v", expected, normal)
	}
}

func TestTriangleArea(t *testing.T) {
	tri := NewTriangle(Vector3{},
		NewVector3(0, 0, 0),
		NewVector3(2, 0, 0),
		NewVector3(0, 2, 0),
	)

	expected := 2.0
	if math.Abs(tri.Area()-expected) > 1e-10 {
		t.Errorf("expected area %v, got %v", expected, tri.Area())
	}
}

func TestTriangleIntersectRay(t *testing.T) {
	// Floor triangle at y=1
	tri := NewTriangle(Vector3{},
		NewVector3(-10, 1, -10),
		NewVector3(10, 1, -10),
		NewVector3(0, 1, 10),
	)

	ray := NewRay(NewVector3(0, 5, 0), NewVector3(0, -1, 0))
	dist, hit := tri.IntersectRay(ray)
	if !hit {
		t.Fatal("expected ray to hit triangle")
	}
	if math.Abs(dist-4.0) > 1e-9 {
		t.Errorf("expected distance 4, got %v", dist)
	}
}

func TestTriangleIntersectRayMiss(t *testing.T) {
	tri := NewTriangle(Vector3{},
		NewVector3(0, 1, 0),
		NewVector3(1, 1, 0),
		NewVector3(0, 1, 1),
	)

	// Ray pointing away from the triangle
	ray := NewRay(NewVector3(0.2, 5, 0.2), NewVector3(0, 1, 0))
	if _, hit := tri.IntersectRay(ray); hit {
		t.Error("ray pointing away should not hit")
	}

	// Ray parallel to the triangle plane
	ray = NewRay(NewVector3(0, 5, 0), NewVector3(1, 0, 0))
	if _, hit := tri.IntersectRay(ray); hit {
		t.Error("parallel ray should not hit")
	}

	// Ray outside the triangle bounds
	ray = NewRay(NewVector3(50, 5, 50), NewVector3(0, -1, 0))
	if _, hit := tri.IntersectRay(ray); hit {
		t.Error("ray outside triangle should not hit")
	}
}

func TestPlaneIntersectRay(t *testing.T) {
	plane := NewPlane(NewVector3(0, 2, 0), NewVector3(0, 1, 0))

	ray := NewRay(NewVector3(1, 10, 1), NewVector3(0, -1, 0))
	point, ok := plane.IntersectRay(ray)
	if !ok {
		t.Fatal("expected intersection")
	}
	expected := NewVector3(1, 2, 1)
	if !vecApproxEqual(point, expected, 1e-9) {
		t.Errorf("expected %v, got %v", expected, point)
	}

	// Parallel ray never intersects
	ray = NewRay(NewVector3(0, 10, 0), NewVector3(1, 0, 0))
	if _, ok := plane.IntersectRay(ray); ok {
		t.Error("parallel ray should not intersect")
	}

	// Plane behind the ray origin
	ray = NewRay(NewVector3(0, 10, 0), NewVector3(0, 1, 0))
	if _, ok := plane.IntersectRay(ray); ok {
		t.Error("plane behind ray should not intersect")
	}
}

func TestBoundingBoxIntersectRay(t *testing.T) {
	box := BoundingBox{Min: NewVector3(-1, -1, -1), Max: NewVector3(1, 1, 1)}

	ray := NewRay(NewVector3(0, 5, 0), NewVector3(0, -1, 0))
	dist, hit := box.IntersectRay(ray)
	if !hit {
		t.Fatal("expected ray to hit box")
	}
	if math.Abs(dist-4.0) > 1e-9 {
		t.Errorf("expected distance 4, got %v", dist)
	}

	// Ray starting inside returns the exit distance
	ray = NewRay(NewVector3(0, 0, 0), NewVector3(1, 0, 0))
	dist, hit = box.IntersectRay(ray)
	if !hit {
		t.Fatal("expected hit from inside")
	}
	if math.Abs(dist-1.0) > 1e-9 {
		t.Errorf("expected exit distance 1, got %v", dist)
	}

	ray = NewRay(NewVector3(5, 5, 5), NewVector3(0, -1, 0))
	if _, hit := box.IntersectRay(ray); hit {
		t.Error("ray missing box should not hit")
	}
}
