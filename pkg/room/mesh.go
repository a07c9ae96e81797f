// Package room holds the scanned room geometry and answers ray queries
// against it. Reconstructed scan meshes are small enough (tens of
// thousands of triangles) that a linear nearest-hit scan per ray stays
// well inside a frame budget; there is no spatial index.
package room

import (
	"github.com/philipparndt/goroom/pkg/geometry"
	"github.com/philipparndt/goroom/pkg/stl"
)

// Mesh is the room scan as world-space triangles
type Mesh struct {
	Triangles []geometry.Triangle
	bounds    geometry.BoundingBox
}

// FromModel builds a room mesh from a parsed STL model. Triangles with a
// zero stored normal get one computed from their winding; all normals are
// normalized so raycast results can be used directly as surface normals.
func FromModel(model *stl.Model) *Mesh {
	mesh := &Mesh{
		Triangles: make([]geometry.Triangle, 0, len(model.Triangles)),
		bounds:    geometry.NewBoundingBox(),
	}

	for _, tri := range model.Triangles {
		normal := tri.Normal
		if normal.Length() < 1e-9 {
			normal = tri.CalculateNormal()
		} else {
			normal = normal.Normalize()
		}
		tri.Normal = normal
		mesh.Triangles = append(mesh.Triangles, tri)
		mesh.bounds.Extend(tri.V1)
		mesh.bounds.Extend(tri.V2)
		mesh.bounds.Extend(tri.V3)
	}

	return mesh
}

// Bounds returns the axis-aligned bounds of the room
func (m *Mesh) Bounds() geometry.BoundingBox {
	return m.bounds
}

// TriangleCount returns the number of triangles in the room
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Raycast returns the nearest intersection of the ray with the room
// geometry, or false when nothing is hit. The hit normal is flipped
// towards the ray origin so it always points away from the solid side
// the ray arrived from.
func (m *Mesh) Raycast(ray geometry.Ray) (geometry.SurfaceHit, bool) {
	var nearest geometry.SurfaceHit
	found := false

	for _, tri := range m.Triangles {
		dist, ok := tri.IntersectRay(ray)
		if !ok {
			continue
		}
		if found && dist >= nearest.Distance {
			continue
		}

		normal := tri.Normal
		if normal.Dot(ray.Direction) > 0 {
			normal = normal.Negate()
		}
		nearest = geometry.SurfaceHit{
			Point:    ray.At(dist),
			Normal:   normal,
			Distance: dist,
		}
		found = true
	}

	return nearest, found
}
