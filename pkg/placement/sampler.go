package placement

import (
	"math"

	"github.com/philipparndt/goroom/pkg/geometry"
)

// Raycaster answers nearest-hit ray queries against the room geometry
type Raycaster interface {
	Raycast(ray geometry.Ray) (geometry.SurfaceHit, bool)
}

// Camera converts screen coordinates into world-space rays
type Camera interface {
	ScreenRay(x, y float64) geometry.Ray
}

// SurfaceSampler casts rays from screen coordinates into the room mesh
// and returns stabilized surface hits.
//
// Scan meshes reconstructed from depth data are noisy at triangle level;
// a single ray picks up per-triangle normal jitter that makes placed
// objects visibly wobble. The sampler therefore casts SampleCount extra
// rays in a circle of AveragingRadius screen pixels around the pointer
// and averages the normals, trading a little geometric accuracy for
// stability. SampleCount 0 skips the extra rays entirely and is the fast
// path used while dragging.
type SurfaceSampler struct {
	Mesh            Raycaster
	SampleCount     int
	AveragingRadius float64
}

// NewSurfaceSampler creates a sampler with the default smoothing setup
func NewSurfaceSampler(mesh Raycaster) *SurfaceSampler {
	return &SurfaceSampler{
		Mesh:            mesh,
		SampleCount:     8,
		AveragingRadius: 6,
	}
}

// Sample casts through the given screen position and returns the hit with
// a smoothed normal, or false when the room is not under the pointer.
// Point and distance always come from the primary ray; only the normal is
// averaged.
func (s *SurfaceSampler) Sample(camera Camera, x, y float64) (geometry.SurfaceHit, bool) {
	primary, ok := s.Mesh.Raycast(camera.ScreenRay(x, y))
	if !ok {
		return geometry.SurfaceHit{}, false
	}
	if s.SampleCount <= 0 {
		return primary, true
	}

	sum := primary.Normal
	for i := 0; i < s.SampleCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(s.SampleCount)
		sx := x + s.AveragingRadius*math.Cos(angle)
		sy := y + s.AveragingRadius*math.Sin(angle)

		hit, ok := s.Mesh.Raycast(camera.ScreenRay(sx, sy))
		if !ok {
			continue
		}
		sum = sum.Add(hit.Normal)
	}

	smoothed := sum.Normalize()
	if smoothed.Length() == 0 {
		// Opposing normals cancelled out; keep the primary
		return primary, true
	}
	primary.Normal = smoothed
	return primary, true
}

// GroundFallback intersects the pointer ray with the default ground plane
// at y=0, used when the room mesh is not under the pointer. Returns false
// when the ray never reaches the plane.
func GroundFallback(camera Camera, x, y float64) (geometry.SurfaceHit, bool) {
	ray := camera.ScreenRay(x, y)
	ground := geometry.NewPlane(geometry.Vector3{}, geometry.NewVector3(0, 1, 0))

	point, ok := ground.IntersectRay(ray)
	if !ok {
		return geometry.SurfaceHit{}, false
	}
	return geometry.SurfaceHit{
		Point:    point,
		Normal:   geometry.NewVector3(0, 1, 0),
		Distance: ray.Origin.Distance(point),
	}, true
}
