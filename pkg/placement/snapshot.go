package placement

import (
	"github.com/philipparndt/goroom/pkg/geometry"
)

// Vec3Record is a 3D vector in layout files, matching the field names the
// planning service stores
type Vec3Record struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// QuatRecord is a rotation quaternion in layout files
type QuatRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// Record is the persisted form of one placed object. It carries the
// surface metadata alongside the transform so restoring can trust the
// stored orientation instead of re-running alignment.
type Record struct {
	EntryID       string      `json:"entryId"`
	Position      Vec3Record  `json:"position"`
	Rotation      QuatRecord  `json:"rotation"`
	Scale         Vec3Record  `json:"scale"`
	BaseScale     Vec3Record  `json:"baseScale"`
	SurfaceNormal *Vec3Record `json:"surfaceNormal,omitempty"`
	ContactAxis   string      `json:"contactAxis"`
}

func toVec3Record(v geometry.Vector3) Vec3Record {
	return Vec3Record{X: v.X, Y: v.Y, Z: v.Z}
}

func (r Vec3Record) vector() geometry.Vector3 {
	return geometry.NewVector3(r.X, r.Y, r.Z)
}

// Snapshot returns the serializable state of all placed objects
func (s *Scene) Snapshot() []Record {
	records := make([]Record, 0, len(s.objects))
	for _, obj := range s.objects {
		rec := Record{
			EntryID:     obj.EntryID,
			Position:    toVec3Record(obj.Position),
			Rotation:    QuatRecord{X: obj.Rotation.X, Y: obj.Rotation.Y, Z: obj.Rotation.Z, W: obj.Rotation.W},
			Scale:       toVec3Record(obj.Scale),
			BaseScale:   toVec3Record(obj.BaseScale),
			ContactAxis: obj.ContactAxis.String(),
		}
		if obj.HasSurface {
			n := toVec3Record(obj.SurfaceNormal)
			rec.SurfaceNormal = &n
		}
		records = append(records, rec)
	}
	return records
}

// BoundsResolver returns the local model bounds for a catalog entry,
// or false when the entry's model is unavailable
type BoundsResolver func(entryID string) (geometry.BoundingBox, bool)

// Restore rebuilds the scene from persisted records. The stored rotation
// and surface metadata are trusted as already valid, so no alignment
// runs. Records whose entry cannot be resolved or whose contact axis is
// invalid are skipped; their entry ids are returned so the caller can
// report them. Existing scene content is replaced.
func (s *Scene) Restore(records []Record, resolve BoundsResolver) (restored int, skipped []string) {
	s.objects = nil
	s.selected = nil

	for _, rec := range records {
		bounds, ok := resolve(rec.EntryID)
		if !ok {
			skipped = append(skipped, rec.EntryID)
			continue
		}
		axis, err := ParseContactAxis(rec.ContactAxis)
		if err != nil {
			skipped = append(skipped, rec.EntryID)
			continue
		}

		obj := NewPlacedObject(rec.EntryID, bounds, rec.BaseScale.vector())
		obj.Position = rec.Position.vector()
		obj.Rotation = geometry.Quaternion{
			X: rec.Rotation.X, Y: rec.Rotation.Y, Z: rec.Rotation.Z, W: rec.Rotation.W,
		}.Normalize()
		obj.Scale = rec.Scale.vector()
		obj.ContactAxis = axis
		if rec.SurfaceNormal != nil {
			obj.SurfaceNormal = rec.SurfaceNormal.vector().Normalize()
			obj.HasSurface = true
		}

		s.objects = append(s.objects, obj)
		restored++
	}
	return restored, skipped
}
