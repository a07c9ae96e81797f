package furniture

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/goroom/pkg/geometry"
)

const testCatalog = `{
  "entries": [
    {
      "id": "sofa-01",
      "name": "Two-seat sofa",
      "category": "seating",
      "tags": ["living room"],
      "quantity": 2,
      "dimensionX": 1.6,
      "dimensionY": 0.8,
      "dimensionZ": 0.9,
      "modelPath": "models/sofa.glb"
    },
    {
      "id": "lamp-01",
      "name": "Floor lamp",
      "modelPath": "models/lamp.glb"
    }
  ]
}`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog(writeCatalog(t, testCatalog))
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	if len(catalog.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(catalog.Entries))
	}

	sofa, ok := catalog.Find("sofa-01")
	if !ok {
		t.Fatal("sofa-01 not found")
	}
	if sofa.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", sofa.Quantity)
	}

	// Quantity defaults to 1 when omitted
	lamp, _ := catalog.Find("lamp-01")
	if lamp.Quantity != 1 {
		t.Errorf("expected default quantity 1, got %d", lamp.Quantity)
	}

	if _, ok := catalog.Find("missing"); ok {
		t.Error("Find should fail for unknown id")
	}
}

func TestLoadCatalogRejectsMissingID(t *testing.T) {
	path := writeCatalog(t, `{"entries": [{"name": "no id", "modelPath": "x.glb"}]}`)
	if _, err := LoadCatalog(path); err == nil {
		t.Error("expected error for entry without id")
	}
}

func TestBaseScaleFor(t *testing.T) {
	entry := Entry{DimensionX: 1.6, DimensionY: 0.8, DimensionZ: 0.9}
	bounds := geometry.BoundingBox{
		Min: geometry.NewVector3(-0.5, 0, -0.5),
		Max: geometry.NewVector3(0.5, 2, 0.5),
	}

	scale := entry.BaseScaleFor(bounds)
	if math.Abs(scale.X-1.6) > 1e-9 {
		t.Errorf("expected X scale 1.6, got %v", scale.X)
	}
	if math.Abs(scale.Y-0.4) > 1e-9 {
		t.Errorf("expected Y scale 0.4, got %v", scale.Y)
	}
	if math.Abs(scale.Z-0.9) > 1e-9 {
		t.Errorf("expected Z scale 0.9, got %v", scale.Z)
	}
}

func TestBaseScaleForMissingDimensions(t *testing.T) {
	entry := Entry{}
	bounds := geometry.BoundingBox{
		Min: geometry.NewVector3(0, 0, 0),
		Max: geometry.NewVector3(2, 2, 2),
	}

	scale := entry.BaseScaleFor(bounds)
	if scale != geometry.NewVector3(1, 1, 1) {
		t.Errorf("expected unit scale, got %v", scale)
	}
}

func TestLoadGLBMissingFile(t *testing.T) {
	if _, err := LoadGLB("/nonexistent/model.glb"); err == nil {
		t.Error("expected error for missing file")
	}
}
