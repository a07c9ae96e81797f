// Package furniture provides the catalog of placeable models: entry
// metadata with real-world dimensions, and glTF/GLB geometry loading.
package furniture

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/philipparndt/goroom/pkg/geometry"
)

// Entry describes one catalog item. Dimensions are the real-world size in
// meters; Quantity is how many instances the user owns.
type Entry struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Category   string   `json:"category,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Quantity   int      `json:"quantity"`
	DimensionX float64  `json:"dimensionX,omitempty"`
	DimensionY float64  `json:"dimensionY,omitempty"`
	DimensionZ float64  `json:"dimensionZ,omitempty"`
	ModelPath  string   `json:"modelPath"`
}

// BaseScaleFor derives the per-axis scale that sizes a model with the
// given local bounds to the entry's real-world dimensions. Axes without a
// dimension keep scale 1, so partially measured entries still place at
// model scale.
func (e Entry) BaseScaleFor(bounds geometry.BoundingBox) geometry.Vector3 {
	size := bounds.Size()
	scale := geometry.NewVector3(1, 1, 1)
	if e.DimensionX > 0 && size.X > 1e-9 {
		scale.X = e.DimensionX / size.X
	}
	if e.DimensionY > 0 && size.Y > 1e-9 {
		scale.Y = e.DimensionY / size.Y
	}
	if e.DimensionZ > 0 && size.Z > 1e-9 {
		scale.Z = e.DimensionZ / size.Z
	}
	return scale
}

// Catalog is the set of available furniture entries
type Catalog struct {
	Entries []Entry `json:"entries"`
}

// LoadCatalog reads a catalog JSON file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	for i, entry := range catalog.Entries {
		if entry.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
		if entry.Quantity == 0 {
			catalog.Entries[i].Quantity = 1
		}
	}

	return &catalog, nil
}

// Find returns the entry with the given id
func (c *Catalog) Find(id string) (Entry, bool) {
	for _, entry := range c.Entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return Entry{}, false
}
