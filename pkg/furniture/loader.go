package furniture

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/philipparndt/goroom/pkg/geometry"
)

// Model is the loaded geometry of a furniture entry, reduced to what
// placement needs: local bounds for contact offsets and picking. The
// render host loads the same file for drawing.
type Model struct {
	Name          string
	Bounds        geometry.BoundingBox
	VertexCount   int
	TriangleCount int
}

// LoadGLB reads a glTF/GLB file and returns its placement model.
// Returns an error when the file has no triangle geometry at all; an
// entry without geometry cannot be bounded or aligned.
func LoadGLB(path string) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	model := &Model{
		Name:   path,
		Bounds: geometry.NewBoundingBox(),
	}

	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}

			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("read positions of mesh %q: %w", mesh.Name, err)
			}

			for _, p := range positions {
				model.Bounds.Extend(geometry.NewVector3(float64(p[0]), float64(p[1]), float64(p[2])))
			}
			model.VertexCount += len(positions)

			if prim.Indices != nil {
				indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("read indices of mesh %q: %w", mesh.Name, err)
				}
				model.TriangleCount += len(indices) / 3
			} else {
				model.TriangleCount += len(positions) / 3
			}
		}
	}

	if model.VertexCount == 0 {
		return nil, fmt.Errorf("%s contains no triangle geometry", path)
	}

	return model, nil
}
