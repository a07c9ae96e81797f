package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/goroom/pkg/geometry"
	"github.com/philipparndt/goroom/pkg/placement"
	"github.com/philipparndt/goroom/pkg/room"
)

// roomToRaylibMesh converts the room scan to a Raylib mesh with baked
// diffuse lighting in the vertex colors
func roomToRaylibMesh(mesh *room.Mesh) rl.Mesh {
	triangleCount := len(mesh.Triangles)
	vertexCount := triangleCount * 3

	rlMesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	colors := make([]uint8, vertexCount*4)

	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

	idx := 0
	for _, triangle := range mesh.Triangles {
		normal := triangle.Normal

		// Min 30% ambient, max 100% diffuse
		lightIntensity := math.Max(0.3, -normal.Dot(lightDir))
		baseColor := 190.0
		r := uint8(baseColor * lightIntensity * 0.85)
		g := uint8(baseColor * lightIntensity * 0.82)
		b := uint8(baseColor * lightIntensity * 0.75)

		for _, v := range []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			colors[idx*4+0] = r
			colors[idx*4+1] = g
			colors[idx*4+2] = b
			colors[idx*4+3] = 255
			idx++
		}
	}

	if len(vertices) > 0 {
		rlMesh.Vertices = &vertices[0]
	}
	if len(normals) > 0 {
		rlMesh.Normals = &normals[0]
	}
	if len(colors) > 0 {
		rlMesh.Colors = &colors[0]
	}

	rl.UploadMesh(&rlMesh, false)

	return rlMesh
}

// quaternionAxisAngle converts a rotation to the axis-angle form raylib's
// DrawModelEx expects. Identity maps to a zero rotation around +Y.
func quaternionAxisAngle(q geometry.Quaternion) (rl.Vector3, float32) {
	w := q.W
	if w > 1 {
		w = 1
	}
	if w < -1 {
		w = -1
	}
	angle := 2 * math.Acos(w)
	s := math.Sqrt(1 - w*w)
	if s < 1e-9 {
		return rl.Vector3{X: 0, Y: 1, Z: 0}, 0
	}
	axis := rl.Vector3{
		X: float32(q.X / s),
		Y: float32(q.Y / s),
		Z: float32(q.Z / s),
	}
	return axis, float32(angle * 180 / math.Pi)
}

func toRaylibVector3(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// drawScene renders the room, the grid and all placed furniture
func (app *App) drawScene() {
	rl.BeginMode3D(app.Camera.camera)

	rl.DrawMesh(app.Room.rlMesh, app.Room.material, rl.MatrixIdentity())

	if app.View.showGrid {
		app.drawGrid()
	}

	selected := app.Placement.scene.Selected()
	hovered := app.hoveredObject()
	for _, obj := range app.Placement.scene.Objects() {
		app.drawPlacedObject(obj, obj == selected, obj == hovered)
	}

	rl.EndMode3D()
}

// hoveredObject returns the object under the mouse for hover feedback.
// Suppressed while an interaction is in progress: the dragged object
// already has the selection highlight.
func (app *App) hoveredObject() *placement.PlacedObject {
	if app.Placement.drag.State() != placement.StateIdle {
		return nil
	}
	mouse := rl.GetMousePosition()
	obj, ok := app.Placement.drag.HoveredObject(float64(mouse.X), float64(mouse.Y))
	if !ok {
		return nil
	}
	return obj
}

// drawPlacedObject renders one furniture instance at its placement
// transform, falling back to a bounds wireframe when the render model is
// unavailable
func (app *App) drawPlacedObject(obj *placement.PlacedObject, selected, hovered bool) {
	axis, angle := quaternionAxisAngle(obj.Rotation)
	position := toRaylibVector3(obj.Position)
	scale := toRaylibVector3(obj.Scale)

	tint := rl.White
	if selected {
		tint = rl.NewColor(255, 235, 170, 255)
	}

	if model, ok := app.Catalog.renderModels[obj.EntryID]; ok {
		rl.DrawModelEx(model, position, axis, angle, scale, tint)
	} else {
		bounds := obj.WorldBounds()
		rl.DrawCubeWiresV(
			toRaylibVector3(bounds.Center()),
			toRaylibVector3(bounds.Size()),
			tint,
		)
	}

	if selected {
		bounds := obj.WorldBounds()
		rl.DrawCubeWiresV(
			toRaylibVector3(bounds.Center()),
			toRaylibVector3(bounds.Size()),
			rl.NewColor(255, 200, 60, 255),
		)
	} else if hovered {
		bounds := obj.WorldBounds()
		rl.DrawCubeWiresV(
			toRaylibVector3(bounds.Center()),
			toRaylibVector3(bounds.Size()),
			rl.NewColor(210, 210, 210, 200),
		)
	}
}

// drawGrid draws a meter grid on the ground plane under the room
func (app *App) drawGrid() {
	bounds := app.Room.mesh.Bounds()
	extent := int32(math.Ceil(math.Max(
		bounds.Max.X-bounds.Min.X,
		bounds.Max.Z-bounds.Min.Z,
	))) + 2
	rl.DrawGrid(extent, 1.0)
}
