package app

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/goroom/pkg/geometry"
)

// resetCameraView resets the camera to the framing computed at load time
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = app.Camera.defaultTarget
}

// frameRoom positions the camera to show the whole room
func (app *App) frameRoom() {
	bounds := app.Room.mesh.Bounds()
	center := bounds.Center()
	size := bounds.Size()
	maxDim := math32.Max(float32(size.X), math32.Max(float32(size.Y), float32(size.Z)))

	app.Room.center = rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)}
	app.Room.size = maxDim

	app.Camera.distance = maxDim * 1.5
	app.Camera.angleX = 0.5
	app.Camera.angleY = 0.6
	app.Camera.target = app.Room.center

	app.Camera.defaultDist = app.Camera.distance
	app.Camera.defaultAngleX = app.Camera.angleX
	app.Camera.defaultAngleY = app.Camera.angleY
	app.Camera.defaultTarget = app.Camera.target

	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: maxDim, Z: app.Camera.distance},
		Target:     app.Camera.target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}

// updateCamera recomputes the camera position from the orbit angles
func (app *App) updateCamera() {
	x := app.Camera.distance * math32.Cos(app.Camera.angleX) * math32.Sin(app.Camera.angleY)
	y := app.Camera.distance * math32.Sin(app.Camera.angleX)
	z := app.Camera.distance * math32.Cos(app.Camera.angleX) * math32.Cos(app.Camera.angleY)

	app.Camera.camera.Position = rl.Vector3{
		X: app.Camera.target.X + x,
		Y: app.Camera.target.Y + y,
		Z: app.Camera.target.Z + z,
	}
	app.Camera.camera.Target = app.Camera.target
}

// doOrbit rotates the camera around the target
func (app *App) doOrbit(delta rl.Vector2) {
	app.Camera.angleY += delta.X * 0.01
	app.Camera.angleX += delta.Y * 0.01

	// Clamp vertical rotation short of the poles
	if app.Camera.angleX > 1.5 {
		app.Camera.angleX = 1.5
	}
	if app.Camera.angleX < -1.5 {
		app.Camera.angleX = -1.5
	}
}

// doPan moves the camera target in the view plane
func (app *App) doPan(delta rl.Vector2) {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(app.Camera.target, app.Camera.camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, app.Camera.camera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	panSpeed := app.Camera.distance * 0.001

	app.Camera.target = rl.Vector3Add(app.Camera.target, rl.Vector3Scale(right, -delta.X*panSpeed))
	app.Camera.target = rl.Vector3Add(app.Camera.target, rl.Vector3Scale(up, delta.Y*panSpeed))
}

// doZoom adjusts the orbit distance from wheel movement
func (app *App) doZoom(wheel float32) {
	app.Camera.distance *= 1.0 - wheel*0.03
	if app.Camera.distance < 0.5 {
		app.Camera.distance = 0.5
	}
}

// worldCamera adapts the raylib camera to screen-to-world ray queries.
// It reads the live camera each call, so rays always match the frame
// being interacted with.
type worldCamera struct {
	app *App
}

func (c worldCamera) ScreenRay(x, y float64) geometry.Ray {
	ray := rl.GetMouseRay(rl.Vector2{X: float32(x), Y: float32(y)}, c.app.Camera.camera)
	return geometry.NewRay(
		geometry.NewVector3(float64(ray.Position.X), float64(ray.Position.Y), float64(ray.Position.Z)),
		geometry.NewVector3(float64(ray.Direction.X), float64(ray.Direction.Y), float64(ray.Direction.Z)),
	)
}
