// Package app implements the interactive editing loop: it wires the
// window, renderer, input, scene and camera together and translates UI
// events into parameter edits and camera deltas.
package app

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/formforge/internal/config"
	"github.com/Faultbox/formforge/internal/engine/camera"
	"github.com/Faultbox/formforge/internal/engine/geometry"
	"github.com/Faultbox/formforge/internal/engine/input"
	"github.com/Faultbox/formforge/internal/engine/lighting"
	"github.com/Faultbox/formforge/internal/engine/params"
	"github.com/Faultbox/formforge/internal/engine/renderer"
	"github.com/Faultbox/formforge/internal/engine/scene"
	"github.com/Faultbox/formforge/internal/engine/window"
	"github.com/Faultbox/formforge/internal/logger"
)

// App is the application instance.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene

	// Parameter editing state: index into the active schema's specs.
	selected int

	// Mouse drag state.
	orbiting bool
	panning  bool
}

// New creates the application. The window must exist before the
// renderer, since the renderer needs the OpenGL context.
func New(cfg *config.Config) (*App, error) {
	a := &App{cfg: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "FormForge",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	rig := lighting.FromAngles(
		cfg.Lighting.KeyLongitude, cfg.Lighting.KeyLatitude,
		cfg.Lighting.Ambient, cfg.Lighting.Diffuse,
	)
	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	}, rig)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	cam := camera.New(cameraConfig(cfg.Camera))
	a.scene, err = scene.New(geometry.DefaultRegistry(), cam, params.Family(cfg.Scene.Family), logger.Log)
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	a.renderer.SetMesh(a.scene.Mesh())

	a.input = input.New()
	a.refreshTitle()

	return a, nil
}

// Close shuts the application down.
func (a *App) Close() {
	a.renderer.Close()
	a.window.Close()
}

// Run executes the main loop: poll input, apply edits, draw, swap.
func (a *App) Run() error {
	a.running = true

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}

		for _, ev := range a.input.Events() {
			a.handleEvent(ev)
		}

		a.renderer.Render(a.scene.Camera())
		a.window.SwapBuffers()
	}

	return nil
}

func (a *App) handleEvent(ev input.Event) {
	cam := a.scene.Camera()

	switch ev.Type {
	case input.EventQuit:
		a.running = false

	case input.EventWindowResize:
		a.renderer.Resize(ev.Width, ev.Height)

	case input.EventMouseDown:
		switch ev.Button {
		case sdl.BUTTON_LEFT:
			a.orbiting = true
		case sdl.BUTTON_MIDDLE, sdl.BUTTON_RIGHT:
			a.panning = true
		}

	case input.EventMouseUp:
		switch ev.Button {
		case sdl.BUTTON_LEFT:
			a.orbiting = false
		case sdl.BUTTON_MIDDLE, sdl.BUTTON_RIGHT:
			a.panning = false
		}

	case input.EventMouseMove:
		if a.orbiting {
			speed := a.cfg.Camera.OrbitSpeed
			cam.Orbit(-float32(ev.DeltaX)*speed, float32(ev.DeltaY)*speed)
		}
		if a.panning {
			speed := a.cfg.Camera.PanSpeed
			cam.Pan(-float32(ev.DeltaX)*speed, float32(ev.DeltaY)*speed)
		}

	case input.EventMouseWheel:
		step := a.cfg.Camera.ZoomStep
		if ev.WheelY > 0 {
			cam.ZoomScale(1 / step)
		} else if ev.WheelY < 0 {
			cam.ZoomScale(step)
		}

	case input.EventKeyDown:
		a.handleKey(ev.Key)
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false

	case sdl.SCANCODE_LEFT:
		a.selectParam(a.selected - 1)
	case sdl.SCANCODE_RIGHT, sdl.SCANCODE_TAB:
		a.selectParam(a.selected + 1)

	case sdl.SCANCODE_UP:
		a.adjustSelected(+1)
	case sdl.SCANCODE_DOWN:
		a.adjustSelected(-1)

	case sdl.SCANCODE_V:
		a.switchFamily(params.FamilyVase)
	case sdl.SCANCODE_T:
		a.switchFamily(params.FamilyTable)

	case sdl.SCANCODE_R:
		a.scene.Camera().FrameBoundsCanonical(a.scene.Mesh().Bounds)
	}
}

func (a *App) selectParam(i int) {
	specs := a.scene.Params().Schema().Specs()
	a.selected = ((i % len(specs)) + len(specs)) % len(specs)
	a.refreshTitle()
}

// adjustSelected applies one step of the selected parameter in the
// given direction, regenerating the mesh.
func (a *App) adjustSelected(direction float32) {
	spec := a.scene.Params().Schema().Specs()[a.selected]
	value := a.scene.Params().Get(spec.Name) + direction*spec.Step

	if err := a.scene.SetParam(spec.Name, value); err != nil {
		// The edit is rejected; the previous mesh and pose stay visible.
		logger.Warn("parameter edit rejected",
			zap.String("param", spec.Name),
			zap.Float32("value", value),
			zap.Error(err),
		)
		return
	}
	a.renderer.SetMesh(a.scene.Mesh())
	a.refreshTitle()
}

func (a *App) switchFamily(family params.Family) {
	if a.scene.Family() == family {
		return
	}
	if err := a.scene.SelectFamily(family); err != nil {
		logger.Warn("family switch rejected",
			zap.String("family", string(family)),
			zap.Error(err),
		)
		return
	}
	a.selected = 0
	a.renderer.SetMesh(a.scene.Mesh())
	a.refreshTitle()
}

// refreshTitle puts the metrics display into the window title: active
// family, selected parameter with its value, and mesh statistics.
func (a *App) refreshTitle() {
	stats := a.scene.Stats()
	spec := a.scene.Params().Schema().Specs()[a.selected]
	a.window.SetTitle(fmt.Sprintf(
		"FormForge - %s | %s = %.2f | %d verts, %d faces | %.2f x %.2f x %.2f",
		stats.Family, spec.Name, a.scene.Params().Get(spec.Name),
		stats.VertexCount, stats.FaceCount,
		stats.Width, stats.Height, stats.Depth,
	))
}

// cameraConfig converts the degree-based file config into the camera's
// radian-based limits.
func cameraConfig(c config.CameraConfig) camera.Config {
	cfg := camera.DefaultConfig()
	if c.FOV > 0 {
		cfg.FOV = c.FOV * math32.Pi / 180
	}
	if c.MarginFactor > 0 {
		cfg.MarginFactor = c.MarginFactor
	}
	if c.MinDistance > 0 {
		cfg.MinDistance = c.MinDistance
	}
	if c.MaxDistance > 0 {
		cfg.MaxDistance = c.MaxDistance
	}
	if c.MinElevation != 0 {
		cfg.MinElevation = c.MinElevation * math32.Pi / 180
	}
	if c.MaxElevation != 0 {
		cfg.MaxElevation = c.MaxElevation * math32.Pi / 180
	}
	return cfg
}
