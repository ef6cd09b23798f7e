// Package engine owns the render loop: the tick order, the viewport, the
// camera, and every GPU-resident resource.
package engine

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/prajyot-codes/backdrop/internal/background"
	"github.com/prajyot-codes/backdrop/internal/capture"
	"github.com/prajyot-codes/backdrop/internal/config"
	"github.com/prajyot-codes/backdrop/internal/debug"
	"github.com/prajyot-codes/backdrop/internal/parallax"
	"github.com/prajyot-codes/backdrop/internal/scene"
	"github.com/prajyot-codes/backdrop/internal/utils"
)

// TimeStep is the nominal per-tick advance. It is deliberately fixed
// rather than measured: the loop targets 60 Hz and motion speed stays
// coupled to the display rate, matching how the scene was tuned.
const TimeStep = 0.016

// MaxPixelDensity caps the DPI scale fed into the resolution uniform so
// fragment cost stays bounded on high-density displays.
const MaxPixelDensity = 2.0

// PointerSource supplies pointer coordinates in surface pixels. ok=false
// means no reading is available and the target is left untouched.
type PointerSource func() (x, y float32, ok bool)

// Driver runs the scene. It has exactly two states: Mounted (loop
// ticking) and Unmounted (resources released). All simulation state is
// plain Go and ticks without a GL context; GPU work happens only after
// the shader loads, so a context-less host degrades to doing nothing.
type Driver struct {
	cfg *config.Config

	program *background.Program
	star    *scene.Field
	mist    *scene.Field
	bodies  scene.Bodies
	rig     scene.Rig
	par     *parallax.Controller

	camera rl.Camera3D

	timeAcc  float64
	width    int
	height   int
	density  float32
	mounted  bool
	pointer  PointerSource
	overlay  *debug.Overlay
	captures int
}

// New builds the full scene from config with a seeded source, so a given
// seed always produces the same starfield, mist, and body fleet.
func New(cfg *config.Config, seed int64) *Driver {
	rng := rand.New(rand.NewSource(seed))

	starCol := rl.Fade(rl.White, float32(cfg.Starfield.Opacity))
	mistCol := rl.Fade(rl.NewColor(148, 163, 216, 255), float32(cfg.Mist.Opacity))

	star := scene.NewShellField(cfg.Starfield.Count, cfg.Starfield.RadiusMin,
		cfg.Starfield.RadiusMax, float32(cfg.Starfield.SpinRate), starCol, rng)
	mist := scene.NewVolumeField(cfg.Mist.Count, cfg.Mist.Width, cfg.Mist.Height,
		cfg.Mist.Depth, float32(cfg.Mist.SpinRate), mistCol, rng)
	mist.MoteRadius = 0.18

	par := parallax.New(float32(cfg.Camera.Distance))

	return &Driver{
		cfg:     cfg,
		program: background.NewProgram(cfg.Colors.Top.Norm(), cfg.Colors.Bottom.Norm()),
		star:    star,
		mist:    mist,
		bodies:  scene.NewBodies(cfg.Bodies.Count, rng),
		rig:     scene.DefaultRig(),
		par:     par,
		density: 1,
		camera: rl.Camera3D{
			Position:   rl.NewVector3(0, 0, float32(cfg.Camera.Distance)),
			Target:     rl.NewVector3(0, 0, 0),
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       float32(cfg.Camera.Fov),
			Projection: rl.CameraPerspective,
		},
		overlay: debug.NewOverlay(),
	}
}

// SetPointerSource overrides where pointer reads come from; nil falls
// back to raylib's window-relative mouse.
func (d *Driver) SetPointerSource(src PointerSource) {
	d.pointer = src
}

// Mount transitions to the running state. A zero-area surface is an
// error; a missing GL context is not — the driver mounts inert and
// renders nothing, since the backdrop is cosmetic.
func (d *Driver) Mount(width, height int) error {
	if d.mounted {
		return nil
	}
	if width < 1 || height < 1 {
		return fmt.Errorf("engine: cannot mount on a %dx%d surface", width, height)
	}

	if rl.IsWindowReady() {
		d.program.Load()
	} else {
		utils.Warn("engine: no rendering context, backdrop stays blank")
	}

	d.mounted = true
	d.Resize(width, height)
	return nil
}

func (d *Driver) Mounted() bool { return d.mounted }

// Resize is the only path that mutates viewport size or pixel density.
func (d *Driver) Resize(width, height int) {
	if !d.mounted {
		return
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	d.width, d.height = width, height

	d.density = 1
	if rl.IsWindowReady() {
		dpi := rl.GetWindowScaleDPI()
		scale := dpi.X
		if dpi.Y > scale {
			scale = dpi.Y
		}
		if scale > MaxPixelDensity {
			scale = MaxPixelDensity
		}
		if scale >= 1 {
			d.density = scale
		}
	}

	d.program.SetResolution(float32(width)*d.density, float32(height)*d.density)
}

// Tick advances every animated quantity by one fixed step. Order matters:
// later steps read state mutated by earlier ones.
func (d *Driver) Tick() {
	if !d.mounted {
		return
	}

	d.timeAcc += TimeStep
	d.program.SetTime(float32(d.timeAcc))

	d.star.Advance()
	d.mist.Advance()

	d.bodies.Step()

	d.par.Step()
	pos := d.par.CameraPosition()
	d.camera.Position = rl.NewVector3(pos.X(), pos.Y(), pos.Z())
	d.camera.Target = rl.NewVector3(0, 0, 0)
}

// Draw clears the target, runs the gradient pass in raylib's default 2D
// projection, then the 3D pass on top. Call between BeginDrawing and
// EndDrawing.
func (d *Driver) Draw() {
	if !d.mounted || !d.program.Ready() {
		return
	}

	rl.ClearBackground(rl.Black)
	d.program.Draw(int32(d.width), int32(d.height))

	rl.BeginMode3D(d.camera)
	d.star.Draw()
	d.mist.Draw()
	d.bodies.Draw(d.rig)
	rl.EndMode3D()

	if d.overlay.Visible {
		d.overlay.Draw(d.timeAcc, d.par, d.bodies)
	}
}

// Frame is one loop iteration: pump inputs, tick, draw.
func (d *Driver) Frame() {
	if !d.mounted {
		return
	}

	d.pumpInput()

	if rl.IsWindowResized() {
		d.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	d.Tick()

	rl.BeginDrawing()
	d.Draw()
	rl.EndDrawing()
}

func (d *Driver) pumpInput() {
	if d.pointer != nil {
		if x, y, ok := d.pointer(); ok {
			d.par.SetPointer(x, y, float32(d.width), float32(d.height))
		}
	} else if rl.IsWindowReady() {
		m := rl.GetMousePosition()
		d.par.SetPointer(m.X, m.Y, float32(d.width), float32(d.height))
	}

	if !rl.IsWindowReady() {
		return
	}
	if rl.IsKeyPressed(rl.KeyF8) {
		d.overlay.Visible = !d.overlay.Visible
	}
	if rl.IsKeyPressed(rl.KeyF12) {
		d.saveSnapshot()
	}
}

func (d *Driver) saveSnapshot() {
	frame, err := capture.Grab()
	if err != nil {
		utils.Error("engine: snapshot failed: %v", err)
		return
	}

	d.captures++
	name := fmt.Sprintf("backdrop-%s-%02d.bdf", time.Now().Format("20060102-150405"), d.captures)
	path := filepath.Join(d.cfg.Capture.Dir, name)
	if err := capture.Write(path, frame); err != nil {
		utils.Error("engine: snapshot write failed: %v", err)
		return
	}
	utils.Info("engine: wrote snapshot %s (%dx%d)", path, frame.Width, frame.Height)
}

// Time returns the accumulated animation time.
func (d *Driver) Time() float64 { return d.timeAcc }

// CameraPosition returns the current camera position.
func (d *Driver) CameraPosition() (float32, float32, float32) {
	return d.camera.Position.X, d.camera.Position.Y, d.camera.Position.Z
}

// Resolution returns the shader's current resolution uniform.
func (d *Driver) Resolution() (float32, float32) {
	return d.program.Resolution()
}

// Unmount releases everything the driver allocated and stops the loop.
// Idempotent: calling it twice, or before Mount, is a no-op.
func (d *Driver) Unmount() {
	if !d.mounted {
		return
	}
	d.program.Unload()
	d.mounted = false
}
