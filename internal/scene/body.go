package scene

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Palette is a base/emissive color pair assigned to a body at creation.
type Palette struct {
	Base     rl.Color
	Emissive rl.Color
}

var Palettes = [2]Palette{
	{Base: rl.NewColor(99, 102, 241, 255), Emissive: rl.NewColor(55, 48, 163, 255)},
	{Base: rl.NewColor(34, 211, 238, 255), Emissive: rl.NewColor(8, 145, 178, 255)},
}

// Per-tick spin increments about the body's own X and Y axes, in radians.
const (
	SpinRateX = 0.008
	SpinRateY = 0.009
)

// Bounds is the reflecting box: a velocity component's sign flips when the
// matching position coordinate's magnitude exceeds the axis bound. The
// position may overshoot by at most one tick's displacement before the
// flipped velocity pulls it back.
var Bounds = mgl32.Vec3{10, 8, 10}

// Body is one drifting sphere. Simulation state lives here, index-aligned
// with nothing else; the render pass reads it, never the other way around.
type Body struct {
	Pos    mgl32.Vec3
	Vel    mgl32.Vec3
	Radius float32
	SpinX  float32
	SpinY  float32
	Pal    int
}

type Bodies []Body

// NewBodies seeds n bodies: radius in [0.25, 0.70], position over a
// centered 18×12×16 box, per-axis velocity in [-0.0075, 0.0075], palette
// by coin flip. Deterministic for a given rng state.
func NewBodies(n int, rng *rand.Rand) Bodies {
	bodies := make(Bodies, n)
	for i := range bodies {
		bodies[i] = Body{
			Pos: mgl32.Vec3{
				float32((rng.Float64() - 0.5) * 18),
				float32((rng.Float64() - 0.5) * 12),
				float32((rng.Float64() - 0.5) * 16),
			},
			Vel: mgl32.Vec3{
				float32((rng.Float64()*2 - 1) * 0.0075),
				float32((rng.Float64()*2 - 1) * 0.0075),
				float32((rng.Float64()*2 - 1) * 0.0075),
			},
			Radius: float32(0.25 + rng.Float64()*0.45),
			Pal:    rng.Intn(2),
		}
	}
	return bodies
}

// Step advances one body by one tick: Euler position update, per-axis
// reflection at Bounds, fixed spin increments.
func (b *Body) Step() {
	b.Pos = b.Pos.Add(b.Vel)

	for axis := 0; axis < 3; axis++ {
		if b.Pos[axis] > Bounds[axis] || b.Pos[axis] < -Bounds[axis] {
			b.Vel[axis] = -b.Vel[axis]
		}
	}

	b.SpinX += SpinRateX
	b.SpinY += SpinRateY
}

// Step advances every body.
func (bs Bodies) Step() {
	for i := range bs {
		bs[i].Step()
	}
}

// Draw renders the bodies inside an active 3D mode, shaded by the rig.
// Spin is applied through the matrix stack so translation and rotation
// stay independent.
func (bs Bodies) Draw(rig Rig) {
	for i := range bs {
		b := &bs[i]
		pal := Palettes[b.Pal]
		col := rig.Shade(b.Pos, pal.Base, pal.Emissive)

		rl.PushMatrix()
		rl.Translatef(b.Pos.X(), b.Pos.Y(), b.Pos.Z())
		rl.Rotatef(b.SpinX*rl.Rad2deg, 1, 0, 0)
		rl.Rotatef(b.SpinY*rl.Rad2deg, 0, 1, 0)
		rl.DrawSphereEx(rl.NewVector3(0, 0, 0), b.Radius, 12, 12, col)
		rl.DrawSphereWires(rl.NewVector3(0, 0, 0), b.Radius*1.01, 6, 6, rl.Fade(pal.Emissive, 0.25))
		rl.PopMatrix()
	}
}
