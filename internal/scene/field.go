package scene

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Field is a rigid point cloud. Positions are generated once and never
// mutated; the only per-frame state is a single rotation angle about the
// vertical axis.
type Field struct {
	Positions []mgl32.Vec3
	Angle     float32
	Rate      float32
	Color     rl.Color

	// MoteRadius > 0 draws each point as a small 3D circle instead of a
	// single pixel; used by the mist field.
	MoteRadius float32
}

// NewShellField samples n points uniformly over a spherical shell with
// radius in [rMin, rMax]. The polar angle comes from acos of a uniform
// variate in [-1, 1], which avoids clustering at the poles.
func NewShellField(n int, rMin, rMax float64, rate float32, col rl.Color, rng *rand.Rand) *Field {
	positions := make([]mgl32.Vec3, n)
	for i := range positions {
		radius := rMin + rng.Float64()*(rMax-rMin)
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*rng.Float64() - 1)

		sinPhi := math.Sin(phi)
		positions[i] = mgl32.Vec3{
			float32(radius * sinPhi * math.Cos(theta)),
			float32(radius * math.Cos(phi)),
			float32(radius * sinPhi * math.Sin(theta)),
		}
	}
	return &Field{Positions: positions, Rate: rate, Color: col}
}

// NewVolumeField samples n points uniformly over a centered w×h×d box.
func NewVolumeField(n int, w, h, d float64, rate float32, col rl.Color, rng *rand.Rand) *Field {
	positions := make([]mgl32.Vec3, n)
	for i := range positions {
		positions[i] = mgl32.Vec3{
			float32((rng.Float64() - 0.5) * w),
			float32((rng.Float64() - 0.5) * h),
			float32((rng.Float64() - 0.5) * d),
		}
	}
	return &Field{Positions: positions, Rate: rate, Color: col}
}

// Advance rotates the whole field by one tick's fixed increment.
func (f *Field) Advance() {
	f.Angle += f.Rate
}

// RotatedPosition returns point i with the field's current Y rotation
// applied. The stored position is untouched.
func (f *Field) RotatedPosition(i int) mgl32.Vec3 {
	p := f.Positions[i]
	c := float32(math.Cos(float64(f.Angle)))
	s := float32(math.Sin(float64(f.Angle)))
	return mgl32.Vec3{
		p.X()*c + p.Z()*s,
		p.Y(),
		-p.X()*s + p.Z()*c,
	}
}

// Draw renders the field inside an active 3D mode.
func (f *Field) Draw() {
	for i := range f.Positions {
		p := f.RotatedPosition(i)
		pos := rl.NewVector3(p.X(), p.Y(), p.Z())
		if f.MoteRadius > 0 {
			rl.DrawCircle3D(pos, f.MoteRadius, rl.NewVector3(1, 0, 0), 90, f.Color)
		} else {
			rl.DrawPoint3D(pos, f.Color)
		}
	}
}
