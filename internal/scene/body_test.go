package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBodiesCreation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bodies := NewBodies(12, rng)
	require.Len(t, bodies, 12)

	palettesSeen := map[int]bool{}
	for i, b := range bodies {
		assert.GreaterOrEqual(t, b.Radius, float32(0.25), "body %d radius", i)
		assert.LessOrEqual(t, b.Radius, float32(0.70), "body %d radius", i)
		assert.LessOrEqual(t, math.Abs(float64(b.Pos.X())), 9.0, "body %d x", i)
		assert.LessOrEqual(t, math.Abs(float64(b.Pos.Y())), 6.0, "body %d y", i)
		assert.LessOrEqual(t, math.Abs(float64(b.Pos.Z())), 8.0, "body %d z", i)
		for axis := 0; axis < 3; axis++ {
			assert.LessOrEqual(t, math.Abs(float64(b.Vel[axis])), 0.0075, "body %d vel axis %d", i, axis)
		}
		palettesSeen[b.Pal] = true
	}
	assert.Len(t, palettesSeen, 2, "with 12 coin flips both palettes should occur")
}

func TestNewBodiesDeterministicGivenSeed(t *testing.T) {
	a := NewBodies(12, rand.New(rand.NewSource(42)))
	b := NewBodies(12, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestBodyReflectionFlipsOnlyTriggeringAxis(t *testing.T) {
	b := Body{
		Pos: mgl32.Vec3{Bounds.X() - 0.001, 0, 0},
		Vel: mgl32.Vec3{0.005, 0.002, -0.003},
	}

	b.Step()
	assert.Equal(t, float32(-0.005), b.Vel.X(), "x velocity must negate")
	assert.Equal(t, float32(0.002), b.Vel.Y(), "y velocity untouched")
	assert.Equal(t, float32(-0.003), b.Vel.Z(), "z velocity untouched")
}

func TestBodyReflectionIsNotAClamp(t *testing.T) {
	b := Body{
		Pos: mgl32.Vec3{Bounds.X() - 0.001, 0, 0},
		Vel: mgl32.Vec3{0.005, 0, 0},
	}

	b.Step()
	// One frame of overshoot is allowed; the position is not snapped back.
	assert.Greater(t, b.Pos.X(), Bounds.X())
	assert.LessOrEqual(t, b.Pos.X(), Bounds.X()+0.005)

	b.Step()
	assert.Less(t, b.Pos.X(), Bounds.X()+0.005)
}

func TestBodiesBoundedDrift(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	bodies := NewBodies(12, rng)

	for tick := 0; tick < 200000; tick++ {
		bodies.Step()
	}

	for i, b := range bodies {
		for axis := 0; axis < 3; axis++ {
			limit := float64(Bounds[axis]) + math.Abs(float64(b.Vel[axis]))
			assert.LessOrEqual(t, math.Abs(float64(b.Pos[axis])), limit+1e-4,
				"body %d escaped on axis %d after long run", i, axis)
		}
	}
}

func TestBodySpinAdvancesIndependently(t *testing.T) {
	b := Body{Vel: mgl32.Vec3{0, 0, 0}}
	for i := 0; i < 100; i++ {
		b.Step()
	}
	assert.InDelta(t, 0.8, float64(b.SpinX), 1e-4)
	assert.InDelta(t, 0.9, float64(b.SpinY), 1e-4)
	assert.Equal(t, mgl32.Vec3{}, b.Pos, "spin must not translate the body")
}
