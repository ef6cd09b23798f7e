package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajyot-codes/backdrop/internal/config"
)

// These run without a window: the driver mounts inert (no GL context) and
// every GPU push is skipped, but the CPU-side state they exercise is the
// same state the rendered path reads.

func TestMountTickCameraAndResolution(t *testing.T) {
	d := New(config.Default(), 1)
	require.NoError(t, d.Mount(800, 600))
	require.True(t, d.Mounted())

	w, h := d.Resolution()
	assert.Equal(t, float32(800), w)
	assert.Equal(t, float32(600), h)

	d.Tick()

	assert.InDelta(t, TimeStep, d.Time(), 1e-9)
	x, y, z := d.CameraPosition()
	assert.Equal(t, float32(0), x, "no pointer input, camera stays centered")
	assert.Equal(t, float32(0), y)
	assert.Equal(t, float32(14), z)
}

func TestMountZeroAreaSurfaceFails(t *testing.T) {
	d := New(config.Default(), 1)
	assert.Error(t, d.Mount(0, 600))
	assert.Error(t, d.Mount(800, 0))
	assert.False(t, d.Mounted())

	// A driver that never mounted must treat lifecycle calls as no-ops.
	d.Tick()
	assert.Equal(t, 0.0, d.Time())
	d.Unmount()
	assert.False(t, d.Mounted())
}

func TestUnmountIsIdempotent(t *testing.T) {
	d := New(config.Default(), 1)
	require.NoError(t, d.Mount(800, 600))

	// Immediate unmount with zero ticks elapsed.
	d.Unmount()
	assert.False(t, d.Mounted())

	d.Unmount()
	assert.False(t, d.Mounted())

	// Ticks after unmount do nothing.
	d.Tick()
	assert.Equal(t, 0.0, d.Time())
}

func TestTickAdvancesEveryComponent(t *testing.T) {
	d := New(config.Default(), 3)
	require.NoError(t, d.Mount(800, 600))

	starAngle := d.star.Angle
	mistAngle := d.mist.Angle
	body0 := d.bodies[0].Pos

	for i := 0; i < 10; i++ {
		d.Tick()
	}

	assert.InDelta(t, float64(starAngle)+10*float64(d.star.Rate), float64(d.star.Angle), 1e-6)
	assert.InDelta(t, float64(mistAngle)+10*float64(d.mist.Rate), float64(d.mist.Angle), 1e-6)
	assert.NotEqual(t, body0, d.bodies[0].Pos, "bodies must drift")
	assert.InDelta(t, 10*TimeStep, d.Time(), 1e-9)
}

func TestPointerSourceDrivesParallax(t *testing.T) {
	d := New(config.Default(), 5)
	require.NoError(t, d.Mount(800, 600))

	d.SetPointerSource(func() (float32, float32, bool) { return 800, 600, true })
	d.pumpInput()

	target := d.par.Target()
	assert.Equal(t, float32(0.5), target.X())
	assert.Equal(t, float32(0.5), target.Y())

	for i := 0; i < 500; i++ {
		d.Tick()
	}
	x, y, _ := d.CameraPosition()
	assert.Greater(t, x, float32(0.3))
	assert.Less(t, y, float32(-0.2), "camera Y inverts the pointer offset")
}

func TestSeededDriversMatch(t *testing.T) {
	a := New(config.Default(), 99)
	b := New(config.Default(), 99)

	assert.Equal(t, a.bodies, b.bodies)
	assert.Equal(t, a.star.Positions, b.star.Positions)
	assert.Equal(t, a.mist.Positions, b.mist.Positions)
}

func TestResizeFloorsToOnePixel(t *testing.T) {
	d := New(config.Default(), 1)
	require.NoError(t, d.Mount(800, 600))

	d.Resize(0, -5)
	w, h := d.Resolution()
	assert.Equal(t, float32(1), w)
	assert.Equal(t, float32(1), h)
}
