package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// PointLight is a fixed light with linear distance falloff out to Radius.
type PointLight struct {
	Pos       mgl32.Vec3
	Color     [3]float32
	Intensity float32
	Radius    float32
}

// Rig is the static lighting setup: two point lights plus an ambient
// fill. It never changes after creation and takes no part in the tick;
// shading is evaluated on the CPU at each body's center.
type Rig struct {
	Lights  [2]PointLight
	Ambient float32
}

func DefaultRig() Rig {
	return Rig{
		Lights: [2]PointLight{
			{Pos: mgl32.Vec3{10, 12, 10}, Color: [3]float32{1.0, 0.95, 0.9}, Intensity: 1.1, Radius: 120},
			{Pos: mgl32.Vec3{-12, -6, 8}, Color: [3]float32{0.6, 0.5, 1.0}, Intensity: 0.7, Radius: 120},
		},
		Ambient: 0.35,
	}
}

// Shade tints base by the light reaching point p and adds a fixed share
// of the emissive color. Channels clamp at 255.
func (r Rig) Shade(p mgl32.Vec3, base, emissive rl.Color) rl.Color {
	var acc [3]float32
	acc[0] = r.Ambient
	acc[1] = r.Ambient
	acc[2] = r.Ambient

	for _, l := range r.Lights {
		dist := l.Pos.Sub(p).Len()
		fall := 1 - dist/l.Radius
		if fall <= 0 {
			continue
		}
		acc[0] += l.Intensity * fall * l.Color[0]
		acc[1] += l.Intensity * fall * l.Color[1]
		acc[2] += l.Intensity * fall * l.Color[2]
	}

	const emissiveShare = 0.3
	mix := func(b, e uint8, gain float32) uint8 {
		v := float32(b)*gain + float32(e)*emissiveShare
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}

	return rl.NewColor(
		mix(base.R, emissive.R, acc[0]),
		mix(base.G, emissive.G, acc[1]),
		mix(base.B, emissive.B, acc[2]),
		base.A,
	)
}
