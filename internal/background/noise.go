package background

import "math"

// CPU reference of the fragment shader's math. The GPU evaluates the same
// expressions in float32, so the two won't agree bit-for-bit, but the
// reference pins down the intended function of (resolution, time, colors)
// for testing and for reasoning about edge cases.

func fract(x float64) float64 { return x - math.Floor(x) }

func smoothstep(edge0, edge1, x float64) float64 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

func hash21(x, y float64) float64 {
	return fract(math.Sin(x*127.1+y*311.7) * 43758.5453123)
}

// ValueNoise is the shader's 2-D lattice noise: pseudo-random values at
// integer lattice corners, blended with a smoothstep-shaped interpolant.
// Output stays in [0, 1).
func ValueNoise(x, y float64) float64 {
	ix, iy := math.Floor(x), math.Floor(y)
	fx, fy := x-ix, y-iy

	a := hash21(ix, iy)
	b := hash21(ix+1, iy)
	c := hash21(ix, iy+1)
	d := hash21(ix+1, iy+1)

	ux := fx * fx * (3 - 2*fx)
	uy := fy * fy * (3 - 2*fy)

	top := a + (b-a)*ux
	bot := c + (d-c)*ux
	return top + (bot-top)*uy
}

// shimmer is the three-octave noise term before tint and scale.
func shimmer(u, v, t float64) float64 {
	return 0.5*ValueNoise(u*3+t*0.05, v*3+t*0.05) +
		0.3*ValueNoise(u*6+t*0.08, v*6+t*0.08) +
		0.2*ValueNoise(u*12+t*0.12, v*12+t*0.12)
}

// Vignette returns the brightness multiplier at normalized radius r from
// the frame center: 1.0 inside r=0.2, falling smoothly to 0.85 by r=0.9.
func Vignette(r float64) float64 {
	return 1 - 0.15*smoothstep(0.2, 0.9, r)
}

// Eval computes the frame color at pixel (px, py) exactly as the fragment
// shader does. Colors are RGB in [0,1]; the returned channels may exceed 1
// before display clamping, matching the shader's additive shimmer.
func Eval(resW, resH, t float64, top, bottom [3]float64, px, py float64) [3]float64 {
	if resW < 1 {
		resW = 1
	}
	if resH < 1 {
		resH = 1
	}
	u := px / resW
	v := py / resH

	g := smoothstep(0, 1, v)
	col := [3]float64{
		bottom[0] + (top[0]-bottom[0])*g,
		bottom[1] + (top[1]-bottom[1])*g,
		bottom[2] + (top[2]-bottom[2])*g,
	}

	n := shimmer(u, v, t) * 0.12
	col[0] += n * 1.0
	col[1] += n * 0.8
	col[2] += n * 1.1

	du, dv := u-0.5, v-0.5
	vig := Vignette(math.Sqrt(du*du + dv*dv))

	col[0] *= vig
	col[1] *= vig
	col[2] *= vig
	return col
}
