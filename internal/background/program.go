package background

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/prajyot-codes/backdrop/internal/utils"
)

const vertexSource = `
#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec4 vertexColor;
uniform mat4 mvp;
out vec2 fragTexCoord;
out vec4 fragColor;
void main() {
    fragTexCoord = vertexTexCoord;
    fragColor = vertexColor;
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

const fragmentSource = `
#version 330
in vec2 fragTexCoord;
in vec4 fragColor;
out vec4 finalColor;

uniform vec2 resolution;
uniform float time;
uniform vec3 topColor;
uniform vec3 bottomColor;

float hash21(vec2 p) {
    return fract(sin(dot(p, vec2(127.1, 311.7))) * 43758.5453123);
}

float vnoise(vec2 p) {
    vec2 i = floor(p);
    vec2 f = fract(p);
    float a = hash21(i);
    float b = hash21(i + vec2(1.0, 0.0));
    float c = hash21(i + vec2(0.0, 1.0));
    float d = hash21(i + vec2(1.0, 1.0));
    vec2 u = f * f * (3.0 - 2.0 * f);
    return mix(mix(a, b, u.x), mix(c, d, u.x), u.y);
}

void main() {
    vec2 res = max(resolution, vec2(1.0));
    vec2 uv = gl_FragCoord.xy / res;

    float g = smoothstep(0.0, 1.0, uv.y);
    vec3 col = mix(bottomColor, topColor, g);

    float n = 0.5 * vnoise(uv * 3.0 + time * 0.05)
            + 0.3 * vnoise(uv * 6.0 + time * 0.08)
            + 0.2 * vnoise(uv * 12.0 + time * 0.12);
    col += n * 0.12 * vec3(1.0, 0.8, 1.1);

    float r = length(uv - 0.5);
    float vig = 1.0 - 0.15 * smoothstep(0.2, 0.9, r);

    finalColor = vec4(col * vig, 1.0);
}
`

type uniformLocations struct {
	resolution int32
	time       int32
	top        int32
	bottom     int32
}

// Program renders the full-viewport gradient pass. It keeps a CPU-side
// mirror of every uniform so the state is inspectable without a GL
// context; pushes to the GPU only happen after a successful Load.
type Program struct {
	shader rl.Shader
	locs   uniformLocations
	ready  bool

	resolution [2]float32
	time       float32
	top        [3]float32
	bottom     [3]float32
}

func NewProgram(top, bottom [3]float32) *Program {
	return &Program{top: top, bottom: bottom}
}

// Load compiles the embedded shader. Requires an active window; without
// one the program stays inert and every Set/Draw call is a no-op.
func (p *Program) Load() {
	if p.ready {
		return
	}

	p.shader = rl.LoadShaderFromMemory(vertexSource, fragmentSource)
	if p.shader.ID == 0 {
		utils.Warn("background: shader failed to compile, gradient pass disabled")
		return
	}

	p.locs = uniformLocations{
		resolution: rl.GetShaderLocation(p.shader, "resolution"),
		time:       rl.GetShaderLocation(p.shader, "time"),
		top:        rl.GetShaderLocation(p.shader, "topColor"),
		bottom:     rl.GetShaderLocation(p.shader, "bottomColor"),
	}
	p.ready = true

	rl.SetShaderValue(p.shader, p.locs.top, p.top[:], rl.ShaderUniformVec3)
	rl.SetShaderValue(p.shader, p.locs.bottom, p.bottom[:], rl.ShaderUniformVec3)
	p.push()
}

func (p *Program) Ready() bool { return p.ready }

// SetResolution floors both components to 1 pixel so the shader's aspect
// math never divides by zero.
func (p *Program) SetResolution(w, h float32) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	p.resolution = [2]float32{w, h}
	if p.ready {
		rl.SetShaderValue(p.shader, p.locs.resolution, p.resolution[:], rl.ShaderUniformVec2)
	}
}

func (p *Program) SetTime(t float32) {
	p.time = t
	if p.ready {
		rl.SetShaderValue(p.shader, p.locs.time, []float32{t}, rl.ShaderUniformFloat)
	}
}

func (p *Program) Resolution() (float32, float32) {
	return p.resolution[0], p.resolution[1]
}

func (p *Program) Time() float32 { return p.time }

func (p *Program) push() {
	rl.SetShaderValue(p.shader, p.locs.resolution, p.resolution[:], rl.ShaderUniformVec2)
	rl.SetShaderValue(p.shader, p.locs.time, []float32{p.time}, rl.ShaderUniformFloat)
}

// Draw fills the viewport with the gradient quad. Runs in raylib's 2D
// pass, so it ignores the 3D camera entirely.
func (p *Program) Draw(width, height int32) {
	if !p.ready {
		return
	}
	rl.BeginShaderMode(p.shader)
	rl.DrawRectangle(0, 0, width, height, rl.White)
	rl.EndShaderMode()
}

// Unload releases the compiled shader. Safe to call repeatedly.
func (p *Program) Unload() {
	if !p.ready {
		return
	}
	rl.UnloadShader(p.shader)
	p.ready = false
}
