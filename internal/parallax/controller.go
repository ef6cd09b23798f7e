// Package parallax maps pointer position to a damped camera offset.
package parallax

import "github.com/go-gl/mathgl/mgl32"

const (
	// Damping factor per tick at the nominal 60 Hz rate. In (0, 1), so the
	// current vector approaches the scaled target without overshooting.
	Damping = 0.03

	// Asymmetric axis scale biases perceived depth.
	ScaleX = 0.8
	ScaleY = 0.6
)

// Controller holds the raw pointer target and the damped current offset.
// Input handlers write only the target; the tick owns current. Until the
// first pointer event both stay zero and the camera sits centered.
type Controller struct {
	target  mgl32.Vec2
	current mgl32.Vec2
	depth   float32
}

// New returns a controller whose camera rests at (0, 0, depth).
func New(depth float32) *Controller {
	return &Controller{depth: depth}
}

// SetPointer records a pointer position in surface pixels. The target is
// the normalized offset from the surface center, about [-0.5, 0.5] per
// axis regardless of aspect ratio. Zero-area surfaces are ignored.
func (c *Controller) SetPointer(px, py, w, h float32) {
	if w < 1 || h < 1 {
		return
	}
	c.target = mgl32.Vec2{px/w - 0.5, py/h - 0.5}
}

// Step moves current a fixed fraction toward the scaled target.
func (c *Controller) Step() {
	goalX := c.target.X() * ScaleX
	goalY := c.target.Y() * ScaleY
	c.current = mgl32.Vec2{
		c.current.X() + (goalX-c.current.X())*Damping,
		c.current.Y() + (goalY-c.current.Y())*Damping,
	}
}

// CameraPosition derives the camera from the damped offset. The Y axis is
// inverted so the scene leans away from the pointer; the camera always
// looks back at the origin, so orientation is fully position-derived.
func (c *Controller) CameraPosition() mgl32.Vec3 {
	return mgl32.Vec3{c.current.X(), -c.current.Y(), c.depth}
}

func (c *Controller) Target() mgl32.Vec2  { return c.target }
func (c *Controller) Current() mgl32.Vec2 { return c.current }
