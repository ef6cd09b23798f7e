// Package debug draws the runtime overlay toggled with F8.
package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/prajyot-codes/backdrop/internal/parallax"
	"github.com/prajyot-codes/backdrop/internal/scene"
)

type Overlay struct {
	Visible bool

	fontSize   int32
	lineHeight int32
}

func NewOverlay() *Overlay {
	return &Overlay{fontSize: 10, lineHeight: 14}
}

func (o *Overlay) Draw(timeAcc float64, par *parallax.Controller, bodies scene.Bodies) {
	x, y := int32(10), int32(10)

	bg := rl.NewColor(0, 0, 0, 160)
	rl.DrawRectangle(x-4, y-4, 240, o.lineHeight*(4+int32(len(bodies)))+8, bg)

	o.line(x, &y, fmt.Sprintf("%d fps  t=%.2f", rl.GetFPS(), timeAcc), rl.White)

	target := par.Target()
	current := par.Current()
	o.line(x, &y, fmt.Sprintf("target  %+.3f %+.3f", target.X(), target.Y()), rl.LightGray)
	o.line(x, &y, fmt.Sprintf("current %+.3f %+.3f", current.X(), current.Y()), rl.LightGray)
	o.line(x, &y, fmt.Sprintf("bodies  %d", len(bodies)), rl.LightGray)

	for i := range bodies {
		b := &bodies[i]
		col := scene.Palettes[b.Pal].Base
		o.line(x, &y, fmt.Sprintf("  %2d  %+6.2f %+6.2f %+6.2f", i,
			b.Pos.X(), b.Pos.Y(), b.Pos.Z()), col)
	}
}

func (o *Overlay) line(x int32, y *int32, text string, col rl.Color) {
	rl.DrawText(text, x, *y, o.fontSize, col)
	*y += o.lineHeight
}
