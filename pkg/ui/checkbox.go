package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox toggles a boolean. The box and its label are both clickable.
type Checkbox struct {
	Label string
	Value bool
	X, Y  float64
	Size  float64

	wasPressed bool
}

func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{Label: label, Value: value, X: x, Y: y, Size: 16}
}

// hitWidth covers the box plus the debug-font label (6px per rune).
func (c *Checkbox) hitWidth() float64 {
	return c.Size + 8 + 6*float64(len([]rune(c.Label)))
}

// Update flips Value on the press edge inside the hit area.
func (c *Checkbox) Update(p Pointer) {
	if p.Pressed && !c.wasPressed && p.In(c.X, c.Y, c.hitWidth(), c.Size) {
		c.Value = !c.Value
	}
	c.wasPressed = p.Pressed
}

func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen, float32(c.X), float32(c.Y), float32(c.Size), float32(c.Size), 2,
		color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
	if c.Value {
		vector.FillRect(screen, float32(c.X+3), float32(c.Y+3), float32(c.Size-6), float32(c.Size-6),
			color.RGBA{R: 100, G: 200, B: 100, A: 255}, true)
	}
	ebitenutil.DebugPrintAt(screen, c.Label, int(c.X+c.Size+8), int(c.Y))
}
