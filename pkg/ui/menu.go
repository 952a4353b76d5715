package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	menuButtonHeight = 32
	menuSpacing      = 10
)

// MenuPanel is a centered column of buttons.
type MenuPanel struct {
	Title   string
	X, Y    float64
	Width   float64
	buttons []*Button
}

// NewMenuPanel lays out one button per label, top to bottom.
func NewMenuPanel(title string, x, y, width float64, labels ...string) *MenuPanel {
	m := &MenuPanel{Title: title, X: x, Y: y, Width: width}
	for i, l := range labels {
		by := y + 30 + float64(i)*(menuButtonHeight+menuSpacing)
		m.buttons = append(m.buttons, NewButton(x+10, by, width-20, menuButtonHeight, l))
	}
	return m
}

// Height returns the panel height.
func (m *MenuPanel) Height() float64 {
	return 40 + float64(len(m.buttons))*(menuButtonHeight+menuSpacing)
}

// Update returns the label of the button clicked this frame, or "".
func (m *MenuPanel) Update(p Pointer) string {
	clicked := ""
	for _, b := range m.buttons {
		if b.Update(p) && clicked == "" {
			clicked = b.Label
		}
	}
	return clicked
}

func (m *MenuPanel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(m.X), float32(m.Y), float32(m.Width), float32(m.Height()),
		color.RGBA{R: 40, G: 40, B: 45, A: 230}, true)
	vector.StrokeRect(screen, float32(m.X), float32(m.Y), float32(m.Width), float32(m.Height()),
		2, color.RGBA{R: 100, G: 100, B: 110, A: 255}, true)
	ebitenutil.DebugPrintAt(screen, m.Title, int(m.X+10), int(m.Y+8))
	for _, b := range m.buttons {
		b.Draw(screen)
	}
}
