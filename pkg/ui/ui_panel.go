package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelPad     = 10
	titleHeight  = 22
	headerHeight = 20
	labelHeight  = 15
)

type widget interface {
	Update(p Pointer)
	Draw(screen *ebiten.Image)
}

// row is either a group header or a labelled widget.
type row struct {
	y      float64 // absolute top of the row
	header string
	label  string
	w      widget
}

// OptionsPanel stacks sliders and checkboxes under group headers.
// Rows are laid out once when added; the panel does not scroll.
type OptionsPanel struct {
	Title string
	X, Y  float64
	Width float64

	rows   []row
	bottom float64

	BGColor     color.RGBA
	BorderColor color.RGBA
	HeaderColor color.RGBA
}

func NewOptionsPanel(title string, x, y, width float64) *OptionsPanel {
	return &OptionsPanel{
		Title:       title,
		X:           x,
		Y:           y,
		Width:       width,
		bottom:      y + titleHeight,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
		HeaderColor: color.RGBA{R: 60, G: 60, B: 70, A: 255},
	}
}

// Group starts a new titled group of rows.
func (p *OptionsPanel) Group(title string) {
	p.rows = append(p.rows, row{y: p.bottom, header: title})
	p.bottom += headerHeight + 4
}

// AddSlider appends a labelled slider and returns it for reading its Value.
func (p *OptionsPanel) AddSlider(label string, min, max, value float64) *Slider {
	top := p.bottom
	s := NewSlider(p.X+panelPad, top+labelHeight, p.Width-2*panelPad, label, min, max, value)
	p.rows = append(p.rows, row{y: top, label: label, w: s})
	p.bottom = s.Y + s.H + 10
	return s
}

// AddCheckbox appends a checkbox whose label sits to the right of the box.
func (p *OptionsPanel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+panelPad, p.bottom, label, value)
	p.rows = append(p.rows, row{y: p.bottom, w: c})
	p.bottom += c.Size + 6
	return c
}

// Height is the panel height including the bottom padding.
func (p *OptionsPanel) Height() float64 {
	return p.bottom - p.Y + panelPad
}

func (p *OptionsPanel) Update(ptr Pointer) {
	for _, r := range p.rows {
		if r.w != nil {
			r.w.Update(ptr)
		}
	}
}

func (p *OptionsPanel) Draw(screen *ebiten.Image) {
	h := float32(p.Height())
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), h, p.BGColor, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), h, 2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+panelPad), int(p.Y+5))

	for _, r := range p.rows {
		if r.header != "" {
			vector.FillRect(screen, float32(p.X+5), float32(r.y), float32(p.Width-10), headerHeight, p.HeaderColor, true)
			ebitenutil.DebugPrintAt(screen, r.header, int(p.X+panelPad), int(r.y+3))
			continue
		}
		if r.label != "" {
			ebitenutil.DebugPrintAt(screen, r.label, int(p.X+panelPad), int(r.y))
		}
		r.w.Draw(screen)
	}
}
