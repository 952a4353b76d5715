package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider picks a value in [Min, Max] by dragging.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64
}

func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	return &Slider{Label: label, Value: value, Min: min, Max: max, X: x, Y: y, W: w, H: 10}
}

// Update moves the value to the pointer while it is pressed over the slider.
func (s *Slider) Update(p Pointer) {
	if !p.Pressed || !p.In(s.X, s.Y, s.W, s.H) || s.W <= 0 {
		return
	}
	ratio := (p.X - s.X) / s.W
	s.Value = s.Min + ratio*(s.Max-s.Min)
	if s.Value < s.Min {
		s.Value = s.Min
	}
	if s.Value > s.Max {
		s.Value = s.Max
	}
}

// Draw renders the slider
func (s *Slider) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	ratio := 0.0
	if s.Max > s.Min {
		ratio = (s.Value - s.Min) / (s.Max - s.Min)
	}
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
}
