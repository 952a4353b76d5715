package ui

import "github.com/hajimehoshi/ebiten/v2"

// Pointer is the mouse state sampled once per frame and handed to widgets.
type Pointer struct {
	X, Y    float64
	Pressed bool // left button held
}

// ReadPointer samples the ebiten cursor.
func ReadPointer() Pointer {
	mx, my := ebiten.CursorPosition()
	return Pointer{
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// In reports whether the pointer lies inside the rectangle.
func (p Pointer) In(x, y, w, h float64) bool {
	return p.X >= x && p.X <= x+w && p.Y >= y && p.Y <= y+h
}
