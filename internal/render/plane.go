// Package render draws board frames: two monochrome planes, one per
// printable ink color of the panel, composed fresh every cycle.
package render

import (
	"image"
	"image/color"
)

// Panel canvas in landscape orientation.
const (
	Width  = 250
	Height = 122
)

// Plane is a single ink channel: a 1-bit surface where a set pixel is
// inked and an unset pixel is background. It implements draw.Image so the
// font drawer can write into it directly.
type Plane struct {
	w, h int
	ink  []bool
}

// NewPlane creates a blank plane of the given dimensions.
func NewPlane(w, h int) *Plane {
	return &Plane{w: w, h: h, ink: make([]bool, w*h)}
}

func (p *Plane) ColorModel() color.Model { return color.GrayModel }

func (p *Plane) Bounds() image.Rectangle { return image.Rect(0, 0, p.w, p.h) }

func (p *Plane) At(x, y int) color.Color {
	if p.Ink(x, y) {
		return color.Black
	}
	return color.White
}

// Set implements draw.Image: dark colors ink the pixel, light colors
// clear it.
func (p *Plane) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return
	}
	g := color.GrayModel.Convert(c).(color.Gray)
	p.ink[y*p.w+x] = g.Y < 0x80
}

// Ink reports whether the pixel at (x, y) is inked. Out-of-bounds pixels
// are background.
func (p *Plane) Ink(x, y int) bool {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return false
	}
	return p.ink[y*p.w+x]
}

// fillBox inks the rectangle with inclusive corners (x0,y0)-(x1,y1),
// clipped to the plane.
func (p *Plane) fillBox(x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x >= 0 && y >= 0 && x < p.w && y < p.h {
				p.ink[y*p.w+x] = true
			}
		}
	}
}

// InkCount returns the number of inked pixels.
func (p *Plane) InkCount() int {
	n := 0
	for _, set := range p.ink {
		if set {
			n++
		}
	}
	return n
}

// Frame is one complete board image: the black and red channels drawn for
// a single cycle and handed to the sink together.
type Frame struct {
	Black *Plane
	Red   *Plane
}

// NewFrame creates a blank frame at the panel dimensions.
func NewFrame() Frame {
	return Frame{Black: NewPlane(Width, Height), Red: NewPlane(Width, Height)}
}
