package stream

import (
	"encoding/binary"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/blueprint/animate"
)

// Frame represents a frame of RGB pixels to display on an LED matrix.
type Frame struct {
	width  int
	height int
	pixels []colorful.Color
}

// NewFrame creates a new black Frame instance.
func NewFrame(width, height int) *Frame {
	f := new(Frame)
	f.width = width
	f.height = height
	f.pixels = make([]colorful.Color, width*height)
	return f
}

// Width returns the width of the frame in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the height of the frame in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// Set colours the pixel at x, y. Coordinates outside the frame are ignored.
func (f *Frame) Set(x, y int, c colorful.Color) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.pixels[y*f.width+x] = c
}

// At returns the colour of the pixel at x, y, or black outside the frame.
func (f *Frame) At(x, y int) colorful.Color {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return colorful.Color{}
	}
	return f.pixels[y*f.width+x]
}

// DrawLine colours the pixels along the line from a to b.
func (f *Frame) DrawLine(a, b animate.Point, c colorful.Color) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		f.Set(int(math.Round(a.X)), int(math.Round(a.Y)), c)
		return
	}

	xInc := dx / float64(steps)
	yInc := dy / float64(steps)
	for i := 0; i <= steps; i++ {
		x := a.X + xInc*float64(i)
		y := a.Y + yInc*float64(i)
		f.Set(int(math.Round(x)), int(math.Round(y)), c)
	}
}

// InterpolateFrame merges two frames; a transitionPoint of 0 gives f and 1
// gives f2.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := NewFrame(f.width, f.height)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			out.pixels[y*f.width+x] = f.At(x, y).BlendHcl(f2.At(x, y), transitionPoint)
		}
	}

	return out
}

// MarshalBinary converts a Frame into binary data: little-endian uint16
// width and height followed by row-major RGB triplets.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 4, (len(f.pixels)*3)+4)
	binary.LittleEndian.PutUint16(data, uint16(f.width))
	binary.LittleEndian.PutUint16(data[2:], uint16(f.height))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
