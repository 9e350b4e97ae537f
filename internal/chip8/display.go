package chip8

import "math/bits"

// Display dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// LeftmostPixelBit is the bit index inside a row word that holds the
// leftmost pixel. Pixel x of a row is stored in bit LeftmostPixelBit+x.
const LeftmostPixelBit = 0

// Frame is a copy of the display rows handed to a renderer.
type Frame [Height]uint64

// Pixel returns whether the pixel at the given coordinates is lit.
// Coordinates outside the display are never lit.
func (f Frame) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return f[y]>>(LeftmostPixelBit+x)&1 == 1
}

// Lit returns the number of lit pixels.
func (f Frame) Lit() int {
	var count int
	for _, row := range f {
		count += bits.OnesCount64(row)
	}
	return count
}

// Display is the bit packed framebuffer of the machine.
type Display struct {
	rows  Frame
	dirty bool
}

// Dirty returns whether the display changed since the last TakeFrame.
func (d *Display) Dirty() bool {
	return d.dirty
}

// Frame returns a copy of the current rows without touching the dirty flag.
func (d *Display) Frame() Frame {
	return d.rows
}

// TakeFrame returns a copy of the current rows and clears the dirty flag.
func (d *Display) TakeFrame() Frame {
	d.dirty = false
	return d.rows
}

func (d *Display) clear() {
	d.rows = Frame{}
	d.dirty = true
}
