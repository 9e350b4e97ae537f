package chip8

import "math/bits"

// spriteRowMask places the 8 pixels of a sprite byte at column x of a row.
// The leftmost sprite pixel is bit 7 of the byte, so the byte is reversed
// to put it in bit 0 and then rotated to column x. Pixels rotated past
// bit 63 continue at bit 0, which wraps the sprite at the right edge.
func spriteRowMask(b byte, x int) uint64 {
	return bits.RotateLeft64(uint64(bits.Reverse8(b))<<LeftmostPixelBit, x%Width)
}

// draw XORs height sprite rows read from memory at I onto the display at
// the given coordinates and sets VF to the collision state.
// Rows past the bottom edge wrap to the top.
func (m *Machine) draw(x, y, height byte) {
	column := int(x) % Width
	top := int(y) % Height

	var collision bool
	for r := range int(height) {
		mask := spriteRowMask(m.memory[(int(m.i)+r)&MaxAddress], column)
		row := &m.display.rows[(top+r)%Height]
		collision = collision || *row&mask != 0
		*row ^= mask
	}

	if collision {
		m.v[FlagRegister] = 1
	} else {
		m.v[FlagRegister] = 0
	}
	m.display.dirty = true
}
