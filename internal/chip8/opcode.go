package chip8

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// Opcode is a raw 16-bit CHIP-8 instruction word.
type Opcode uint16

// Decode returns the opcode for a 16-bit instruction word. Every word
// decodes, validity is decided at dispatch.
func Decode(word uint16) Opcode {
	return Opcode(word)
}

// Category returns the first nibble that selects the instruction group.
func (o Opcode) Category() byte {
	return byte(o >> 12)
}

// X returns the second nibble, the first register operand.
func (o Opcode) X() byte {
	return byte(o>>8) & 0xF
}

// Y returns the third nibble, the second register operand.
func (o Opcode) Y() byte {
	return byte(o>>4) & 0xF
}

// N returns the last nibble, the sub-opcode or sprite height.
func (o Opcode) N() byte {
	return byte(o) & 0xF
}

// KK returns the low byte immediate.
func (o Opcode) KK() byte {
	return byte(o)
}

// Address returns the low 12 bits address operand.
func (o Opcode) Address() uint16 {
	return uint16(o) & MaxAddress
}

// Nibbles returns all four nibbles, most significant first.
func (o Opcode) Nibbles() [4]byte {
	return [4]byte{o.Category(), o.X(), o.Y(), o.N()}
}
