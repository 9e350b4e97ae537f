package chip8

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// CHIP-8 memory layout constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// MaxAddress is the highest valid address, also the 12-bit address mask.
	MaxAddress = MemorySize - 1

	// ProgramStart is the memory address where programs are loaded and
	// execution begins.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program that fits above ProgramStart.
	MaxProgramSize = MemorySize - ProgramStart
)

// RegisterCount is the number of general purpose registers.
const RegisterCount = 16

// FlagRegister is the index of VF, which receives carry, borrow and
// collision flags.
const FlagRegister = 0xF

// ErrProgramTooLarge is returned by Load for programs that do not fit
// into memory above ProgramStart.
var ErrProgramTooLarge = errors.New("program too large")

// RandomFunc returns a random byte for the Cxkk instruction.
type RandomFunc func() byte

// Option configures a Machine.
type Option func(*Machine)

// WithRandom sets the random byte source used by the Cxkk instruction.
func WithRandom(random RandomFunc) Option {
	return func(m *Machine) {
		m.random = random
	}
}

// WithSeed makes the Cxkk instruction deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return func(m *Machine) {
		m.random = seededRandom(seed)
	}
}

// WithTrace sets a hook that is called before every instruction dispatch.
func WithTrace(trace TraceFunc) Option {
	return func(m *Machine) {
		m.trace = trace
	}
}

// Machine is the complete state of one CHIP-8 virtual machine run.
type Machine struct {
	memory  [MemorySize]byte
	v       [RegisterCount]byte
	i       uint16
	pc      uint16
	stack   Stack
	display Display

	random RandomFunc
	trace  TraceFunc
}

// New returns a machine with zeroed memory and registers and the program
// counter at ProgramStart.
func New(options ...Option) *Machine {
	m := &Machine{
		pc:     ProgramStart,
		random: func() byte { return byte(rand.Uint32()) },
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Load copies the program verbatim into memory at ProgramStart.
func (m *Machine) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}
	copy(m.memory[ProgramStart:], program)
	return nil
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// I returns the index register.
func (m *Machine) I() uint16 {
	return m.i
}

// V returns the value of register Vx. Only the low nibble of x is used.
func (m *Machine) V(x byte) byte {
	return m.v[x&0xF]
}

// Registers returns a copy of all general purpose registers.
func (m *Machine) Registers() [RegisterCount]byte {
	return m.v
}

// ReadByte returns the memory byte at the address, wrapped to 12 bits.
func (m *Machine) ReadByte(address uint16) byte {
	return m.memory[address&MaxAddress]
}

// Memory returns a copy of the whole memory.
func (m *Machine) Memory() [MemorySize]byte {
	return m.memory
}

// Stack returns the call stack.
func (m *Machine) Stack() *Stack {
	return &m.stack
}

// Display returns the display buffer.
func (m *Machine) Display() *Display {
	return &m.display
}

// fetch reads the big endian instruction word at the address. The low byte
// of a word at MaxAddress is read from address 0.
func (m *Machine) fetch(address uint16) Opcode {
	high := m.memory[address&MaxAddress]
	low := m.memory[(address+1)&MaxAddress]
	return Decode(uint16(high)<<8 | uint16(low))
}

func seededRandom(seed uint64) RandomFunc {
	source := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	return func() byte {
		return byte(source.Uint32())
	}
}
