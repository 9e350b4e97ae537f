// Package debug prints machine state snapshots for inspection.
package debug

import (
	"fmt"
	"io"

	"github.com/k0kubun/pp/v3"
	"github.com/retroenv/chip8vm/internal/chip8"
)

// MemoryWindowSize is the number of bytes captured at the index register.
const MemoryWindowSize = 16

// Snapshot is the inspectable state of a machine after a run.
type Snapshot struct {
	Result    string
	Cycles    uint64
	PC        uint16
	I         uint16
	Registers [chip8.RegisterCount]byte
	Stack     []uint16
	LitPixels int

	// MemoryAtI holds the bytes that I points to, wrapping at the end of memory.
	MemoryAtI [MemoryWindowSize]byte
}

// NewSnapshot captures the state of the machine.
func NewSnapshot(m *chip8.Machine, result chip8.Result, cycles uint64) Snapshot {
	return Snapshot{
		Result:    result.String(),
		Cycles:    cycles,
		PC:        m.PC(),
		I:         m.I(),
		Registers: m.Registers(),
		Stack:     m.Stack().Addresses(),
		LitPixels: m.Display().Frame().Lit(),
		MemoryAtI: memoryWindow(m.Memory(), m.I()),
	}
}

func memoryWindow(memory [chip8.MemorySize]byte, start uint16) [MemoryWindowSize]byte {
	var window [MemoryWindowSize]byte
	for n := range MemoryWindowSize {
		window[n] = memory[(int(start)+n)&chip8.MaxAddress]
	}
	return window
}

// Dump pretty prints the snapshot without terminal colors.
func Dump(writer io.Writer, snapshot Snapshot) error {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	if _, err := printer.Fprintln(writer, snapshot); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
