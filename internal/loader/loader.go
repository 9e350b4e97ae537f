// Package loader handles CHIP-8 program file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8vm/internal/chip8"
)

// ErrEmptyProgram is returned for program files without any content.
var ErrEmptyProgram = errors.New("empty program")

// Loader handles loading program files from disk.
type Loader struct{}

// New creates a new program loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the program file. The content is returned verbatim, only its
// size is validated against the memory space above the program start.
func (l *Loader) Load(fileName string) ([]byte, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", fileName, err)
	}
	defer func() { _ = file.Close() }()

	program, err := l.LoadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("loading file %s: %w", fileName, err)
	}
	return program, nil
}

// LoadFrom reads a program from the reader, at most one byte more than
// fits into memory is read.
func (l *Loader) LoadFrom(reader io.Reader) ([]byte, error) {
	program, err := io.ReadAll(io.LimitReader(reader, chip8.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}

	switch {
	case len(program) == 0:
		return nil, ErrEmptyProgram
	case len(program) > chip8.MaxProgramSize:
		return nil, fmt.Errorf("%w: maximum is %d bytes", chip8.ErrProgramTooLarge, chip8.MaxProgramSize)
	}
	return program, nil
}
