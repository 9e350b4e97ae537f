// Package disasm implements the static CHIP-8 program lister.
// It prints program words either as raw hex rows or one instruction per line.
package disasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// Mode selects the listing format.
type Mode int

// Listing formats.
const (
	// Mnemonic prints one decoded instruction per line.
	Mnemonic Mode = iota
	// Raw prints rows of wordsPerRow hex words.
	Raw
)

const wordsPerRow = 5

// Options of the disassembler.
type Options struct {
	Mode Mode
}

// Disassembler lists CHIP-8 programs.
type Disassembler struct {
	logger  *log.Logger
	options Options
}

// New returns a new disassembler.
func New(logger *log.Logger, options Options) *Disassembler {
	return &Disassembler{
		logger:  logger,
		options: options,
	}
}

// Process writes the listing of the program, addressed as loaded at
// chip8.ProgramStart. A trailing odd byte is padded with zero.
func (d *Disassembler) Process(writer io.Writer, program []byte) error {
	words := programWords(program)

	var err error
	switch d.options.Mode {
	case Raw:
		err = writeRaw(writer, words)
	case Mnemonic:
		err = writeMnemonics(writer, words)
	default:
		return fmt.Errorf("unsupported listing mode %d", d.options.Mode)
	}
	if err != nil {
		return err
	}

	d.logger.Debug("Program listed",
		log.Int("words", len(words)),
		log.Int("bytes", len(program)))
	return nil
}

func programWords(program []byte) []chip8.Opcode {
	words := make([]chip8.Opcode, 0, (len(program)+1)/2)
	for i := 0; i < len(program); i += 2 {
		var low byte
		if i+1 < len(program) {
			low = program[i+1]
		}
		words = append(words, chip8.Decode(uint16(program[i])<<8 | uint16(low)))
	}
	return words
}

// writeRaw writes rows prefixed by the decimal and hex memory address of
// their first word.
func writeRaw(writer io.Writer, words []chip8.Opcode) error {
	for start := 0; start < len(words); start += wordsPerRow {
		end := min(start+wordsPerRow, len(words))
		address := chip8.ProgramStart + 2*start

		hexWords := make([]string, 0, end-start)
		for _, word := range words[start:end] {
			hexWords = append(hexWords, fmt.Sprintf("%04X", uint16(word)))
		}

		if _, err := fmt.Fprintf(writer, "%05d | %05X : %s\n", address, address, strings.Join(hexWords, " ")); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}

func writeMnemonics(writer io.Writer, words []chip8.Opcode) error {
	for i, word := range words {
		address := chip8.ProgramStart + 2*i
		if _, err := fmt.Fprintf(writer, "$%03X  %04X  %s\n", address, uint16(word), Instruction(word)); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}
