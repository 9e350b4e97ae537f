package disasm

import (
	"fmt"

	"github.com/retroenv/chip8vm/internal/chip8"
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Instruction returns the assembly text of the opcode, or a .word
// directive for words that do not decode to a known instruction.
func Instruction(op chip8.Opcode) string {
	ins := lookupInstruction(op)
	if ins == nil {
		return fmt.Sprintf(".word $%04X", uint16(op))
	}
	if params := formatParams(op); params != "" {
		return fmt.Sprintf("%s %s", ins.Name, params)
	}
	return ins.Name
}

// lookupInstruction finds the instruction matching the opcode in the
// opcode table of its category nibble.
func lookupInstruction(op chip8.Opcode) *chip8cpu.Instruction {
	word := uint16(op)
	for _, candidate := range chip8cpu.Opcodes[int(op.Category())] {
		if candidate.Info.Mask&word == candidate.Info.Value {
			return candidate.Instruction
		}
	}
	return nil
}

// formatParams formats the operands of an instruction.
func formatParams(op chip8.Opcode) string {
	switch op.Category() {
	case 0x0:
		return ""
	case 0x1, 0x2:
		return formatAddress(op)
	case 0x3, 0x4, 0x6, 0x7, 0xC:
		return fmt.Sprintf("V%X, $%02X", op.X(), op.KK())
	case 0x5, 0x9:
		return formatRegisterPair(op)
	case 0x8:
		return formatArithmetic(op)
	case 0xA:
		return fmt.Sprintf("I, %s", formatAddress(op))
	case 0xB:
		return fmt.Sprintf("V0, %s", formatAddress(op))
	case 0xD:
		return fmt.Sprintf("V%X, V%X, $%X", op.X(), op.Y(), op.N())
	case 0xE:
		return fmt.Sprintf("V%X", op.X())
	default:
		return formatMisc(op)
	}
}

func formatAddress(op chip8.Opcode) string {
	return fmt.Sprintf("$%03X", op.Address())
}

func formatRegisterPair(op chip8.Opcode) string {
	return fmt.Sprintf("V%X, V%X", op.X(), op.Y())
}

// formatArithmetic formats the 8xyn group, shifts only name Vx.
func formatArithmetic(op chip8.Opcode) string {
	switch op.N() {
	case 0x6, 0xE:
		return fmt.Sprintf("V%X", op.X())
	default:
		return formatRegisterPair(op)
	}
}

// formatMisc formats the Fxkk group, where the low byte selects the
// implicit operand.
func formatMisc(op chip8.Opcode) string {
	x := op.X()
	switch op.KK() {
	case 0x07:
		return fmt.Sprintf("V%X, DT", x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", x)
	case 0x1E:
		return fmt.Sprintf("I, V%X", x)
	case 0x29:
		return fmt.Sprintf("F, V%X", x)
	case 0x33:
		return fmt.Sprintf("B, V%X", x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", x)
	default:
		return ""
	}
}
