package disasm

import (
	"bytes"
	"testing"

	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestProcess_Raw(t *testing.T) {
	program := []byte{
		0x00, 0xE0, 0xA2, 0x2A, 0x60, 0x0C, 0x61, 0x08, 0xD0, 0x1F,
		0x70, 0x09, 0x12, 0x0C,
	}
	dis := New(log.NewTestLogger(t), Options{Mode: Raw})

	var buf bytes.Buffer
	assert.NoError(t, dis.Process(&buf, program))

	expected := "00512 | 00200 : 00E0 A22A 600C 6108 D01F\n" +
		"00522 | 0020A : 7009 120C\n"
	assert.Equal(t, expected, buf.String())
}

func TestProcess_RawOddLength(t *testing.T) {
	dis := New(log.NewTestLogger(t), Options{Mode: Raw})

	var buf bytes.Buffer
	assert.NoError(t, dis.Process(&buf, []byte{0x12, 0x00, 0xAB}))
	assert.Equal(t, "00512 | 00200 : 1200 AB00\n", buf.String())
}

func TestProcess_Mnemonic(t *testing.T) {
	program := []byte{0x00, 0xE0, 0x12, 0x34, 0x23, 0x00, 0xFF, 0xFF}
	dis := New(log.NewTestLogger(t), Options{Mode: Mnemonic})

	var buf bytes.Buffer
	assert.NoError(t, dis.Process(&buf, program))

	expected := "$200  00E0  cls\n" +
		"$202  1234  jp $234\n" +
		"$204  2300  call $300\n" +
		"$206  FFFF  .word $FFFF\n"
	assert.Equal(t, expected, buf.String())
}

func TestProcess_UnsupportedMode(t *testing.T) {
	dis := New(log.NewTestLogger(t), Options{Mode: Mode(42)})

	var buf bytes.Buffer
	assert.ErrorContains(t, dis.Process(&buf, []byte{0x00, 0xE0}), "unsupported listing mode")
}

func TestInstruction(t *testing.T) {
	tests := []struct {
		name     string
		opcode   chip8.Opcode
		expected string
	}{
		{"CLS instruction", 0x00E0, "cls"},
		{"RET instruction", 0x00EE, "ret"},
		{"JP instruction", 0x1234, "jp $234"},
		{"CALL instruction", 0x2300, "call $300"},
		{"SE Vx, byte", 0x3234, "se V2, $34"},
		{"LD I, addr", 0xA234, "ld I, $234"},
		{"unknown word", 0xFFFF, ".word $FFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Instruction(tt.opcode))
		})
	}
}

func TestFormatParams(t *testing.T) {
	tests := []struct {
		name     string
		opcode   chip8.Opcode
		expected string
	}{
		{"CLS", 0x00E0, ""},
		{"JP direct", 0x1234, "$234"},
		{"JP V0 indexed", 0xB234, "V0, $234"},
		{"SE Vx, byte", 0x3234, "V2, $34"},
		{"SNE Vx, byte", 0x4234, "V2, $34"},
		{"SE Vx, Vy", 0x5230, "V2, V3"},
		{"SNE Vx, Vy", 0x9230, "V2, V3"},
		{"LD Vx, byte", 0x6234, "V2, $34"},
		{"ADD Vx, byte", 0x7234, "V2, $34"},
		{"LD Vx, Vy", 0x8230, "V2, V3"},
		{"SUBN Vx, Vy", 0x8237, "V2, V3"},
		{"SHR Vx", 0x8236, "V2"},
		{"SHL Vx", 0x823E, "V2"},
		{"LD I, addr", 0xA234, "I, $234"},
		{"RND Vx, byte", 0xC234, "V2, $34"},
		{"DRW Vx, Vy, n", 0xD235, "V2, V3, $5"},
		{"SKP Vx", 0xE29E, "V2"},
		{"ADD I, Vx", 0xF21E, "I, V2"},
		{"LD B, Vx", 0xF233, "B, V2"},
		{"LD [I], Vx", 0xF255, "[I], V2"},
		{"LD Vx, [I]", 0xF265, "V2, [I]"},
		{"LD Vx, DT", 0xF207, "V2, DT"},
		{"unknown misc", 0xF2FF, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatParams(tt.opcode))
		})
	}
}
