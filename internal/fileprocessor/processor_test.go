package fileprocessor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestProcessFile_WritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "test.ch8")
	output := filepath.Join(dir, "test.txt")
	// CLS; JP $202
	assert.NoError(t, os.WriteFile(input, []byte{0x00, 0xE0, 0x12, 0x02}, 0600))

	opts := options.New()
	opts.Input = input
	opts.Output = output
	opts.Disassemble = true

	assert.NoError(t, ProcessFile(context.Background(), log.NewTestLogger(t), opts))

	data, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, "$200  00E0  cls\n$202  1202  jp $202\n", string(data))
}

func TestProcessFile_MissingInput(t *testing.T) {
	opts := options.New()
	opts.Input = filepath.Join(t.TempDir(), "missing.ch8")
	opts.Headless = true

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts)
	assert.ErrorContains(t, err, "missing.ch8")
}

func TestCreateWriter(t *testing.T) {
	writer, err := createWriter(options.Program{})
	assert.NoError(t, err)
	assert.True(t, writer == os.Stdout)

	opts := options.Program{Parameters: options.Parameters{Output: filepath.Join(t.TempDir(), "missing", "out.txt")}}
	_, err = createWriter(opts)
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "creating output file"))
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)
	PrintBanner(logger, options.Program{}, "1.0.0", "abcdef0123", "2024-01-01")
	PrintBanner(logger, options.Program{Flags: options.Flags{Quiet: true}}, "dev", "", "")
}
