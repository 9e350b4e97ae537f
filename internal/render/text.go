// Package render implements frame renderers for the CHIP-8 display.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/retroenv/chip8vm/internal/chip8"
)

// Characters used for lit and unlit pixels by the text renderer.
const (
	LitPixel   = '#'
	UnlitPixel = '.'
)

var _ chip8.Renderer = (*Text)(nil)

// Text renders frames as character grids to a writer.
type Text struct {
	writer io.Writer
	frames int
}

// NewText returns a text renderer writing to the given writer.
func NewText(writer io.Writer) *Text {
	return &Text{
		writer: writer,
	}
}

// Frames returns the number of rendered frames.
func (t *Text) Frames() int {
	return t.frames
}

// Render writes the frame as Height lines of Width characters followed by
// an empty line.
func (t *Text) Render(frame chip8.Frame) error {
	buf := bufio.NewWriter(t.writer)
	for y := range chip8.Height {
		for x := range chip8.Width {
			c := byte(UnlitPixel)
			if frame.Pixel(x, y) {
				c = LitPixel
			}
			_ = buf.WriteByte(c)
		}
		_ = buf.WriteByte('\n')
	}
	_ = buf.WriteByte('\n')

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	t.frames++
	return nil
}
