package render

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/retroenv/chip8vm/internal/chip8"
)

// cellsPerPixel is the number of terminal columns used for one pixel, which
// keeps the aspect ratio of the display close to the original.
const cellsPerPixel = 2

var _ chip8.Renderer = (*Terminal)(nil)

// Terminal renders frames to a tcell screen.
type Terminal struct {
	screen tcell.Screen
	lit    tcell.Style
	unlit  tcell.Style
}

// NewTerminal initializes the terminal screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return NewTerminalWithScreen(screen)
}

// NewTerminalWithScreen initializes the given screen for rendering.
func NewTerminalWithScreen(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	return &Terminal{
		screen: screen,
		lit:    tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorWhite),
		unlit:  tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorBlack),
	}, nil
}

// Render draws the frame and shows it.
func (t *Terminal) Render(frame chip8.Frame) error {
	for y := range chip8.Height {
		for x := range chip8.Width {
			style := t.unlit
			if frame.Pixel(x, y) {
				style = t.lit
			}
			for c := range cellsPerPixel {
				t.screen.SetContent(x*cellsPerPixel+c, y, ' ', nil, style)
			}
		}
	}
	t.screen.Show()
	return nil
}

// WatchQuit cancels the context when Escape, Ctrl+C or q is pressed.
// It returns once the screen is closed.
func (t *Terminal) WatchQuit(cancel context.CancelFunc) {
	for {
		switch event := t.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if isQuitKey(event) {
				cancel()
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

func isQuitKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return event.Rune() == 'q'
	default:
		return false
	}
}
