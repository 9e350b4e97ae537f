package chip8

import (
	"context"
	"fmt"
	"time"
)

// DefaultSpeed is the default number of instructions executed per second.
const DefaultSpeed = 700

// Renderer presents display frames.
type Renderer interface {
	Render(frame Frame) error
}

// RunnerOptions controls the scheduling of a Runner.
type RunnerOptions struct {
	Delay     time.Duration // wait between two instructions, 0 disables throttling
	MaxCycles uint64        // stop after this many instructions, 0 means no limit
}

// Runner drives a machine until it halts.
type Runner struct {
	machine  *Machine
	renderer Renderer
	options  RunnerOptions
	cycles   uint64
}

// NewRunner returns a runner for the machine. The renderer is optional.
func NewRunner(machine *Machine, renderer Renderer, options RunnerOptions) *Runner {
	return &Runner{
		machine:  machine,
		renderer: renderer,
		options:  options,
	}
}

// Cycles returns the number of instructions executed so far.
func (r *Runner) Cycles() uint64 {
	return r.cycles
}

// Run executes instructions until the machine halts, the context is done
// or the cycle limit is reached. Cancellation is only observed between
// instructions.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	var timer *time.Timer
	if r.options.Delay > 0 {
		timer = time.NewTimer(r.options.Delay)
		defer timer.Stop()
	}

	for {
		if err := ctx.Err(); err != nil {
			return HaltCancelled, err
		}
		if r.options.MaxCycles > 0 && r.cycles >= r.options.MaxCycles {
			return HaltCycleLimit, nil
		}

		result, err := r.machine.Step()
		if err != nil {
			return result, err
		}
		r.cycles++

		if err := r.present(); err != nil {
			return result, err
		}
		if result.Halted() {
			return result, nil
		}

		if timer != nil {
			if err := wait(ctx, timer, r.options.Delay); err != nil {
				return HaltCancelled, err
			}
		}
	}
}

// present hands the current frame to the renderer if the display changed.
func (r *Runner) present() error {
	display := r.machine.Display()
	if !display.Dirty() {
		return nil
	}
	frame := display.TakeFrame()
	if r.renderer == nil {
		return nil
	}
	if err := r.renderer.Render(frame); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	return nil
}

// wait blocks for the delay of one cycle or until the context is done.
func wait(ctx context.Context, timer *time.Timer, delay time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		timer.Reset(delay)
		return nil
	}
}
