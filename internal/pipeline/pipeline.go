// Package pipeline orchestrates loading, listing and running CHIP-8 programs.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/retroenv/chip8vm/internal/chip8"
	"github.com/retroenv/chip8vm/internal/debug"
	"github.com/retroenv/chip8vm/internal/disasm"
	"github.com/retroenv/chip8vm/internal/loader"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/render"
	"github.com/retroenv/retrogolib/log"
)

// TerminalConstructor creates the interactive screen renderer.
type TerminalConstructor func() (*render.Terminal, error)

// Pipeline orchestrates the complete workflow for a program file.
type Pipeline struct {
	logger      *log.Logger
	loader      *loader.Loader
	newTerminal TerminalConstructor
}

// New creates a new pipeline that renders to the terminal screen.
func New(logger *log.Logger) *Pipeline {
	return NewWithTerminal(logger, render.NewTerminal)
}

// NewWithTerminal creates a new pipeline using the given terminal constructor.
func NewWithTerminal(logger *log.Logger, newTerminal TerminalConstructor) *Pipeline {
	return &Pipeline{
		logger:      logger,
		loader:      loader.New(),
		newTerminal: newTerminal,
	}
}

// Execute loads the program and either lists or runs it. Listings, headless
// frames and machine dumps are written to the writer.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) error {
	program, err := p.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	p.printInfo(opts, program)

	if opts.Disassemble {
		return p.listProgram(opts, program, writer)
	}
	return p.runProgram(ctx, opts, program, writer)
}

// listProgram writes the static listing of the program.
func (p *Pipeline) listProgram(opts options.Program, program []byte, writer io.Writer) error {
	mode := disasm.Mnemonic
	if opts.Raw {
		mode = disasm.Raw
	}

	dis := disasm.New(p.logger, disasm.Options{Mode: mode})
	if err := dis.Process(writer, program); err != nil {
		return fmt.Errorf("listing program: %w", err)
	}
	return nil
}

// runProgram executes the program until it halts, the cycle limit is reached
// or the user quits. On the terminal a halted program keeps its screen until
// a quit key is pressed or the context is cancelled.
func (p *Pipeline) runProgram(ctx context.Context, opts options.Program, program []byte, writer io.Writer) error {
	machine := chip8.New(p.machineOptions(opts)...)
	if err := machine.Load(program); err != nil {
		return fmt.Errorf("loading program into memory: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var renderer chip8.Renderer
	var terminal *render.Terminal
	if !opts.Headless {
		var err error
		terminal, err = p.newTerminal()
		if err != nil {
			return fmt.Errorf("creating terminal: %w", err)
		}
		renderer = terminal

		watcherDone := make(chan struct{})
		go func() {
			terminal.WatchQuit(cancel)
			close(watcherDone)
		}()
		defer func() { <-watcherDone }()
	}

	runner := chip8.NewRunner(machine, renderer, chip8.RunnerOptions{
		Delay:     instructionDelay(opts.Speed),
		MaxCycles: opts.MaxCycles,
	})
	result, runErr := runner.Run(runCtx)

	if terminal != nil {
		// the final frame stays visible until the user quits
		if runErr == nil {
			<-runCtx.Done()
		}
		terminal.Close()
	}

	// a quit key press only cancels the run context
	if errors.Is(runErr, context.Canceled) && ctx.Err() == nil {
		runErr = nil
	}
	if runErr != nil {
		if result != chip8.HaltCancelled {
			p.logger.Error("Program halted", log.Stringer("result", result), log.Int("cycles", int(runner.Cycles())))
		}
		return fmt.Errorf("running program: %w", runErr)
	}

	p.logger.Info("Program halted",
		log.Stringer("result", result),
		log.Int("cycles", int(runner.Cycles())),
		log.Hex("pc", machine.PC()),
	)

	if opts.Headless {
		if err := render.NewText(writer).Render(machine.Display().Frame()); err != nil {
			return fmt.Errorf("writing final frame: %w", err)
		}
	}
	if opts.Dump {
		if err := debug.Dump(writer, debug.NewSnapshot(machine, result, runner.Cycles())); err != nil {
			return fmt.Errorf("dumping machine state: %w", err)
		}
	}
	return nil
}

func (p *Pipeline) machineOptions(opts options.Program) []chip8.Option {
	var machineOptions []chip8.Option
	if opts.Seed != 0 {
		machineOptions = append(machineOptions, chip8.WithSeed(opts.Seed))
	}
	if opts.Trace {
		machineOptions = append(machineOptions, chip8.WithTrace(p.traceInstruction))
	}
	return machineOptions
}

func (p *Pipeline) traceInstruction(event chip8.TraceEvent) {
	p.logger.Debug("Executing",
		log.Hex("address", event.Address),
		log.Hex("opcode", uint16(event.Opcode)),
		log.String("instruction", disasm.Instruction(event.Opcode)),
		log.Hex("i", event.I),
		log.Int("depth", event.Depth),
	)
}

// instructionDelay returns the pause between instructions for the given
// number of instructions per second.
func instructionDelay(speed uint) time.Duration {
	if speed == 0 {
		return 0
	}
	return time.Second / time.Duration(speed)
}

// printInfo prints information about the program being processed.
func (p *Pipeline) printInfo(opts options.Program, program []byte) {
	if opts.Quiet {
		return
	}

	mode := "run"
	if opts.Disassemble {
		mode = "list"
	}
	p.logger.Info("Processing CHIP-8 program",
		log.String("file", opts.Input),
		log.Int("size", len(program)),
		log.String("mode", mode),
	)
}
