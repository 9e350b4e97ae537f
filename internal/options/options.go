// Package options contains the program options.
package options

import "github.com/retroenv/chip8vm/internal/chip8"

// Parameters contains file path options.
type Parameters struct {
	Input  string `usage:"program file to run"`
	Output string `flag:"o" usage:"output file for listings and headless frames (default: stdout)"`
}

// Flags contains behavior options.
type Flags struct {
	Speed     uint   `flag:"speed" usage:"instructions per second, 0 runs unthrottled" default:"700"`
	MaxCycles uint64 `flag:"cycles" usage:"stop after executing this many instructions, 0 for no limit"`
	Seed      uint64 `flag:"seed" usage:"seed for the random number generator, 0 for a random seed"`

	Disassemble bool `flag:"d" usage:"list the program instead of running it"`
	Raw         bool `flag:"raw" usage:"list the program as raw hex words"`
	Headless    bool `flag:"headless" usage:"run without terminal output and print the final frame"`
	Trace       bool `flag:"trace" usage:"log every executed instruction, requires -headless"`
	Dump        bool `flag:"dump" usage:"print the machine state after the run"`
	Debug       bool `flag:"debug" usage:"enable debug logging"`
	Quiet       bool `flag:"q" usage:"quiet mode"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
}

// New returns program options with default values.
func New() Program {
	return Program{
		Flags: Flags{
			Speed: chip8.DefaultSpeed,
		},
	}
}
