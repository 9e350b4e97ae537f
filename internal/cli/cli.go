// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/chip8vm/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := options.New()
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	normalizeOptions(&opts)
	if err := validateOptionCombinations(opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8vm [options] <program file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions derives implied option values
func normalizeOptions(opts *options.Program) {
	if opts.Raw {
		opts.Disassemble = true
	}
	if opts.Trace {
		opts.Debug = true
	}
}

// validateOptionCombinations rejects options that only apply to running a program
// when a listing is requested, and tracing while the terminal screen is in use
func validateOptionCombinations(opts options.Program) error {
	if !opts.Disassemble {
		if opts.Trace && !opts.Headless {
			return errors.New("-trace requires -headless, trace logging would overwrite the terminal screen")
		}
		return nil
	}

	switch {
	case opts.Trace:
		return errors.New("-trace can not be combined with a program listing")
	case opts.Dump:
		return errors.New("-dump can not be combined with a program listing")
	case opts.MaxCycles > 0:
		return errors.New("-cycles can not be combined with a program listing")
	default:
		return nil
	}
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output file for listings and headless frames, printed on console if no name given")
	flags.UintVar(&opts.Speed, "speed", opts.Speed, "instructions executed per second, 0 runs unthrottled")
	flags.Uint64Var(&opts.MaxCycles, "cycles", 0, "stop after executing the given number of instructions, 0 for no limit")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed for the random number generator to get reproducible runs, 0 for a random seed")
	flags.BoolVar(&opts.Disassemble, "d", false, "list the program instructions instead of running it")
	flags.BoolVar(&opts.Raw, "raw", false, "list the program as rows of raw hex words, implies -d")
	flags.BoolVar(&opts.Headless, "headless", false, "run without terminal screen and print the final frame as text")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug and requires -headless")
	flags.BoolVar(&opts.Dump, "dump", false, "print the machine state after the program halted")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
