package chip8

import (
	"errors"
	"fmt"
)

// Result is the outcome of executing an instruction or a run.
type Result int

// Results reported by Step and Runner.Run.
const (
	Continue Result = iota
	HaltSelfJump
	HaltStackOverflow
	HaltStackUnderflow
	HaltUnknownOpcode

	// HaltCancelled and HaltCycleLimit are only reported by Runner.Run
	// for stops requested from outside the machine.
	HaltCancelled
	HaltCycleLimit
)

var resultNames = map[Result]string{
	Continue:           "continue",
	HaltSelfJump:       "self jump",
	HaltStackOverflow:  "stack overflow",
	HaltStackUnderflow: "stack underflow",
	HaltUnknownOpcode:  "unknown opcode",
	HaltCancelled:      "cancelled",
	HaltCycleLimit:     "cycle limit reached",
}

// String returns the name of the result.
func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// Halted returns whether the result stops execution.
func (r Result) Halted() bool {
	return r != Continue
}

// Sentinel errors that a *HaltError matches with errors.Is.
var (
	ErrStackOverflow  = errors.New("stack overflow")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrUnknownOpcode  = errors.New("unknown opcode")
)

// HaltError describes a fatal execution error with the offending
// instruction and its address.
type HaltError struct {
	Result  Result
	Opcode  Opcode
	Address uint16
}

// Error implements the error interface for a HaltError.
func (e *HaltError) Error() string {
	return fmt.Sprintf("%s: opcode %04X at $%03X", e.Result, uint16(e.Opcode), e.Address)
}

// Unwrap returns the sentinel error matching the halt result.
func (e *HaltError) Unwrap() error {
	switch e.Result {
	case HaltStackOverflow:
		return ErrStackOverflow
	case HaltStackUnderflow:
		return ErrStackUnderflow
	case HaltUnknownOpcode:
		return ErrUnknownOpcode
	default:
		return nil
	}
}
