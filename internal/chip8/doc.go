// Package chip8 implements the CHIP-8 virtual machine core.
//
// # Machine Layout
//
// A Machine owns 4KB of memory (0x000-MaxAddress), sixteen 8-bit
// registers V0-VF, the 16-bit index register I, the program counter and a
// call stack of StackSize return addresses:
//   - 0x000-0x1FF: reserved, left zeroed
//   - ProgramStart-MaxAddress: program and data area
//
// VF is the flag register. Carry, borrow, shifted out bits and sprite
// collisions are written to it after the destination register.
//
// # Display
//
// The display is 32 rows of 64-bit words. Bit 0 of a row is the leftmost
// pixel (LeftmostPixelBit), a set bit is a lit pixel. Sprites wrap on
// both axes: pixels past the right edge continue at the left edge, rows
// past the bottom continue at the top.
//
// # Execution
//
// Step executes exactly one instruction. Fatal conditions are reported as
// *HaltError values and leave the machine exactly as it was before the
// faulting instruction. A jump to an identical jump instruction is
// reported as HaltSelfJump with a nil error.
//
// # Usage Example
//
//	m := chip8.New()
//	if err := m.Load(program); err != nil {
//		return err
//	}
//	runner := chip8.NewRunner(m, renderer, chip8.RunnerOptions{Delay: time.Second / 700})
//	result, err := runner.Run(ctx)
package chip8
