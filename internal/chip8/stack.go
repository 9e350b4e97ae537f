package chip8

// StackSize is the maximum number of nested subroutine calls.
const StackSize = 16

// Stack holds the return addresses of active subroutine calls.
type Stack struct {
	slots [StackSize]uint16
	depth int
}

// Depth returns the number of addresses currently on the stack.
func (s *Stack) Depth() int {
	return s.depth
}

// Addresses returns a copy of the active return addresses, oldest first.
func (s *Stack) Addresses() []uint16 {
	addresses := make([]uint16, s.depth)
	copy(addresses, s.slots[:s.depth])
	return addresses
}

func (s *Stack) push(address uint16) bool {
	if s.depth == StackSize {
		return false
	}
	s.slots[s.depth] = address
	s.depth++
	return true
}

func (s *Stack) pop() (uint16, bool) {
	if s.depth == 0 {
		return 0, false
	}
	s.depth--
	return s.slots[s.depth], true
}
