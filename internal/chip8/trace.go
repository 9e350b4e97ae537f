package chip8

// TraceEvent describes an instruction about to be dispatched.
type TraceEvent struct {
	Address   uint16
	Opcode    Opcode
	I         uint16
	Registers [RegisterCount]byte
	Depth     int
}

// TraceFunc receives a TraceEvent before every dispatch.
type TraceFunc func(event TraceEvent)
