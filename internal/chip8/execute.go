package chip8

// handler executes a decoded instruction. The program counter already
// points to the next instruction when a handler is called. A handler that
// returns a fatal result must not have modified the machine.
type handler func(m *Machine, op Opcode) Result

// handlers maps the category nibble to the instruction group handler.
var handlers = [16]handler{
	0x0: (*Machine).system,
	0x1: (*Machine).jump,
	0x2: (*Machine).call,
	0x3: (*Machine).skipEqualByte,
	0x4: (*Machine).skipNotEqualByte,
	0x5: (*Machine).skipEqualRegister,
	0x6: (*Machine).loadByte,
	0x7: (*Machine).addByte,
	0x8: (*Machine).arithmetic,
	0x9: (*Machine).skipNotEqualRegister,
	0xA: (*Machine).loadIndex,
	0xB: (*Machine).jumpOffset,
	0xC: (*Machine).loadRandom,
	0xD: (*Machine).drawSprite,
	0xE: (*Machine).unknown,
	0xF: (*Machine).misc,
}

// Step executes exactly one fetch-decode-execute cycle.
// Fatal conditions return a *HaltError and restore the program counter to
// the faulting instruction, a self jump returns HaltSelfJump and no error.
func (m *Machine) Step() (Result, error) {
	address := m.pc
	op := m.fetch(address)

	if m.trace != nil {
		m.trace(TraceEvent{
			Address:   address,
			Opcode:    op,
			I:         m.i,
			Registers: m.v,
			Depth:     m.stack.depth,
		})
	}

	m.pc = (address + opcodeSize) & MaxAddress
	result := handlers[op.Category()](m, op)

	switch result {
	case Continue, HaltSelfJump:
		return result, nil
	default:
		m.pc = address
		return result, &HaltError{
			Result:  result,
			Opcode:  op,
			Address: address,
		}
	}
}

func (m *Machine) skipNext() {
	m.pc = (m.pc + opcodeSize) & MaxAddress
}

func (m *Machine) system(op Opcode) Result {
	switch op {
	case 0x00E0:
		m.display.clear()
		return Continue

	case 0x00EE:
		address, ok := m.stack.pop()
		if !ok {
			return HaltStackUnderflow
		}
		m.pc = address
		return Continue

	default:
		return HaltUnknownOpcode
	}
}

// jump detects a jump that lands on an identical jump instruction, which
// spins forever without side effects.
func (m *Machine) jump(op Opcode) Result {
	target := op.Address()
	m.pc = target
	if m.fetch(target) == op {
		return HaltSelfJump
	}
	return Continue
}

func (m *Machine) call(op Opcode) Result {
	if !m.stack.push(m.pc) {
		return HaltStackOverflow
	}
	m.pc = op.Address()
	return Continue
}

func (m *Machine) skipEqualByte(op Opcode) Result {
	if m.v[op.X()] == op.KK() {
		m.skipNext()
	}
	return Continue
}

func (m *Machine) skipNotEqualByte(op Opcode) Result {
	if m.v[op.X()] != op.KK() {
		m.skipNext()
	}
	return Continue
}

func (m *Machine) skipEqualRegister(op Opcode) Result {
	if m.v[op.X()] == m.v[op.Y()] {
		m.skipNext()
	}
	return Continue
}

func (m *Machine) skipNotEqualRegister(op Opcode) Result {
	if m.v[op.X()] != m.v[op.Y()] {
		m.skipNext()
	}
	return Continue
}

func (m *Machine) loadByte(op Opcode) Result {
	m.v[op.X()] = op.KK()
	return Continue
}

func (m *Machine) addByte(op Opcode) Result {
	m.v[op.X()] += op.KK()
	return Continue
}

// arithmetic executes the 8xyn register group. The result is written
// before VF, so for x == F the flag wins.
func (m *Machine) arithmetic(op Opcode) Result {
	x, y := op.X(), op.Y()
	vx, vy := m.v[x], m.v[y]

	var result, flag byte
	setsFlag := true

	switch op.N() {
	case 0x0:
		result, setsFlag = vy, false
	case 0x1:
		result, setsFlag = vx|vy, false
	case 0x2:
		result, setsFlag = vx&vy, false
	case 0x3:
		result, setsFlag = vx^vy, false
	case 0x4:
		sum := uint16(vx) + uint16(vy)
		result = byte(sum)
		flag = byte(sum >> 8)
	case 0x5:
		result = vx - vy
		flag = boolToFlag(vx >= vy)
	case 0x6:
		result = vx >> 1
		flag = vx & 1
	case 0x7:
		result = vy - vx
		flag = boolToFlag(vy >= vx)
	case 0xE:
		result = vx << 1
		flag = vx >> 7
	default:
		return HaltUnknownOpcode
	}

	m.v[x] = result
	if setsFlag {
		m.v[FlagRegister] = flag
	}
	return Continue
}

func (m *Machine) loadIndex(op Opcode) Result {
	m.i = op.Address()
	return Continue
}

func (m *Machine) jumpOffset(op Opcode) Result {
	m.pc = (op.Address() + uint16(m.v[0])) & MaxAddress
	return Continue
}

func (m *Machine) loadRandom(op Opcode) Result {
	m.v[op.X()] = m.random() & op.KK()
	return Continue
}

func (m *Machine) drawSprite(op Opcode) Result {
	m.draw(m.v[op.X()], m.v[op.Y()], op.N())
	return Continue
}

func (m *Machine) misc(op Opcode) Result {
	x := op.X()

	switch op.KK() {
	case 0x1E:
		m.i += uint16(m.v[x])

	case 0x33:
		value := m.v[x]
		m.writeByte(m.i, value/100)
		m.writeByte(m.i+1, value/10%10)
		m.writeByte(m.i+2, value%10)

	case 0x55:
		for r := range uint16(x) + 1 {
			m.writeByte(m.i+r, m.v[r])
		}

	case 0x65:
		for r := range uint16(x) + 1 {
			m.v[r] = m.ReadByte(m.i + r)
		}

	default:
		return HaltUnknownOpcode
	}
	return Continue
}

func (m *Machine) unknown(Opcode) Result {
	return HaltUnknownOpcode
}

func (m *Machine) writeByte(address uint16, value byte) {
	m.memory[address&MaxAddress] = value
}

func boolToFlag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
