package vm

import "github.com/retroenv/sim8086/x86"

// regCount is the number of addressable 16-bit registers: AX, BX, CX, DX,
// SP, BP, SI, DI, indexed per spec.md's RegIndex convention.
const regCount = 8

// State is the VM's processor state: an eight-register file, an instruction
// pointer, and a flags word, plus the byte buffer the driver loaded the
// program into. The simulator only ever reads the buffer; Step borrows it
// through an x86.Cursor built at the current IP.
type State struct {
	Regs  [regCount]uint16
	IP    int
	Flags Flags

	Mem []byte
}

// Options configures a new State.
type Options struct {
	initialIP uint16
	initialSP uint16
}

// Option configures State construction, following the functional-options
// idiom used throughout this codebase's CPU types.
type Option func(*Options)

// WithInitialIP sets the instruction pointer State starts at.
func WithInitialIP(ip uint16) Option {
	return func(o *Options) { o.initialIP = ip }
}

// WithInitialSP sets the stack pointer register's initial value. The
// simulator never touches the stack itself (no PUSH/CALL/RET in scope), but
// a caller composing traces may want a conventional top-of-stack value.
func WithInitialSP(sp uint16) Option {
	return func(o *Options) { o.initialSP = sp }
}

// New returns a State ready to execute mem from the start (or from
// WithInitialIP, if given).
func New(mem []byte, opts ...Option) *State {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &State{Mem: mem, IP: int(cfg.initialIP)}
	if idx, ok := x86.SP.RegIndex(); ok {
		s.Regs[idx] = cfg.initialSP
	}
	return s
}

// Done reports whether IP has reached (or passed) the end of memory.
func (s *State) Done() bool {
	return s.IP >= len(s.Mem)
}

// Reg reads a 16-bit register by its VM index (0=AX ... 7=DI).
func (s *State) Reg(index int) uint16 {
	return s.Regs[index]
}

func (s *State) readOperand(op x86.Operand) (uint16, bool) {
	switch op.Kind {
	case x86.OperandImmediate:
		return uint16(op.Immediate), true
	case x86.OperandRegister:
		idx, ok := op.Register.RegIndex()
		if !ok {
			return 0, false
		}
		return s.Regs[idx], true
	default:
		// Memory operands are out of scope for this simulator.
		return 0, false
	}
}

func (s *State) writeRegister(reg x86.Register, value uint16) (old uint16, ok bool) {
	idx, ok := reg.RegIndex()
	if !ok {
		return 0, false
	}
	old = s.Regs[idx]
	s.Regs[idx] = value
	return old, true
}
