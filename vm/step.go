package vm

import "github.com/retroenv/sim8086/x86"

// RegisterWrite records one register mutation caused by a single Step, in
// the "<regname>: <old> -> <new>" form spec.md §6 requires on stdout.
type RegisterWrite struct {
	Register x86.Register
	Old, New uint16
}

// StepResult reports what one Step call decoded and changed.
type StepResult struct {
	Instruction x86.Instruction
	Writes      []RegisterWrite
	FlagsBefore Flags
	FlagsAfter  Flags
}

// Step decodes and executes exactly one instruction at the current IP,
// advancing IP past it. MOV/ADD/SUB/CMP operate on register and immediate
// operands only; any other destination shape, and any Unknown instruction,
// leaves state unchanged beyond the cursor advance that decoding performed.
//
// A truncated trailing instruction makes Step return the decoder's
// ErrTruncatedStream and pin IP at end of memory, so Done() reports true
// afterwards, matching the decoder's "never read past the buffer" guarantee.
func (s *State) Step() (StepResult, error) {
	cur := &x86.Cursor{Buf: s.Mem, Pos: s.IP}
	ins, err := x86.Decode(cur)
	if err != nil {
		// A truncated trailing instruction: stop the run by pinning IP at
		// end of memory rather than looping on the same broken bytes.
		s.IP = len(s.Mem)
		return StepResult{}, err
	}
	s.IP = cur.Pos

	result := StepResult{Instruction: ins, FlagsBefore: s.Flags}

	switch ins.Op {
	case x86.OpMov:
		s.execMov(ins, &result)
	case x86.OpAdd:
		s.execArith(ins, &result, func(a, b uint16) uint16 { return a + b }, true)
	case x86.OpSub:
		s.execArith(ins, &result, func(a, b uint16) uint16 { return a - b }, true)
	case x86.OpCmp:
		s.execArith(ins, &result, func(a, b uint16) uint16 { return a - b }, false)
	default:
		if ins.Op.IsBranch() {
			s.execBranch(ins)
		}
		// OpUnknown and anything else: no-op, cursor already advanced.
	}

	result.FlagsAfter = s.Flags
	return result, nil
}

func (s *State) execMov(ins x86.Instruction, result *StepResult) {
	if ins.Dst.Kind != x86.OperandRegister {
		return
	}
	value, ok := s.readOperand(ins.Src)
	if !ok {
		return
	}
	old, ok := s.writeRegister(ins.Dst.Register, value)
	if !ok {
		return
	}
	result.Writes = append(result.Writes, RegisterWrite{ins.Dst.Register, old, value})
}

// execArith implements ADD/SUB/CMP. writeResult is false for CMP: the
// result updates flags but is never stored to dst.
func (s *State) execArith(ins x86.Instruction, result *StepResult, op func(a, b uint16) uint16, writeResult bool) {
	if ins.Dst.Kind != x86.OperandRegister {
		return
	}
	dstVal, ok := s.readOperand(ins.Dst)
	if !ok {
		return
	}
	srcVal, ok := s.readOperand(ins.Src)
	if !ok {
		return
	}

	res := op(dstVal, srcVal)
	s.Flags = updateFromResult(s.Flags, res)

	if !writeResult {
		return
	}
	old, ok := s.writeRegister(ins.Dst.Register, res)
	if !ok {
		return
	}
	result.Writes = append(result.Writes, RegisterWrite{ins.Dst.Register, old, res})
}

// branchConditions maps the conditional-jump mnemonics this VM can evaluate
// from ZF/SF alone to a predicate over the flags word; the LOOP family and
// JCXZ are handled against CX in execBranch. Mnemonics
// that need CF, OF or PF (JB/JNB/JBE/JNBE/JP/JNP/JO/JNO) are decoded but
// cannot be evaluated here; see SPEC_FULL.md §4.4's REDESIGN FLAG note.
var branchConditions = map[x86.Op]func(Flags) bool{
	x86.OpJe:   func(f Flags) bool { return f.Zero() },
	x86.OpJne:  func(f Flags) bool { return !f.Zero() },
	x86.OpJs:   func(f Flags) bool { return f.Sign() },
	x86.OpJns:  func(f Flags) bool { return !f.Sign() },
	x86.OpJl:   func(f Flags) bool { return f.Sign() },
	x86.OpJnl:  func(f Flags) bool { return !f.Sign() },
	x86.OpJle:  func(f Flags) bool { return f.Zero() || f.Sign() },
	x86.OpJnle: func(f Flags) bool { return !f.Zero() && !f.Sign() },
}

func (s *State) execBranch(ins x86.Instruction) {
	switch ins.Op {
	case x86.OpLoop, x86.OpLoopz, x86.OpLoopnz:
		cx := s.Regs[2] - 1
		s.Regs[2] = cx
		switch ins.Op {
		case x86.OpLoopz:
			if cx != 0 && s.Flags.Zero() {
				s.IP += int(ins.Offset)
			}
		case x86.OpLoopnz:
			if cx != 0 && !s.Flags.Zero() {
				s.IP += int(ins.Offset)
			}
		default: // OpLoop
			if cx != 0 {
				s.IP += int(ins.Offset)
			}
		}
		return

	case x86.OpJcxz:
		if s.Regs[2] == 0 {
			s.IP += int(ins.Offset)
		}
		return
	}

	if cond, ok := branchConditions[ins.Op]; ok && cond(s.Flags) {
		s.IP += int(ins.Offset)
	}
}
