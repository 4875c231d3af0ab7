package x86

import "strconv"

// OperandKind discriminates the Operand tagged union.
type OperandKind uint8

const (
	// OperandRegister names a register operand.
	OperandRegister OperandKind = iota
	// OperandImmediate is a literal value, already sign/zero extended.
	OperandImmediate
	// OperandDirectAddress is an absolute 16-bit memory address (the
	// MOD=00, RM=110 special case).
	OperandDirectAddress
	// OperandEffectiveAddress is base[+index]+disp memory addressing.
	OperandEffectiveAddress
)

// Operand is a tagged union over the four 8086 operand shapes this decoder
// produces. Only the field matching Kind is meaningful.
type Operand struct {
	Kind OperandKind

	Register Register // OperandRegister

	Immediate int16 // OperandImmediate

	DirectAddress uint16 // OperandDirectAddress

	Base  Register // OperandEffectiveAddress; never None
	Index Register // OperandEffectiveAddress; None if absent
	Disp  int16    // OperandEffectiveAddress
}

// RegisterOperand builds a register operand.
func RegisterOperand(r Register) Operand {
	return Operand{Kind: OperandRegister, Register: r}
}

// ImmediateOperand builds an immediate operand.
func ImmediateOperand(v int16) Operand {
	return Operand{Kind: OperandImmediate, Immediate: v}
}

// rmBaseIndex maps a ModR/M RM field (mod != 00/RM=110 special case) to its
// base and optional index register, per the table in spec.md §4.1.
var rmBaseIndex = [8]struct {
	base  Register
	index Register
}{
	0b000: {BX, SI},
	0b001: {BX, DI},
	0b010: {BP, SI},
	0b011: {BP, DI},
	0b100: {SI, None},
	0b101: {DI, None},
	0b110: {BP, None}, // only reached when mod != 00 (mod=00 is DirectAddress)
	0b111: {BX, None},
}

// ParseModRM reads exactly one ModR/M byte, plus any trailing displacement or
// direct-address bytes it implies, and returns the operand named by the
// MOD+RM fields. The REG field (bits 5-3) is not interpreted here; it is
// returned as reg so the caller can interpret it (e.g. as the other
// operand's register, or as a secondary opcode selector).
func ParseModRM(w bool, cur *Cursor) (op Operand, reg uint8, err error) {
	raw, ok := cur.byte1()
	if !ok {
		return Operand{}, 0, ErrTruncatedStream
	}

	mod := raw >> 6 & 0x03
	reg = raw >> 3 & 0x07
	rm := raw & 0x07

	switch addressingModeFromMod(mod) {
	case Reg:
		return RegisterOperand(registerFromField(rm, w)), reg, nil

	case MemNoDisp:
		if rm == 0b110 {
			addr, ok := cur.uint16le()
			if !ok {
				return Operand{}, 0, ErrTruncatedStream
			}
			return Operand{Kind: OperandDirectAddress, DirectAddress: addr}, reg, nil
		}
		bi := rmBaseIndex[rm]
		return Operand{Kind: OperandEffectiveAddress, Base: bi.base, Index: bi.index}, reg, nil

	case MemDisp8:
		b, ok := cur.byte1()
		if !ok {
			return Operand{}, 0, ErrTruncatedStream
		}
		bi := rmBaseIndex[rm]
		return Operand{Kind: OperandEffectiveAddress, Base: bi.base, Index: bi.index, Disp: int16(int8(b))}, reg, nil

	case MemDisp16:
		d, ok := cur.uint16le()
		if !ok {
			return Operand{}, 0, ErrTruncatedStream
		}
		bi := rmBaseIndex[rm]
		return Operand{Kind: OperandEffectiveAddress, Base: bi.base, Index: bi.index, Disp: int16(d)}, reg, nil
	}

	// unreachable: mod is masked to 2 bits above
	return Operand{}, 0, ErrTruncatedStream
}

// ParseImmediate reads a 1-byte (W=0) or 2-byte little-endian (W=1)
// immediate and returns it unextended beyond its natural width; sign
// extension for the ADD/SUB/CMP S-bit path is the caller's responsibility
// (see parseImmediateSignExtended).
func ParseImmediate(w bool, cur *Cursor) (Operand, error) {
	if w {
		v, ok := cur.uint16le()
		if !ok {
			return Operand{}, ErrTruncatedStream
		}
		return ImmediateOperand(int16(v)), nil
	}
	b, ok := cur.byte1()
	if !ok {
		return Operand{}, ErrTruncatedStream
	}
	return ImmediateOperand(int16(b)), nil
}

// parseImmediateSignExtended implements the ADD/SUB/CMP "100000 s w" family
// immediate rule: read 2 bytes iff w && !s, otherwise read 1 byte and, when
// s && w, sign-extend it to 16 bits.
func parseImmediateSignExtended(w, s bool, cur *Cursor) (Operand, error) {
	if w && !s {
		return ParseImmediate(true, cur)
	}
	b, ok := cur.byte1()
	if !ok {
		return Operand{}, ErrTruncatedStream
	}
	if w && s {
		return ImmediateOperand(int16(int8(b))), nil
	}
	return ImmediateOperand(int16(b)), nil
}

// String renders the operand using the assembly conventions in spec.md §4.3.
func (o Operand) String() string {
	switch o.Kind {
	case OperandRegister:
		return o.Register.String()
	case OperandImmediate:
		return strconv.Itoa(int(o.Immediate))
	case OperandDirectAddress:
		return "[" + strconv.Itoa(int(o.DirectAddress)) + "]"
	case OperandEffectiveAddress:
		s := "[" + o.Base.String()
		if o.Index != None {
			s += " + " + o.Index.String()
		}
		if o.Disp != 0 {
			if o.Disp < 0 {
				s += " - " + strconv.Itoa(-int(o.Disp))
			} else {
				s += " + " + strconv.Itoa(int(o.Disp))
			}
		}
		return s + "]"
	default:
		return "?"
	}
}
