package x86

// Register identifies one of the 8086 general-purpose registers addressable
// by this decoder, or None for operands that do not name a register.
type Register uint8

// The 8086 register set this decoder understands. Eight-bit names index the
// low/high halves of the first four 16-bit registers; the encoding itself
// does not distinguish them from the wide form except through the W flag.
const (
	None Register = iota

	AL
	CL
	DL
	BL
	AH
	CH
	DH
	BH

	AX
	CX
	DX
	BX
	SP
	BP
	SI
	DI
)

// registerNames8 maps a REG/RM field value to its 8-bit register, W=0.
var registerNames8 = [8]Register{AL, CL, DL, BL, AH, CH, DH, BH}

// registerNames16 maps a REG/RM field value to its 16-bit register, W=1.
var registerNames16 = [8]Register{AX, CX, DX, BX, SP, BP, SI, DI}

// registerFromField returns the register named by a 3-bit REG or RM field,
// selecting the 8-bit or 16-bit table per the W flag.
func registerFromField(field uint8, wide bool) Register {
	if wide {
		return registerNames16[field&0x07]
	}
	return registerNames8[field&0x07]
}

var registerStrings = map[Register]string{
	AL: "al", CL: "cl", DL: "dl", BL: "bl",
	AH: "ah", CH: "ch", DH: "dh", BH: "bh",
	AX: "ax", CX: "cx", DX: "dx", BX: "bx",
	SP: "sp", BP: "bp", SI: "si", DI: "di",
}

// String returns the lowercase assembly name of the register.
func (r Register) String() string {
	if s, ok := registerStrings[r]; ok {
		return s
	}
	return "none"
}

// RegIndex returns the VM register-file slot for the given 16-bit register,
// per the AX=0, BX=1, CX=2, DX=3, SP=4, BP=5, SI=6, DI=7 convention. The
// second return value is false for any register this indexing does not cover
// (8-bit halves, None).
func (r Register) RegIndex() (int, bool) {
	switch r {
	case AX:
		return 0, true
	case BX:
		return 1, true
	case CX:
		return 2, true
	case DX:
		return 3, true
	case SP:
		return 4, true
	case BP:
		return 5, true
	case SI:
		return 6, true
	case DI:
		return 7, true
	default:
		return 0, false
	}
}
