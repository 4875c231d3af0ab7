package x86

import "testing"

func TestParseModRM_RegisterMode(t *testing.T) {
	// mod=11, reg=001 (cx/cl), rm=011 (bx/bl)
	cur := NewCursor([]byte{0b11_001_011})
	op, reg, err := ParseModRM(true, cur)
	if err != nil {
		t.Fatalf("ParseModRM: %v", err)
	}
	if op.Kind != OperandRegister || op.Register != BX {
		t.Fatalf("op = %+v, want register BX", op)
	}
	if reg != 0b001 {
		t.Fatalf("reg = %d, want 1", reg)
	}
	if cur.Pos != 1 {
		t.Fatalf("cursor advanced %d bytes, want 1", cur.Pos)
	}
}

func TestParseModRM_DirectAddress(t *testing.T) {
	// mod=00, rm=110: direct address, little-endian.
	cur := NewCursor([]byte{0b00_000_110, 0x34, 0x12})
	op, _, err := ParseModRM(true, cur)
	if err != nil {
		t.Fatalf("ParseModRM: %v", err)
	}
	if op.Kind != OperandDirectAddress || op.DirectAddress != 0x1234 {
		t.Fatalf("op = %+v, want DirectAddress 0x1234", op)
	}
	if cur.Pos != 3 {
		t.Fatalf("cursor advanced %d bytes, want 3", cur.Pos)
	}
}

func TestParseModRM_EffectiveAddressZeroDispElided(t *testing.T) {
	// mod=01, rm=111 (bx), disp8=0: still an effective address, printer
	// elides the zero displacement.
	cur := NewCursor([]byte{0b01_000_111, 0x00})
	op, _, err := ParseModRM(true, cur)
	if err != nil {
		t.Fatalf("ParseModRM: %v", err)
	}
	if op.Kind != OperandEffectiveAddress || op.Base != BX || op.Disp != 0 {
		t.Fatalf("op = %+v", op)
	}
	if op.String() != "[bx]" {
		t.Fatalf("String() = %q, want [bx]", op.String())
	}
}

func TestParseModRM_RM111SymmetricDisplacement(t *testing.T) {
	// mod=10, rm=111 (bx), disp16: R/M=111 must carry its displacement like
	// every other R/M case (a known bug in one revision of the reference
	// decoder dropped it for this case).
	cur := NewCursor([]byte{0b10_000_111, 0x05, 0x00})
	op, _, err := ParseModRM(true, cur)
	if err != nil {
		t.Fatalf("ParseModRM: %v", err)
	}
	if op.Kind != OperandEffectiveAddress || op.Base != BX || op.Disp != 5 {
		t.Fatalf("op = %+v, want EffectiveAddress{Base: BX, Disp: 5}", op)
	}
}

func TestParseModRM_Truncated(t *testing.T) {
	cur := NewCursor([]byte{0b01_000_000}) // mod=01 needs one more byte
	_, _, err := ParseModRM(true, cur)
	if err != ErrTruncatedStream {
		t.Fatalf("err = %v, want ErrTruncatedStream", err)
	}
}

func TestParseImmediate(t *testing.T) {
	t.Run("byte", func(t *testing.T) {
		cur := NewCursor([]byte{0x80})
		op, err := ParseImmediate(false, cur)
		if err != nil {
			t.Fatalf("ParseImmediate: %v", err)
		}
		if op.Immediate != 0x80 {
			t.Fatalf("Immediate = %d, want 128", op.Immediate)
		}
	})

	t.Run("word little endian", func(t *testing.T) {
		cur := NewCursor([]byte{0x34, 0x12})
		op, err := ParseImmediate(true, cur)
		if err != nil {
			t.Fatalf("ParseImmediate: %v", err)
		}
		if op.Immediate != 0x1234 {
			t.Fatalf("Immediate = %#x, want 0x1234", op.Immediate)
		}
	})
}

func TestOperand_String(t *testing.T) {
	tests := []struct {
		name string
		op   Operand
		want string
	}{
		{"register", RegisterOperand(AX), "ax"},
		{"immediate", ImmediateOperand(-5), "-5"},
		{"effective address with index", Operand{Kind: OperandEffectiveAddress, Base: BX, Index: SI}, "[bx + si]"},
		{"effective address with positive disp", Operand{Kind: OperandEffectiveAddress, Base: BP, Disp: 5}, "[bp + 5]"},
		{"effective address with negative disp", Operand{Kind: OperandEffectiveAddress, Base: BP, Disp: -5}, "[bp - 5]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
