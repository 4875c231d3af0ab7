package vm

// Flags is the VM's flags word. Only ZF and SF are meaningful; every other
// bit stays zero, per spec.md's non-standard bit layout (real 8086 silicon
// puts ZF/SF at bits 6/7 — this implementation keeps the layout the
// reference simulator used so update and dump stay consistent).
type Flags uint16

// Bit positions of the flags this VM models.
const (
	FlagZero Flags = 1 << 3 // ZF
	FlagSign Flags = 1 << 4 // SF
)

// Zero reports whether ZF is set.
func (f Flags) Zero() bool { return f&FlagZero != 0 }

// Sign reports whether SF is set.
func (f Flags) Sign() bool { return f&FlagSign != 0 }

// updateFromResult recomputes ZF/SF from a 16-bit arithmetic result,
// clearing both first so stale bits never leak between instructions.
func updateFromResult(f Flags, result uint16) Flags {
	f &^= FlagZero | FlagSign
	if result == 0 {
		f |= FlagZero
	}
	if result&0x8000 != 0 {
		f |= FlagSign
	}
	return f
}
