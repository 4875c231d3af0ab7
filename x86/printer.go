package x86

import "strconv"

// Print formats ins as lowercase Intel assembly syntax per spec.md §4.3.
// Unknown instructions print as "UNKN" so callers can spot and skip them.
func Print(ins Instruction) string {
	switch {
	case ins.Op == OpUnknown:
		return "UNKN"
	case ins.Op.IsBranch():
		return ins.Op.String() + " " + strconv.Itoa(int(ins.Offset))
	default:
		return ins.Op.String() + " " + ins.Dst.String() + ", " + ins.Src.String()
	}
}
