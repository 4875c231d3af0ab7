package vm

import (
	"fmt"
	"strings"

	"github.com/retroenv/sim8086/x86"
)

// String renders one register mutation as "<regname>: <old> -> <new>",
// matching the original reference simulator's write_reg trace line.
func (w RegisterWrite) String() string {
	return fmt.Sprintf("%s: %d -> %d", w.Register, w.Old, w.New)
}

// Trace renders a StepResult as the decoded instruction followed by its
// register-write trace, separated by "::" — the format cmd/sim prints per
// executed line.
func (r StepResult) Trace() string {
	printed := x86.Print(r.Instruction)
	if len(r.Writes) == 0 {
		return printed
	}
	writes := make([]string, len(r.Writes))
	for i, w := range r.Writes {
		writes[i] = w.String()
	}
	return printed + " :: " + strings.Join(writes, ", ")
}

// DumpState renders the final register file and flags the way cmd/sim
// prints it after a run completes.
func DumpState(s *State) string {
	var b strings.Builder
	for _, r := range []x86.Register{x86.AX, x86.BX, x86.CX, x86.DX, x86.SP, x86.BP, x86.SI, x86.DI} {
		idx, _ := r.RegIndex()
		fmt.Fprintf(&b, "%s: %#04x (%d)\n", r, s.Regs[idx], s.Regs[idx])
	}
	fmt.Fprintf(&b, "flags: ZF=%v SF=%v\n", s.Flags.Zero(), s.Flags.Sign())
	return b.String()
}
