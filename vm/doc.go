// Package vm executes decoded x86 instructions against a small
// register-and-flags processor state: eight 16-bit registers, an
// instruction pointer, and a flags word carrying ZF and SF.
//
// Memory-operand execution, segment registers, and any flag beyond ZF/SF are
// out of scope; State.Step only ever writes to the register file.
package vm
