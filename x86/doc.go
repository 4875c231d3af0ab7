// Package x86 decodes a subset of the Intel 8086 instruction encoding.
//
// It covers the MOV, ADD, SUB and CMP register/memory/immediate forms, the
// sixteen conditional jumps, and the LOOP/LOOPZ/LOOPNZ/JCXZ family. Decoding
// is pure over a byte slice: a Cursor is threaded through the parse
// functions and advanced by exactly the bytes consumed.
package x86
