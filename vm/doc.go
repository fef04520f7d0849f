// Package vm implements the iridium register machine.
//
// The machine has 32 signed 32-bit registers ($0-$31), a program counter
// into a growable bytecode buffer, an append-only heap, a remainder scratch
// register written by DIV and an equal flag written by EQ. Each instruction
// is a single opcode byte followed by a fixed, opcode specific list of
// operands: one byte per register index, two bytes (big-endian) per
// immediate.
//
// The machine is single threaded. Hosts sharing a Vm between goroutines must
// serialize every call.
package vm
