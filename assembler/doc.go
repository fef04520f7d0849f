// Package assembler translates iridium assembly text into vm bytecode.
//
// A source line holds one instruction:
//
//	[name:] [.directive] mnemonic [operand ...] [; comment]
//
// Operands are registers ($3), immediates (#-12) or label references
// (@loop). Mnemonics are matched without regard to case. Compile-time
// expressions $(...) are evaluated with Starlark before parsing, with the
// Predefine constants and LINENO in scope.
//
// Labels and directives are parsed but never resolved or acted upon; a
// label reference in an operand fails code generation.
package assembler
