package vm

import (
	"iter"
	"strings"
)

// Opcode is an instruction operation code.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP     = Opcode(0)   // nop
	OP_LOAD    = Opcode(1)   // load
	OP_ALLOC   = Opcode(2)   // alloc
	OP_ADD     = Opcode(3)   // add
	OP_SUB     = Opcode(4)   // sub
	OP_MUL     = Opcode(5)   // mul
	OP_DIV     = Opcode(6)   // div
	OP_JMP     = Opcode(7)   // jmp
	OP_JMPF    = Opcode(8)   // jmpf
	OP_JMPB    = Opcode(9)   // jmpb
	OP_EQ      = Opcode(10)  // eq
	OP_JEQ     = Opcode(11)  // jeq
	OP_JNEQ    = Opcode(12)  // jneq
	OP_INC     = Opcode(13)  // inc
	OP_DEC     = Opcode(14)  // dec
	OP_HLT     = Opcode(99)  // hlt
	OP_ILLEGAL = Opcode(100) // igl
)

// Operand is the encoding of a single instruction operand.
type Operand int

const (
	OPERAND_REG   = Operand(0) // 8-bit register index
	OPERAND_IMM16 = Operand(1) // 16-bit big-endian immediate
)

// Size returns the number of bytes the operand occupies.
func (od Operand) Size() int {
	if od == OPERAND_IMM16 {
		return 2
	}
	return 1
}

// String returns the operand kind name.
func (od Operand) String() string {
	if od == OPERAND_IMM16 {
		return "imm16"
	}
	return "reg"
}

// Decode maps an instruction byte to its opcode.
// Unknown bytes decode to OP_ILLEGAL.
func Decode(code byte) (op Opcode) {
	op = Opcode(code)
	if !op.Valid() {
		op = OP_ILLEGAL
	}
	return
}

// Encode returns the instruction byte of the opcode.
func (op Opcode) Encode() byte {
	return byte(op)
}

// Valid returns true for every opcode except OP_ILLEGAL and unassigned codes.
func (op Opcode) Valid() bool {
	switch op {
	case OP_NOP, OP_LOAD, OP_ALLOC,
		OP_ADD, OP_SUB, OP_MUL, OP_DIV,
		OP_JMP, OP_JMPF, OP_JMPB,
		OP_EQ, OP_JEQ, OP_JNEQ,
		OP_INC, OP_DEC, OP_HLT:
		return true
	}
	return false
}

// Operands returns the operand layout of the opcode, in stream order.
func (op Opcode) Operands() (operands []Operand) {
	switch op {
	case OP_NOP, OP_HLT, OP_ILLEGAL:
		// none
	case OP_LOAD:
		operands = []Operand{OPERAND_REG, OPERAND_IMM16}
	case OP_ALLOC, OP_JMP, OP_JMPF, OP_JMPB, OP_JEQ, OP_JNEQ, OP_INC, OP_DEC:
		operands = []Operand{OPERAND_REG}
	case OP_EQ:
		operands = []Operand{OPERAND_REG, OPERAND_REG}
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV:
		operands = []Operand{OPERAND_REG, OPERAND_REG, OPERAND_REG}
	}
	return
}

// Size returns the encoded size of the instruction, opcode byte included.
func (op Opcode) Size() (size int) {
	size = 1
	for _, od := range op.Operands() {
		size += od.Size()
	}
	return
}

// Opcodes iterates over all valid opcodes in encoding order.
func Opcodes() iter.Seq[Opcode] {
	return func(yield func(op Opcode) bool) {
		for code := range 256 {
			op := Opcode(code)
			if op.Valid() && !yield(op) {
				return
			}
		}
	}
}

// mnemonicMap maps lower case mnemonics to opcodes.
var mnemonicMap = map[string]Opcode{}

func init() {
	for op := range Opcodes() {
		mnemonicMap[op.String()] = op
	}
}

// Lookup returns the opcode for a mnemonic, ignoring case.
// Unknown mnemonics return OP_ILLEGAL.
func Lookup(mnemonic string) Opcode {
	op, ok := mnemonicMap[strings.ToLower(mnemonic)]
	if !ok {
		return OP_ILLEGAL
	}
	return op
}
