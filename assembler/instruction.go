package assembler

import (
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/iridium/internal"
	"github.com/ezrec/iridium/vm"
)

// Instruction is a single parsed line of assembly.
type Instruction struct {
	LineNo    int     // Source line of the opcode.
	Label     *Token  // Optional label declaration.
	Directive *Token  // Optional directive.
	Opcode    Token   // Opcode token.
	Operands  []Token // Zero to three operands.
}

// Tokens iterates over all the tokens of the instruction, in source order.
func (inst *Instruction) Tokens() iter.Seq[Token] {
	return internal.SeqConcat(
		internal.SeqOptional(inst.Label),
		internal.SeqOptional(inst.Directive),
		internal.SeqOptional(&inst.Opcode),
		slices.Values(inst.Operands),
	)
}

// String returns the instruction as assembly source.
func (inst *Instruction) String() string {
	var words []string
	for tok := range inst.Tokens() {
		words = append(words, tok.String())
	}
	return strings.Join(words, " ")
}

// ToBytes encodes the instruction: the opcode byte followed by each
// operand's bytes. The operands must match the opcode's layout.
func (inst *Instruction) ToBytes() (code []byte, err error) {
	if inst.Opcode.Kind != TOKEN_OPCODE {
		err = ErrOpcodeExpected(inst.Opcode)
		return
	}

	op := inst.Opcode.Opcode
	if !op.Valid() {
		err = ErrOpcodeUnknown(inst.Opcode.String())
		return
	}

	code = []byte{op.Encode()}
	for _, tok := range inst.Operands {
		var operand []byte
		operand, err = tok.OperandBytes()
		if err != nil {
			code = nil
			return
		}
		code = append(code, operand...)
	}

	layout := op.Operands()
	switch {
	case len(inst.Operands) < len(layout):
		err = ErrOperandMissing
	case len(inst.Operands) > len(layout):
		err = ErrOperandExtra
	}
	if err != nil {
		code = nil
		return
	}

	for n, want := range layout {
		var ok bool
		tok := inst.Operands[n]
		switch want {
		case vm.OPERAND_REG:
			ok = tok.Kind == TOKEN_REGISTER
		case vm.OPERAND_IMM16:
			ok = tok.Kind == TOKEN_NUMBER
		}
		if !ok {
			code = nil
			err = ErrOperandKind{Index: n, Want: want, Got: tok}
			return
		}
	}

	return
}
