package assembler

import (
	"errors"

	"github.com/ezrec/iridium/translate"
	"github.com/ezrec/iridium/vm"
)

var f = translate.From

var (
	// Parse errors
	ErrProgramEmpty   = errors.New(f("no instructions"))
	ErrOpcodeMissing  = errors.New(f("opcode missing"))
	ErrOperandTooMany = errors.New(f("more than three operands"))
	ErrLineEnd        = errors.New(f("end of line expected"))

	// Code generation errors
	ErrOperandMissing = errors.New(f("operand missing"))
	ErrOperandExtra   = errors.New(f("excessive operands"))
)

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseDirective string

func (err ErrParseDirective) Error() string {
	return f("'%v' is not a directive", string(err))
}

type ErrParseOperand string

func (err ErrParseOperand) Error() string {
	return f("'%v' is not a register, number or label", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrOpcodeExpected reports a token other than an opcode in the opcode slot.
type ErrOpcodeExpected Token

func (err ErrOpcodeExpected) Error() string {
	return f("opcode expected, found %v '%v'", err.Kind, Token(err))
}

// ErrOpcodeUnknown reports a mnemonic that is not in the opcode table.
type ErrOpcodeUnknown string

func (err ErrOpcodeUnknown) Error() string {
	return f("unknown opcode '%v'", string(err))
}

// ErrOperandUnexpected reports a token that cannot be encoded as an operand.
type ErrOperandUnexpected Token

func (err ErrOperandUnexpected) Error() string {
	return f("unexpected %v '%v' in operand position", err.Kind, Token(err))
}

// ErrOperandKind reports an operand of the wrong kind for its opcode.
type ErrOperandKind struct {
	Index int
	Want  vm.Operand
	Got   Token
}

func (err ErrOperandKind) Error() string {
	return f("operand %d is %v '%v', %v expected", err.Index+1, err.Got.Kind, err.Got, err.Want)
}

// ErrSyntax locates a parse failure in the source.
type ErrSyntax struct {
	LineNo int
	Column int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d:%d '%v' %v", err.LineNo, err.Column, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrCodegen locates a code generation failure in the source.
type ErrCodegen struct {
	LineNo int
	Err    error
}

func (err ErrCodegen) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err ErrCodegen) Unwrap() error {
	return err.Err
}
