package assembler

import (
	"fmt"

	"github.com/ezrec/iridium/vm"
)

// TokenKind is the lexical class of a token.
type TokenKind int

const (
	TOKEN_OPCODE      = TokenKind(0) // opcode
	TOKEN_REGISTER    = TokenKind(1) // register
	TOKEN_NUMBER      = TokenKind(2) // number
	TOKEN_LABEL_DECL  = TokenKind(3) // label declaration
	TOKEN_LABEL_USAGE = TokenKind(4) // label usage
	TOKEN_DIRECTIVE   = TokenKind(5) // directive
	TOKEN_COMMENT     = TokenKind(6) // comment
)

func (kind TokenKind) String() string {
	switch kind {
	case TOKEN_OPCODE:
		return "opcode"
	case TOKEN_REGISTER:
		return "register"
	case TOKEN_NUMBER:
		return "number"
	case TOKEN_LABEL_DECL:
		return "label declaration"
	case TOKEN_LABEL_USAGE:
		return "label usage"
	case TOKEN_DIRECTIVE:
		return "directive"
	case TOKEN_COMMENT:
		return "comment"
	}
	return fmt.Sprintf("TokenKind(%d)", int(kind))
}

// Token is a single lexical unit of assembly source.
type Token struct {
	Kind     TokenKind
	Opcode   vm.Opcode // Opcode, for TOKEN_OPCODE.
	Register uint8     // Register index, for TOKEN_REGISTER.
	Number   int32     // Immediate value, for TOKEN_NUMBER.
	Name     string    // Label or directive name, or the opcode mnemonic as written.
}

// MakeOpcode creates an opcode token for a mnemonic.
func MakeOpcode(mnemonic string) Token {
	return Token{Kind: TOKEN_OPCODE, Opcode: vm.Lookup(mnemonic), Name: mnemonic}
}

// MakeRegister creates a register reference token.
func MakeRegister(index uint8) Token {
	return Token{Kind: TOKEN_REGISTER, Register: index}
}

// MakeNumber creates an immediate number token.
func MakeNumber(value int32) Token {
	return Token{Kind: TOKEN_NUMBER, Number: value}
}

// MakeLabelDecl creates a label declaration token.
func MakeLabelDecl(name string) Token {
	return Token{Kind: TOKEN_LABEL_DECL, Name: name}
}

// MakeLabelUsage creates a label reference token.
func MakeLabelUsage(name string) Token {
	return Token{Kind: TOKEN_LABEL_USAGE, Name: name}
}

// MakeDirective creates a directive token.
func MakeDirective(name string) Token {
	return Token{Kind: TOKEN_DIRECTIVE, Name: name}
}

// String returns the token as it would be written in source.
func (tok Token) String() string {
	switch tok.Kind {
	case TOKEN_OPCODE:
		if len(tok.Name) > 0 {
			return tok.Name
		}
		return tok.Opcode.String()
	case TOKEN_REGISTER:
		return fmt.Sprintf("$%d", tok.Register)
	case TOKEN_NUMBER:
		return fmt.Sprintf("#%d", tok.Number)
	case TOKEN_LABEL_DECL:
		return tok.Name + ":"
	case TOKEN_LABEL_USAGE:
		return "@" + tok.Name
	case TOKEN_DIRECTIVE:
		return "." + tok.Name
	case TOKEN_COMMENT:
		return ";"
	}
	return tok.Kind.String()
}

// OperandBytes encodes the token as an instruction operand.
//
// Registers encode as their index byte, not checked against the register
// file. Numbers encode as 16 bits, high byte first; values outside
// 0..65535 wrap.
func (tok Token) OperandBytes() (code []byte, err error) {
	switch tok.Kind {
	case TOKEN_REGISTER:
		code = []byte{tok.Register}
	case TOKEN_NUMBER:
		value := uint16(tok.Number)
		code = []byte{byte(value >> 8), byte(value)}
	default:
		err = ErrOperandUnexpected(tok)
	}

	return
}
