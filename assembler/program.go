package assembler

import (
	"strings"
)

// Program is an ordered sequence of parsed instructions.
type Program struct {
	Instructions []Instruction
}

// ToBytes concatenates the encoding of every instruction.
// The first failing instruction aborts code generation.
func (prog *Program) ToBytes() (code []byte, err error) {
	for n := range prog.Instructions {
		inst := &prog.Instructions[n]
		var bytes []byte
		bytes, err = inst.ToBytes()
		if err != nil {
			code = nil
			err = &ErrCodegen{LineNo: inst.LineNo, Err: err}
			return
		}
		code = append(code, bytes...)
	}

	return
}

// String returns the program as assembly source, one instruction per line.
func (prog *Program) String() string {
	var text strings.Builder
	for n := range prog.Instructions {
		text.WriteString(prog.Instructions[n].String())
		text.WriteString("\n")
	}
	return text.String()
}
