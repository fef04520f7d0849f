package vm

import (
	"fmt"
	"iter"
	"strings"
)

// Decoded is a single instruction decoded from a byte buffer.
type Decoded struct {
	Code     byte     // Raw opcode byte.
	Opcode   Opcode   // Decoded opcode.
	Operands []uint16 // Register indexes or immediates, in stream order.
}

// Size returns the number of bytes the instruction occupies.
func (dec Decoded) Size() int {
	return dec.Opcode.Size()
}

// String returns the assembly language form of the instruction.
func (dec Decoded) String() string {
	if dec.Opcode == OP_ILLEGAL {
		return fmt.Sprintf("%v ; 0x%02x", dec.Opcode, dec.Code)
	}

	words := []string{dec.Opcode.String()}
	for n, od := range dec.Opcode.Operands() {
		if n >= len(dec.Operands) {
			words = append(words, "?")
			continue
		}
		switch od {
		case OPERAND_REG:
			words = append(words, fmt.Sprintf("$%d", dec.Operands[n]))
		case OPERAND_IMM16:
			words = append(words, fmt.Sprintf("#%d", dec.Operands[n]))
		}
	}

	return strings.Join(words, " ")
}

// DecodeAt decodes the instruction starting at offset pc of code.
// A truncated instruction returns the operands that were present and
// ErrProgramRange.
func DecodeAt(code []byte, pc uint32) (dec Decoded, err error) {
	if uint64(pc) >= uint64(len(code)) {
		err = ErrProgramRange
		return
	}

	dec.Code = code[pc]
	dec.Opcode = Decode(dec.Code)

	at := uint64(pc) + 1
	for _, od := range dec.Opcode.Operands() {
		if at+uint64(od.Size()) > uint64(len(code)) {
			err = ErrProgramRange
			return
		}
		switch od {
		case OPERAND_REG:
			dec.Operands = append(dec.Operands, uint16(code[at]))
		case OPERAND_IMM16:
			dec.Operands = append(dec.Operands, uint16(code[at])<<8|uint16(code[at+1]))
		}
		at += uint64(od.Size())
	}

	return
}

// Disassemble iterates over the instructions in code, keyed by offset.
// Iteration stops at the first truncated instruction.
func Disassemble(code []byte) iter.Seq2[uint32, Decoded] {
	return func(yield func(pc uint32, dec Decoded) bool) {
		var pc uint32
		for uint64(pc) < uint64(len(code)) {
			dec, err := DecodeAt(code, pc)
			if err != nil {
				return
			}
			if !yield(pc, dec) {
				return
			}
			pc += uint32(dec.Size())
		}
	}
}
