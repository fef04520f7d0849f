// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package assembler

import (
	"io"
	"log"
)

// Assembler parses assembly source, with compile-time expression support.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]string // Predefines
}

// Predefine defines a new constant, or redefines an existing one, for use
// in $(...) expressions. Values are parsed as integers with Go prefixes.
func (asm *Assembler) Predefine(name string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// Parse reads and parses all of the assembly source from input.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	text, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return asm.ParseString(string(text))
}

// ParseString parses assembly source text.
func (asm *Assembler) ParseString(text string) (prog *Program, err error) {
	text, err = asm.preprocess(text)
	if err != nil {
		return
	}

	prog, err = ParseProgram(text)
	if err != nil {
		return
	}

	if asm.Verbose {
		for _, inst := range prog.Instructions {
			log.Printf("%v: %v", inst.LineNo, &inst)
		}
	}

	return
}

// Assemble parses and encodes assembly source text.
func (asm *Assembler) Assemble(text string) (code []byte, err error) {
	prog, err := asm.ParseString(text)
	if err != nil {
		return
	}

	return prog.ToBytes()
}
