// Package repl is the interactive shell of the iridium machine.
package repl

import (
	"errors"
	"io"
	"log"
	"slices"
	"strings"

	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/iridium/assembler"
	"github.com/ezrec/iridium/translate"
	"github.com/ezrec/iridium/vm"
)

const PROMPT = ">>> "

// Machine is the machine the shell operates on.
type Machine interface {
	Append(prog *assembler.Program) error
	Tick() (done bool, err error)
	Reset()
	Registers() [vm.REGISTER_COUNT]int32
	Program() []byte
	Pc() uint32
	Equal() bool
	Remainder() uint32
	HeapSize() int
}

// LineReader is a source of command lines.
type LineReader interface {
	ReadLine() (line string, err error)
}

// Repl is an interactive shell session.
type Repl struct {
	Verbose   bool
	Machine   Machine
	Assembler *assembler.Assembler
	Output    io.Writer

	history []string
	printer *pp.PrettyPrinter
}

// NewRepl creates a shell on a machine, writing to output.
func NewRepl(machine Machine, output io.Writer) (r *Repl) {
	printer := pp.New()
	printer.SetColoringEnabled(false)

	r = &Repl{
		Machine:   machine,
		Assembler: &assembler.Assembler{},
		Output:    output,
		printer:   printer,
	}

	return
}

// History returns the commands entered so far.
func (r *Repl) History() []string {
	return slices.Clone(r.history)
}

// Run executes commands from input until .quit or the end of input.
func (r *Repl) Run(input LineReader) (err error) {
	translate.Fprintln(r.Output, "Welcome to Iridium! Let's be productive!")

	for {
		var line string
		line, err = input.ReadLine()
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}

		if r.Execute(line) {
			return
		}
	}
}

// Execute runs a single command line, and returns true on .quit.
func (r *Repl) Execute(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return
	}

	if r.Verbose {
		log.Printf("repl: %v", line)
	}

	r.history = append(r.history, line)

	switch line {
	case ".quit":
		translate.Fprintln(r.Output, "Farewell! Have a great day!")
		quit = true
	case ".history":
		for _, command := range r.history {
			translate.Fprintln(r.Output, "%v", command)
		}
	case ".program":
		translate.Fprintln(r.Output, "Listing instructions currently in VM's program vector:")
		for _, code := range r.Machine.Program() {
			translate.Fprintln(r.Output, "%v", code)
		}
		translate.Fprintln(r.Output, "End of Program Listing")
	case ".registers":
		translate.Fprintln(r.Output, "Listing registers and all contents:")
		r.printer.Fprintln(r.Output, r.Machine.Registers())
		translate.Fprintln(r.Output, "End of Register Listing")
	case ".state":
		r.state()
	case ".reset":
		r.Machine.Reset()
		translate.Fprintln(r.Output, "Machine state reset")
	default:
		r.assemble(line)
	}

	return
}

// state prints the machine flags and the next instruction.
func (r *Repl) state() {
	pc := r.Machine.Pc()

	translate.Fprintln(r.Output, "pc: %04x", pc)
	translate.Fprintln(r.Output, "eq: %v", r.Machine.Equal())
	translate.Fprintln(r.Output, "remainder: %v", r.Machine.Remainder())
	translate.Fprintln(r.Output, "heap: %v bytes", r.Machine.HeapSize())

	dec, err := vm.DecodeAt(r.Machine.Program(), pc)
	switch {
	case err == nil:
		translate.Fprintln(r.Output, "next: %v", dec)
	case uint64(pc) < uint64(len(r.Machine.Program())):
		translate.Fprintln(r.Output, "next: %v (truncated)", dec)
	default:
		translate.Fprintln(r.Output, "next: end of program")
	}
}

// assemble appends the line to the program, and steps once.
func (r *Repl) assemble(line string) {
	prog, err := r.Assembler.ParseString(line)
	if err != nil {
		translate.Fprintln(r.Output, "Unable to parse input: %v", err)
		return
	}

	err = r.Machine.Append(prog)
	if err != nil {
		translate.Fprintln(r.Output, "Unable to assemble input: %v", err)
		return
	}

	_, err = r.Machine.Tick()
	if err != nil {
		translate.Fprintln(r.Output, "Error: %v", err)
	}
}
