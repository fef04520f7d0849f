// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"
	"slices"

	"github.com/ezrec/iridium/assembler"
	"github.com/ezrec/iridium/vm"
)

// Listing maps an assembled instruction to its location in the program.
type Listing struct {
	LineNo      int                   // Source line of the instruction.
	Offset      uint32                // Program offset of the opcode byte.
	Size        int                   // Encoded size, in bytes.
	Instruction assembler.Instruction // Parsed instruction.
}

// Emulator state. Engine + the listing of the program it runs.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.
	*vm.Vm       // Reference to the execution engine.

	listing []Listing
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Vm: vm.NewVm(),
	}

	return
}

// Load replaces the program with raw bytecode, and resets the machine.
// Bytecode loaded this way has no listing.
func (emu *Emulator) Load(code []byte) {
	limit := emu.Vm.HeapLimit

	emu.Vm = vm.NewVm()
	emu.Vm.HeapLimit = limit
	emu.Vm.AddBytes(code)
	emu.listing = nil
}

// LoadProgram replaces the program with an assembled one, and resets the
// machine.
func (emu *Emulator) LoadProgram(prog *assembler.Program) (err error) {
	emu.Load(nil)

	return emu.Append(prog)
}

// Append generates code for each instruction of prog, and appends it to
// the program. Nothing is appended if any instruction fails to generate.
func (emu *Emulator) Append(prog *assembler.Program) (err error) {
	offset := uint32(len(emu.Vm.Program()))

	var code []byte
	var listing []Listing
	for _, inst := range prog.Instructions {
		var bytes []byte
		bytes, err = inst.ToBytes()
		if err != nil {
			err = &assembler.ErrCodegen{LineNo: inst.LineNo, Err: err}
			return
		}
		listing = append(listing, Listing{
			LineNo:      inst.LineNo,
			Offset:      offset + uint32(len(code)),
			Size:        len(bytes),
			Instruction: inst,
		})
		code = append(code, bytes...)
	}

	if emu.Verbose {
		for _, entry := range listing {
			log.Printf("%04x: %v", entry.Offset, &entry.Instruction)
		}
	}

	emu.Vm.AddBytes(code)
	emu.listing = append(emu.listing, listing...)

	return
}

// Listing returns the listing of the assembled program.
func (emu *Emulator) Listing() []Listing {
	return slices.Clone(emu.listing)
}

// Debug returns the listing entry covering the program offset.
func (emu *Emulator) Debug(pc uint32) (entry Listing, ok bool) {
	n, found := slices.BinarySearchFunc(emu.listing, pc, func(entry Listing, pc uint32) int {
		switch {
		case pc < entry.Offset:
			return 1
		case pc >= entry.Offset+uint32(entry.Size):
			return -1
		}
		return 0
	})
	if !found {
		return
	}

	entry = emu.listing[n]
	ok = true
	return
}

// LineNo returns the source line of the instruction at the program counter,
// or 0 if it has no listing.
func (emu *Emulator) LineNo() int {
	entry, _ := emu.Debug(emu.Vm.Pc())
	return entry.LineNo
}

// Tick performs a single step of the machine.
//
// done is set when the machine has stopped: at the end of the program,
// after HLT, or after an illegal opcode, which is also reported as an
// error. Faults are reported as errors with done unset.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Vm.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Vm.Step()
	switch {
	case err == nil:
	case errors.Is(err, vm.ErrDone), errors.Is(err, vm.ErrHalt):
		done = true
		err = nil
	case errors.Is(err, vm.ErrIllegal(0)):
		done = true
	}

	return
}

// Run ticks until the machine stops, or limit steps have been executed.
// A limit of zero or less is unlimited. steps counts the instructions
// executed that did not stop the machine.
func (emu *Emulator) Run(limit int) (steps int, err error) {
	for limit <= 0 || steps < limit {
		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
		steps++
	}

	return
}
