package vm

import (
	"errors"
	"fmt"
	"log"
	"math"
	"slices"
)

const (
	REGISTER_COUNT = 32       // Number of general purpose registers.
	HEAP_LIMIT     = 16 << 20 // Default maximum heap size, in bytes.
)

// Vm is the execution engine and the machine state it owns.
type Vm struct {
	Verbose   bool // Set to enable per-instruction logging.
	HeapLimit int  // Maximum heap size; zero or less selects HEAP_LIMIT.

	register  [REGISTER_COUNT]int32
	pc        uint32
	program   []byte
	heap      []byte
	remainder uint32
	equal     bool
	fault     error
}

// NewVm creates a new, empty machine.
func NewVm() (vm *Vm) {
	vm = &Vm{
		HeapLimit: HEAP_LIMIT,
	}

	return
}

// Reset clears the machine state, keeping the program.
func (vm *Vm) Reset() {
	if vm.Verbose {
		log.Printf("vm: reset")
	}

	clear(vm.register[:])
	vm.pc = 0
	vm.heap = nil
	vm.remainder = 0
	vm.equal = false
	vm.fault = nil
}

// AddByte appends a byte to the program.
func (vm *Vm) AddByte(code byte) {
	vm.program = append(vm.program, code)
}

// AddBytes appends bytes to the program.
// Callers must only append between completed steps.
func (vm *Vm) AddBytes(code []byte) {
	vm.program = append(vm.program, code...)
}

// Registers returns a copy of the register file.
func (vm *Vm) Registers() [REGISTER_COUNT]int32 {
	return vm.register
}

// Pc returns the program counter.
func (vm *Vm) Pc() uint32 {
	return vm.pc
}

// Program returns a copy of the program bytes.
func (vm *Vm) Program() []byte {
	return slices.Clone(vm.program)
}

// Heap returns a copy of the heap.
func (vm *Vm) Heap() []byte {
	return slices.Clone(vm.heap)
}

// HeapSize returns the number of bytes allocated on the heap.
func (vm *Vm) HeapSize() int {
	return len(vm.heap)
}

// Remainder returns the remainder of the last DIV.
func (vm *Vm) Remainder() uint32 {
	return vm.remainder
}

// Equal returns the result of the last EQ.
func (vm *Vm) Equal() bool {
	return vm.equal
}

// Fault returns the fault that stopped the machine, if any.
func (vm *Vm) Fault() error {
	return vm.fault
}

// String returns the current machine state as a string.
func (vm *Vm) String() (text string) {
	text += fmt.Sprintf("%5s: %04x\n", "pc", vm.pc)
	text += fmt.Sprintf("%5s: %v\n", "eq", vm.equal)
	text += fmt.Sprintf("%5s: %08x\n", "rem", vm.remainder)
	text += fmt.Sprintf("%5s: %d\n", "heap", len(vm.heap))
	for n := 0; n < REGISTER_COUNT; n += 4 {
		text += fmt.Sprintf("%5s:", fmt.Sprintf("$%d", n))
		for _, val := range vm.register[n : n+4] {
			text += fmt.Sprintf(" %04X_%04X", uint32(val)>>16, uint32(val)&0xffff)
		}
		text += "\n"
	}

	return
}

// Run steps until the program ends, halts, or faults.
// Reaching the end of the program returns nil; HLT returns ErrHalt.
func (vm *Vm) Run() (err error) {
	for err == nil {
		err = vm.Step()
	}

	if errors.Is(err, ErrDone) {
		err = nil
	}

	return
}

// StepTimes performs up to n steps. It returns the number of steps that
// completed without stopping the machine, and the stop reason if one
// occurred. Reaching the end of the program is not reported as an error.
func (vm *Vm) StepTimes(n int) (steps int, err error) {
	for steps < n {
		err = vm.Step()
		if err != nil {
			break
		}
		steps++
	}

	if errors.Is(err, ErrDone) {
		err = nil
	}

	return
}

// Step executes a single instruction.
//
// A nil return means execution may continue. Otherwise the error is the
// stop reason: ErrDone when the program counter is at or past the end of
// the program, ErrHalt after HLT, ErrIllegal after an unknown opcode, or an
// *ErrFault. Faults are sticky until Reset.
func (vm *Vm) Step() (err error) {
	if vm.fault != nil {
		return vm.fault
	}

	if uint64(vm.pc) >= uint64(len(vm.program)) {
		return ErrDone
	}

	start := vm.pc
	code := vm.program[start]
	op := Decode(code)

	if vm.Verbose {
		dec, _ := DecodeAt(vm.program, start)
		log.Printf("%04x: %v", start, dec)
	}

	vm.pc++

	err = vm.execute(op, code)
	switch {
	case err == nil:
	case errors.Is(err, ErrHalt), errors.Is(err, ErrIllegal(0)):
		if vm.Verbose {
			log.Printf("vm: %v", err)
		}
	default:
		vm.pc = start
		err = &ErrFault{Pc: start, Opcode: op, Err: err}
		vm.fault = err
		if vm.Verbose {
			log.Printf("vm: %v", err)
		}
	}

	return
}

// execute performs the operation of an already consumed opcode byte.
func (vm *Vm) execute(op Opcode, code byte) (err error) {
	switch op {
	case OP_NOP:
		// nothing
	case OP_LOAD:
		var reg int
		var imm uint16
		reg, err = vm.nextRegister()
		if err != nil {
			return
		}
		imm, err = vm.next16()
		if err != nil {
			return
		}
		vm.register[reg] = int32(imm)
	case OP_ALLOC:
		var size int32
		size, err = vm.readRegister()
		if err != nil {
			return
		}
		if size < 0 {
			err = ErrHeapNegative
			return
		}
		limit := vm.HeapLimit
		if limit <= 0 {
			limit = HEAP_LIMIT
		}
		if len(vm.heap)+int(size) > limit {
			err = ErrHeapFull
			return
		}
		vm.heap = append(vm.heap, make([]byte, size)...)
	case OP_ADD:
		err = vm.arith(func(a, b int32) (int32, error) { return a + b, nil })
	case OP_SUB:
		err = vm.arith(func(a, b int32) (int32, error) { return a - b, nil })
	case OP_MUL:
		err = vm.arith(func(a, b int32) (int32, error) { return a * b, nil })
	case OP_DIV:
		// DIV stores the sum of its sources, not the quotient. Only the
		// remainder reflects a division.
		err = vm.arith(func(a, b int32) (int32, error) {
			if b == 0 {
				return 0, ErrDivideByZero
			}
			vm.remainder = uint32(a % b)
			return a + b, nil
		})
	case OP_JMP:
		var target int32
		target, err = vm.readRegister()
		if err != nil {
			return
		}
		err = vm.jump(int64(target))
	case OP_JMPF:
		var offset int32
		offset, err = vm.readRegister()
		if err != nil {
			return
		}
		err = vm.jump(int64(vm.pc) + int64(offset))
	case OP_JMPB:
		var offset int32
		offset, err = vm.readRegister()
		if err != nil {
			return
		}
		target := int64(vm.pc) - int64(offset)
		if target < 0 {
			err = ErrJumpUnderflow
			return
		}
		err = vm.jump(target)
	case OP_EQ:
		var a, b int32
		a, err = vm.readRegister()
		if err != nil {
			return
		}
		b, err = vm.readRegister()
		if err != nil {
			return
		}
		vm.equal = a == b
	case OP_JEQ, OP_JNEQ:
		var target int32
		target, err = vm.readRegister()
		if err != nil {
			return
		}
		if vm.equal == (op == OP_JEQ) {
			err = vm.jump(int64(target))
		}
	case OP_INC:
		var reg int
		reg, err = vm.nextRegister()
		if err != nil {
			return
		}
		vm.register[reg]++
	case OP_DEC:
		var reg int
		reg, err = vm.nextRegister()
		if err != nil {
			return
		}
		vm.register[reg]--
	case OP_HLT:
		err = ErrHalt
	case OP_ILLEGAL:
		err = ErrIllegal(code)
	default:
		panic(fmt.Sprintf("opcode %v has no handler", op))
	}

	return
}

// arith reads two source registers and a destination register, and
// stores the result of the operation. Nothing is written on error.
func (vm *Vm) arith(operation func(a, b int32) (int32, error)) (err error) {
	a, err := vm.readRegister()
	if err != nil {
		return
	}
	b, err := vm.readRegister()
	if err != nil {
		return
	}
	dst, err := vm.nextRegister()
	if err != nil {
		return
	}

	result, err := operation(a, b)
	if err != nil {
		return
	}

	vm.register[dst] = result
	return
}

// jump sets the program counter. Targets past the end of the program are
// permitted, and stop the machine on the next step.
func (vm *Vm) jump(target int64) (err error) {
	if target < 0 || target > math.MaxUint32 {
		err = ErrJumpRange
		return
	}

	vm.pc = uint32(target)
	return
}

// next8 consumes the next program byte.
func (vm *Vm) next8() (value byte, err error) {
	if uint64(vm.pc) >= uint64(len(vm.program)) {
		err = ErrProgramRange
		return
	}

	value = vm.program[vm.pc]
	vm.pc++
	return
}

// next16 consumes the next two program bytes as a big-endian value.
func (vm *Vm) next16() (value uint16, err error) {
	if uint64(vm.pc)+2 > uint64(len(vm.program)) {
		err = ErrProgramRange
		return
	}

	value = uint16(vm.program[vm.pc])<<8 | uint16(vm.program[vm.pc+1])
	vm.pc += 2
	return
}

// nextRegister consumes a register index operand.
func (vm *Vm) nextRegister() (reg int, err error) {
	index, err := vm.next8()
	if err != nil {
		return
	}

	if int(index) >= REGISTER_COUNT {
		err = ErrRegister(index)
		return
	}

	reg = int(index)
	return
}

// readRegister consumes a register index operand and returns its value.
func (vm *Vm) readRegister() (value int32, err error) {
	reg, err := vm.nextRegister()
	if err != nil {
		return
	}

	value = vm.register[reg]
	return
}
