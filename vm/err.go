package vm

import (
	"errors"

	"github.com/ezrec/iridium/translate"
)

var f = translate.From

var (
	// Stop signals
	ErrDone = errors.New(f("end of program"))
	ErrHalt = errors.New(f("halted"))

	// Execution faults
	ErrProgramRange  = errors.New(f("operand past end of program"))
	ErrJumpRange     = errors.New(f("jump target out of range"))
	ErrJumpUnderflow = errors.New(f("backward jump underflow"))
	ErrDivideByZero  = errors.New(f("division by zero"))
	ErrHeapNegative  = errors.New(f("negative allocation"))
	ErrHeapFull      = errors.New(f("heap full"))
)

// ErrIllegal reports an instruction byte that decodes to OP_ILLEGAL.
type ErrIllegal byte

func (ei ErrIllegal) Error() string {
	return f("illegal opcode 0x%02x", byte(ei))
}

func (ei ErrIllegal) Is(err error) (ok bool) {
	_, ok = err.(ErrIllegal)
	return
}

// ErrRegister reports a register index outside of the register file.
type ErrRegister byte

func (er ErrRegister) Error() string {
	return f("register $%d out of range", byte(er))
}

func (er ErrRegister) Is(err error) (ok bool) {
	_, ok = err.(ErrRegister)
	return
}

// ErrFault describes an execution fault and where it happened.
type ErrFault struct {
	Pc     uint32 // Offset of the faulting instruction.
	Opcode Opcode // Decoded opcode of the faulting instruction.
	Err    error  // Nature of the fault.
}

func (err *ErrFault) Error() string {
	return f("fault at %04x %v: %v", err.Pc, err.Opcode, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}
