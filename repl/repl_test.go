package repl

import (
	"bytes"
	"errors"
	"strings"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/iridium/assembler"
	"github.com/ezrec/iridium/emulator"
	"github.com/ezrec/iridium/vm"
)

var _ = Describe("Repl", func() {
	var (
		mockCtrl    *gomock.Controller
		mockMachine *MockMachine
		output      *bytes.Buffer
		r           *Repl
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockMachine = NewMockMachine(mockCtrl)
		output = &bytes.Buffer{}
		r = NewRepl(mockMachine, output)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should ignore blank lines", func() {
		Expect(r.Execute("   ")).To(BeFalse())
		Expect(output.String()).To(BeEmpty())
		Expect(r.History()).To(BeEmpty())
	})

	It("should quit", func() {
		Expect(r.Execute(".quit")).To(BeTrue())
		Expect(output.String()).To(ContainSubstring("Farewell"))
	})

	It("should list the history", func() {
		mockMachine.EXPECT().Reset()

		r.Execute(".reset")
		r.Execute(" .history ")

		Expect(r.History()).To(Equal([]string{".reset", ".history"}))
		Expect(output.String()).To(HaveSuffix(".reset\n.history\n"))
	})

	It("should list the program bytes", func() {
		mockMachine.EXPECT().Program().Return([]byte{1, 0, 1, 244})

		r.Execute(".program")

		Expect(output.String()).To(ContainSubstring("\n1\n0\n1\n244\n"))
		Expect(output.String()).To(HaveSuffix("End of Program Listing\n"))
	})

	It("should dump the registers", func() {
		var registers [vm.REGISTER_COUNT]int32
		registers[3] = 4242
		mockMachine.EXPECT().Registers().Return(registers)

		r.Execute(".registers")

		Expect(output.String()).To(ContainSubstring("4242"))
		Expect(output.String()).To(HaveSuffix("End of Register Listing\n"))
	})

	It("should show the machine state", func() {
		mockMachine.EXPECT().Pc().Return(uint32(4))
		mockMachine.EXPECT().Equal().Return(true)
		mockMachine.EXPECT().Remainder().Return(uint32(2))
		mockMachine.EXPECT().HeapSize().Return(64)
		mockMachine.EXPECT().Program().Return([]byte{0, 0, 0, 0, 1, 3, 0, 9}).AnyTimes()

		r.Execute(".state")

		Expect(output.String()).To(ContainSubstring("pc: 0004\n"))
		Expect(output.String()).To(ContainSubstring("eq: true\n"))
		Expect(output.String()).To(ContainSubstring("remainder: 2\n"))
		Expect(output.String()).To(ContainSubstring("heap: 64 bytes\n"))
		Expect(output.String()).To(ContainSubstring("next: load $3 #9\n"))
	})

	It("should show the end of the program", func() {
		mockMachine.EXPECT().Pc().Return(uint32(1))
		mockMachine.EXPECT().Equal().Return(false)
		mockMachine.EXPECT().Remainder().Return(uint32(0))
		mockMachine.EXPECT().HeapSize().Return(0)
		mockMachine.EXPECT().Program().Return([]byte{99}).AnyTimes()

		r.Execute(".state")

		Expect(output.String()).To(HaveSuffix("next: end of program\n"))
	})

	It("should append and step an instruction", func() {
		var appended *assembler.Program
		gomock.InOrder(
			mockMachine.EXPECT().Append(gomock.Any()).
				DoAndReturn(func(prog *assembler.Program) error {
					appended = prog
					return nil
				}),
			mockMachine.EXPECT().Tick().Return(false, nil),
		)

		r.Execute("load $0 #100")

		Expect(appended.Instructions).To(HaveLen(1))
		Expect(appended.String()).To(Equal("load $0 #100\n"))
		Expect(output.String()).To(BeEmpty())
	})

	It("should report parse failures without touching the machine", func() {
		r.Execute("load $0 100")

		Expect(output.String()).To(HavePrefix("Unable to parse input: "))
		Expect(r.History()).To(Equal([]string{"load $0 100"}))
	})

	It("should report code generation failures", func() {
		mockMachine.EXPECT().Append(gomock.Any()).Return(assembler.ErrOperandMissing)

		r.Execute("load $0")

		Expect(output.String()).To(HavePrefix("Unable to assemble input: "))
	})

	It("should report execution errors", func() {
		mockMachine.EXPECT().Append(gomock.Any()).Return(nil)
		mockMachine.EXPECT().Tick().Return(false, vm.ErrDivideByZero)

		r.Execute("div $0 $1 $2")

		Expect(output.String()).To(ContainSubstring(vm.ErrDivideByZero.Error()))
	})

	It("should run until .quit", func() {
		mockMachine.EXPECT().Reset().Times(1)

		input := NewScanner(strings.NewReader(".reset\n.quit\n.reset\n"), nil)
		Expect(r.Run(input)).To(Succeed())

		Expect(r.History()).To(Equal([]string{".reset", ".quit"}))
	})

	It("should run until the end of input", func() {
		mockMachine.EXPECT().Reset().Times(2)

		prompt := &bytes.Buffer{}
		input := NewScanner(strings.NewReader(".reset\n\n.reset"), prompt)
		Expect(r.Run(input)).To(Succeed())

		Expect(prompt.String()).To(Equal(strings.Repeat(PROMPT, 4)))
	})

	It("should stop on read errors", func() {
		failure := errors.New("broken pipe")
		input := NewScanner(&failingReader{err: failure}, nil)

		Expect(r.Run(input)).To(MatchError(failure))
	})
})

var _ = Describe("Repl with an emulator", func() {
	var (
		emu    *emulator.Emulator
		output *bytes.Buffer
		r      *Repl
	)

	BeforeEach(func() {
		emu = emulator.NewEmulator()
		output = &bytes.Buffer{}
		r = NewRepl(emu, output)
	})

	It("should execute each line as it is entered", func() {
		r.Execute("load $0 #500")
		r.Execute("load $1 #20")
		r.Execute("sub $0 $1 $2")

		Expect(emu.Registers()[2]).To(Equal(int32(480)))
		Expect(emu.Pc()).To(Equal(uint32(12)))
		Expect(output.String()).To(BeEmpty())
	})

	It("should expand expressions", func() {
		r.Assembler.Predefine("BASE", "40")
		r.Execute("load $$(1+1) #$(BASE+2)")

		Expect(emu.Registers()[2]).To(Equal(int32(42)))
	})

	It("should reset the machine but keep the program", func() {
		r.Execute("load $0 #7")
		r.Execute(".reset")

		Expect(emu.Registers()[0]).To(BeZero())
		Expect(emu.Program()).To(HaveLen(4))
		Expect(emu.Pc()).To(BeZero())
	})

	It("should report faults with their line", func() {
		r.Execute("load $0 #1")
		r.Execute("div $0 $1 $2")

		Expect(output.String()).To(ContainSubstring("Error: "))
		Expect(emu.Fault()).To(MatchError(vm.ErrDivideByZero))
	})
})

type failingReader struct {
	err error
}

func (fr *failingReader) Read(p []byte) (int, error) {
	return 0, fr.err
}
