// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/tebeka/atexit"
	"golang.org/x/term"

	"github.com/ezrec/iridium/assembler"
	"github.com/ezrec/iridium/emulator"
	"github.com/ezrec/iridium/repl"
	"github.com/ezrec/iridium/translate"
)

// predefines collects repeated -D NAME=VALUE flags.
type predefines [][2]string

func (pd *predefines) String() string {
	var defs []string
	for _, def := range *pd {
		defs = append(defs, def[0]+"="+def[1])
	}
	return strings.Join(defs, ",")
}

func (pd *predefines) Set(text string) error {
	name, value, ok := strings.Cut(text, "=")
	if !ok || len(name) == 0 {
		return errors.New(translate.From("'%v' is not NAME=VALUE", text))
	}
	*pd = append(*pd, [2]string{name, value})
	return nil
}

func main() {
	var compile string
	var binary string
	var output string
	var defines predefines
	var limit int
	var verbose bool
	var interactive bool

	flag.StringVar(&compile, "c", "", "assembly file to compile")
	flag.StringVar(&binary, "b", "", "bytecode file to load")
	flag.StringVar(&output, "o", "", "write compiled bytecode, do not execute")
	flag.Var(&defines, "D", "predefine NAME=VALUE for expressions (repeatable)")
	flag.IntVar(&limit, "n", 0, "step limit, 0 for unlimited")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&interactive, "i", false, "enter the shell after running")

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(output) != 0 && len(compile) == 0 {
		atexit.Fatalf("%v: -o requires -c", os.Args[0])
	}

	asm := &assembler.Assembler{Verbose: verbose}
	for _, def := range defines {
		asm.Predefine(def[0], def[1])
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	loaded := false

	// Compile a new instruction stream.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			atexit.Fatalf("%v: %v", compile, err)
		}
		prog, err := asm.Parse(inf)
		inf.Close()
		if err != nil {
			atexit.Fatalf("%v: %v", compile, err)
		}

		if len(output) != 0 {
			code, err := prog.ToBytes()
			if err != nil {
				atexit.Fatalf("%v: %v", compile, err)
			}
			err = os.WriteFile(output, code, 0o644)
			if err != nil {
				atexit.Fatalf("%v: %v", output, err)
			}
			atexit.Exit(0)
		}

		err = emu.LoadProgram(prog)
		if err != nil {
			atexit.Fatalf("%v: %v", compile, err)
		}
		loaded = true
	} else if len(binary) != 0 {
		code, err := os.ReadFile(binary)
		if err != nil {
			atexit.Fatalf("%v: %v", binary, err)
		}
		emu.Load(code)
		loaded = true
	}

	if loaded {
		steps, err := emu.Run(limit)
		if verbose {
			log.Printf("%v steps", steps)
		}
		fmt.Print(emu.String())
		if err != nil {
			atexit.Fatalf("%v", err)
		}
	}

	if !loaded || interactive {
		err := shell(emu, asm, verbose)
		if err != nil {
			atexit.Fatalf("%v", err)
		}
	}

	atexit.Exit(0)
}

// shell runs the interactive shell on stdin, with line editing when stdin
// is a terminal.
func shell(emu *emulator.Emulator, asm *assembler.Assembler, verbose bool) (err error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		r := repl.NewRepl(emu, os.Stdout)
		r.Assembler = asm
		r.Verbose = verbose
		return r.Run(repl.NewScanner(os.Stdin, os.Stdout))
	}

	tty, err := repl.OpenTerminal(fd, struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout})
	if err != nil {
		return
	}
	atexit.Register(func() { tty.Close() })
	defer tty.Close()

	log.SetOutput(tty)
	defer log.SetOutput(os.Stderr)

	r := repl.NewRepl(emu, tty)
	r.Assembler = asm
	r.Verbose = verbose
	return r.Run(tty)
}
