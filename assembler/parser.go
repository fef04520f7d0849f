package assembler

import (
	"strconv"
	"strings"
)

// parser is a recursive descent parser over assembly source text.
// Each production either consumes its input and succeeds, or fails
// leaving pos at the point of failure.
type parser struct {
	text string
	pos  int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// isBoundary is true for the characters that may end a word.
func isBoundary(c byte) bool {
	return c == 0 || c == ';' || c == '\n' || isSpace(c)
}

func (p *parser) eof() bool {
	return p.pos >= len(p.text)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.text[p.pos]
}

// span consumes the longest run of accepted characters.
func (p *parser) span(accept func(c byte) bool) string {
	start := p.pos
	for !p.eof() && accept(p.text[p.pos]) {
		p.pos++
	}
	return p.text[start:p.pos]
}

// word returns the source text from start up to the next boundary.
func (p *parser) word(start int) string {
	end := start
	for end < len(p.text) && !isBoundary(p.text[end]) {
		end++
	}
	return p.text[start:end]
}

func (p *parser) space0() {
	p.span(isSpace)
}

func (p *parser) space1() bool {
	return len(p.span(isSpace)) > 0
}

// comment consumes a ';' comment, up to but not including the newline.
func (p *parser) comment() bool {
	if p.peek() != ';' {
		return false
	}
	p.span(func(c byte) bool { return c != '\n' })
	return true
}

func (p *parser) newline() bool {
	if p.peek() != '\n' {
		return false
	}
	p.pos++
	return true
}

// skip consumes whitespace, blank lines and comments.
func (p *parser) skip() {
	for {
		p.space0()
		p.comment()
		if !p.newline() {
			return
		}
	}
}

// labelDecl parses an optional 'name:' prefix.
func (p *parser) labelDecl() (tok *Token) {
	start := p.pos
	name := p.span(isAlnum)
	if len(name) == 0 || p.peek() != ':' {
		p.pos = start
		return
	}
	p.pos++

	label := MakeLabelDecl(name)
	tok = &label
	return
}

// directive parses an optional '.name' prefix.
func (p *parser) directive() (tok *Token, err error) {
	if p.peek() != '.' {
		return
	}

	start := p.pos
	p.pos++
	name := p.span(isAlpha)
	if len(name) == 0 || !isBoundary(p.peek()) {
		err = ErrParseDirective(p.word(start))
		p.pos = start
		return
	}

	directive := MakeDirective(name)
	tok = &directive
	return
}

// opcode parses a mnemonic. Unknown mnemonics yield OP_ILLEGAL.
func (p *parser) opcode() (tok Token, err error) {
	start := p.pos
	name := p.span(isAlpha)
	if len(name) == 0 {
		err = ErrOpcodeMissing
		return
	}
	if !isBoundary(p.peek()) {
		err = ErrLineEnd
		return
	}

	tok = MakeOpcode(p.text[start:p.pos])
	return
}

// operand parses a register, number, or label usage.
func (p *parser) operand() (tok Token, err error) {
	start := p.pos
	word := p.word(start)

	defer func() {
		if err == nil && !isBoundary(p.peek()) {
			switch tok.Kind {
			case TOKEN_REGISTER:
				err = ErrParseRegister(word)
			case TOKEN_NUMBER:
				err = ErrParseNumber(word)
			default:
				err = ErrParseOperand(word)
			}
		}
		if err != nil {
			p.pos = start
		}
	}()

	switch p.peek() {
	case '$':
		p.pos++
		var index uint64
		index, err = strconv.ParseUint(p.span(isDigit), 10, 8)
		if err != nil {
			err = ErrParseRegister(word)
			return
		}
		tok = MakeRegister(uint8(index))
	case '#':
		p.pos++
		sign := ""
		if c := p.peek(); c == '+' || c == '-' {
			sign = string(c)
			p.pos++
		}
		var value int64
		value, err = strconv.ParseInt(sign+p.span(isDigit), 10, 32)
		if err != nil {
			err = ErrParseNumber(word)
			return
		}
		tok = MakeNumber(int32(value))
	case '@':
		p.pos++
		name := p.span(isAlnum)
		if len(name) == 0 {
			err = ErrParseOperand(word)
			return
		}
		tok = MakeLabelUsage(name)
	default:
		err = ErrParseOperand(word)
	}

	return
}

// instruction parses a single instruction, including its line ending.
func (p *parser) instruction() (inst Instruction, err error) {
	inst.Label = p.labelDecl()
	if inst.Label != nil {
		p.skip()
	}

	inst.Directive, err = p.directive()
	if err != nil {
		return
	}
	if inst.Directive != nil && !p.space1() {
		err = ErrOpcodeMissing
		return
	}

	inst.LineNo = p.lineNo(p.pos)
	inst.Opcode, err = p.opcode()
	if err != nil {
		return
	}

	for {
		if !p.space1() {
			break
		}
		if c := p.peek(); c == 0 || c == ';' || c == '\n' {
			break
		}
		if len(inst.Operands) == 3 {
			err = ErrOperandTooMany
			return
		}
		var tok Token
		tok, err = p.operand()
		if err != nil {
			return
		}
		inst.Operands = append(inst.Operands, tok)
	}

	p.space0()
	p.comment()
	if !p.eof() && !p.newline() {
		err = ErrLineEnd
		return
	}

	return
}

// lineNo returns the 1-based line number of an offset.
func (p *parser) lineNo(pos int) int {
	return 1 + strings.Count(p.text[:pos], "\n")
}

// syntaxError locates err at the current position.
func (p *parser) syntaxError(err error) error {
	pos := min(p.pos, len(p.text))
	start := strings.LastIndexByte(p.text[:pos], '\n') + 1
	end := strings.IndexByte(p.text[pos:], '\n')
	if end < 0 {
		end = len(p.text)
	} else {
		end += pos
	}

	return &ErrSyntax{
		LineNo: p.lineNo(pos),
		Column: pos - start + 1,
		Line:   strings.TrimRight(p.text[start:end], "\r"),
		Err:    err,
	}
}

// ParseInstruction parses text holding exactly one instruction.
func ParseInstruction(text string) (inst Instruction, err error) {
	p := &parser{text: text}

	p.skip()
	inst, err = p.instruction()
	if err == nil {
		p.skip()
		if !p.eof() {
			err = ErrLineEnd
		}
	}
	if err != nil {
		inst = Instruction{}
		err = p.syntaxError(err)
	}

	return
}

// ParseProgram parses text holding one or more instructions.
func ParseProgram(text string) (prog *Program, err error) {
	p := &parser{text: text}
	prog = &Program{}

	for {
		p.skip()
		if p.eof() {
			break
		}
		var inst Instruction
		inst, err = p.instruction()
		if err != nil {
			prog = nil
			err = p.syntaxError(err)
			return
		}
		prog.Instructions = append(prog.Instructions, inst)
	}

	if len(prog.Instructions) == 0 {
		prog = nil
		err = p.syntaxError(ErrProgramEmpty)
	}

	return
}
