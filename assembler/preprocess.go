package assembler

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
)

// evaluate computes a compile-time $(...) expression.
func (asm *Assembler) evaluate(expr string, lineno int) (value int64, err error) {
	thread := starlark.Thread{Name: "assembler"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"LINENO": starlark.MakeInt(lineno),
	}
	for key, str := range asm.predefine {
		number, _err := strconv.ParseInt(str, 0, 64)
		if _err != nil {
			// Non-integer predefines are not visible to expressions.
			continue
		}
		pred[key] = starlark.MakeInt64(number)
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", "rc="+expr+"\n", pred)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrParseExpression(expr), err)
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// character converts a 'c' literal to its decimal value.
func character(word string) (string, bool) {
	str := word[1 : len(word)-1]
	if str[0] == '\\' {
		switch str[1:] {
		case "\\":
			str = "\\"
		case "n":
			str = "\n"
		case "r":
			str = "\r"
		case "t":
			str = "\t"
		case "e":
			str = "\033"
		default:
			return word, false
		}
	} else if len(str) != 1 {
		return word, false
	}
	return strconv.Itoa(int(str[0])), true
}

// preprocess expands character literals and $(...) expressions in the
// source text, line by line. Expressions in comments are not evaluated.
func (asm *Assembler) preprocess(text string) (out string, err error) {
	lines := strings.Split(text, "\n")

	for n, line := range lines {
		line = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
			value, _ := character(word)
			return value
		})

		code, comment, found := strings.Cut(line, ";")

		code = reExpression.ReplaceAllStringFunc(code, func(str string) string {
			if err != nil {
				return str
			}
			value, _err := asm.evaluate(str[2:len(str)-1], n+1)
			if _err != nil {
				err = &ErrSyntax{LineNo: n + 1, Column: strings.Index(line, str) + 1, Line: line, Err: _err}
				return str
			}
			return strconv.FormatInt(value, 10)
		})
		if err != nil {
			return
		}

		if found {
			code += ";" + comment
		}
		lines[n] = code
	}

	out = strings.Join(lines, "\n")
	return
}
