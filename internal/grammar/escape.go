package grammar

import (
	"fmt"

	"github.com/KromDaniel/regast/ast"
	"github.com/KromDaniel/regast/internal/machine"
)

// Escapes that stand for one character (\t) or a set (\d).
var patternEscapes = map[rune]bool{
	't': true, 'n': true, 'v': true, 'f': true, 'r': true, '0': true,
	'd': true, 'D': true, 's': true, 'S': true, 'w': true, 'W': true,
}

// Characters an escape turns into themselves outside a class.
var literalEscapes = map[rune]bool{
	'^': true, '$': true, '\\': true, '.': true, '*': true, '+': true, '?': true,
	'(': true, ')': true, '[': true, ']': true, '{': true, '}': true, '|': true,
}

// Inside a class only these can be escaped to themselves. "\^" keeps a
// leading caret from negating the class.
var classLiteralEscapes = map[rune]bool{
	'\\': true, '[': true, ']': true, '^': true,
}

// escapeState follows a backslash.
type escapeState struct {
	p       *parser
	inClass bool
}

func (s *escapeState) Next(_ *machine.Machine, r rune) (machine.State, error) {
	switch {
	case patternEscapes[r]:
		return s.p.deliver(ast.NewPattern(string(r), ast.PatternOther))
	case r == 'x':
		return s.p.swap(&hexState{p: s.p, want: 2, kind: ast.PatternASCII}), nil
	case r == 'u':
		return s.p.swap(&hexState{p: s.p, want: 4, kind: ast.PatternUnicode}), nil
	case s.inClass && classLiteralEscapes[r]:
		return s.p.deliver(ast.NewChar(r))
	case !s.inClass && literalEscapes[r]:
		return s.p.deliver(ast.NewChar(r))
	default:
		return nil, fmt.Errorf("%w: unauthorized escape \\%c", ErrInvalidEscape, r)
	}
}

func (s *escapeState) String() string {
	if s.inClass {
		return "escape in class"
	}
	return "escape"
}

// hexState reads the digits of \xhh and \uhhhh.
type hexState struct {
	p      *parser
	want   int
	kind   ast.PatternKind
	digits []rune
}

func (s *hexState) Next(_ *machine.Machine, r rune) (machine.State, error) {
	if !isHexDigit(r) {
		return nil, fmt.Errorf("%w: expected hex digit, got %q", ErrInvalidEscape, r)
	}
	s.digits = append(s.digits, r)
	if len(s.digits) < s.want {
		return s, nil
	}
	return s.p.deliver(ast.NewPattern(string(s.digits), s.kind))
}

func (s *hexState) String() string {
	if s.kind == ast.PatternUnicode {
		return "unicode escape"
	}
	return "ascii escape"
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
