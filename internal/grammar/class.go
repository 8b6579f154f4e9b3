package grammar

import (
	"fmt"

	"github.com/KromDaniel/regast/ast"
	"github.com/KromDaniel/regast/internal/machine"
)

// POSIX class names recognized in [:name:].
var posixClasses = map[string]bool{
	"alnum": true, "alpha": true, "blank": true, "cntrl": true,
	"digit": true, "graph": true, "lower": true, "print": true,
	"punct": true, "space": true, "upper": true, "xdigit": true,
	"d": true, "w": true, "s": true,
}

// classState reads the elements of [...] up to its "]".
type classState struct {
	p      *parser
	class  *ast.CharClass
	nested bool

	escaped bool // an escape disqualifies [:name:] recognition
	dash    bool // a "-" is waiting for the end of a range
}

func (s *classState) Next(m *machine.Machine, r rune) (machine.State, error) {
	if s.dash {
		return s.rangeEnd(m, r)
	}

	switch r {
	case ']':
		return s.close(m)
	case '^':
		if len(s.class.Elems) == 0 && !s.class.Negate {
			s.class.Negate = true
		} else {
			s.append(ast.NewChar(r))
		}
	case '-':
		if s.canStartRange() {
			s.dash = true
		} else {
			s.append(ast.NewChar(r))
		}
	case '[':
		return s.p.push(&bracketState{p: s.p, class: s}), nil
	case '\\':
		s.escaped = true
		return s.p.push(&escapeState{p: s.p, inClass: true}), nil
	default:
		s.append(ast.NewChar(r))
	}
	return s, nil
}

// rangeEnd handles the rune right after a range "-".
func (s *classState) rangeEnd(m *machine.Machine, r rune) (machine.State, error) {
	switch r {
	case ']':
		s.dash = false
		s.append(ast.NewChar('-'))
		return s.close(m)
	case '[':
		return s.p.push(&bracketState{p: s.p, class: s, afterDash: true}), nil
	case '\\':
		s.escaped = true
		return s.p.push(&escapeState{p: s.p, inClass: true}), nil
	default:
		if err := s.receive(ast.NewChar(r)); err != nil {
			return nil, err
		}
		return s, nil
	}
}

func (s *classState) canStartRange() bool {
	if len(s.class.Elems) == 0 {
		return false
	}
	switch s.class.Elems[len(s.class.Elems)-1].(type) {
	case *ast.SingleChar, *ast.PatternChar:
		return true
	default:
		return false
	}
}

func (s *classState) append(n ast.Node) {
	s.class.Elems = append(s.class.Elems, n)
}

// receive takes a finished escape, a literal "[" or a POSIX class. While a
// range is pending, n becomes its end and replaces the range start in place.
func (s *classState) receive(n ast.Node) error {
	if s.dash {
		s.dash = false
		last := len(s.class.Elems) - 1
		s.class.Elems[last] = &ast.Range{Begin: s.class.Elems[last], End: n}
		return nil
	}
	s.append(n)
	return nil
}

// close handles the "]" of the class. A nested class that does not name a
// POSIX class was never a class: its "[" and content become literal
// elements of the enclosing class, and the "]" closes that one instead.
func (s *classState) close(m *machine.Machine) (machine.State, error) {
	closed := closeCharClass(s.class, s.escaped)
	if !s.nested {
		return s.p.deliver(closed)
	}
	if _, ok := closed.(*ast.PatternChar); ok {
		return s.p.deliver(closed)
	}

	parent := s.p.pop().(*classState)
	parent.append(ast.NewChar('['))
	parent.class.Elems = append(parent.class.Elems, s.class.Elems...)
	parent.escaped = parent.escaped || s.escaped
	return parent.Next(m, ']')
}

func (s *classState) String() string {
	if s.nested {
		return "nested character class"
	}
	return "character class"
}

// bracketState follows a "[" inside a class. Only "[:" opens a nested
// class; any other "[" is a literal character.
type bracketState struct {
	p         *parser
	class     *classState
	afterDash bool
}

func (s *bracketState) Next(m *machine.Machine, r rune) (machine.State, error) {
	if r == ':' {
		if s.afterDash {
			return nil, fmt.Errorf("%w: a range cannot end with a class", ErrMalformedClass)
		}
		nested := &classState{p: s.p, class: ast.NewCharClass(), nested: true}
		nested.append(ast.NewChar(':'))
		return s.p.swap(nested), nil
	}

	s.p.pop()
	if err := s.class.receive(ast.NewChar('[')); err != nil {
		return nil, err
	}
	return s.class.Next(m, r)
}

func (s *bracketState) String() string { return "bracket in character class" }

// closeCharClass decides what a class turns into once its "]" is read.
// A class made of exactly ":", a known POSIX name and ":" becomes a POSIX
// PatternChar, unless it was negated or contained an escape. Any other
// class is returned unchanged.
func closeCharClass(class *ast.CharClass, escaped bool) ast.Node {
	if name, ok := posixName(class, escaped); ok {
		return ast.NewPattern(name, ast.PatternPosix)
	}
	return class
}

func posixName(class *ast.CharClass, escaped bool) (string, bool) {
	elems := class.Elems
	if escaped || class.Negate || len(elems) < 3 {
		return "", false
	}
	if !isChar(elems[0], ':') || !isChar(elems[len(elems)-1], ':') {
		return "", false
	}

	name := make([]rune, 0, len(elems)-2)
	for _, e := range elems[1 : len(elems)-1] {
		c, ok := e.(*ast.SingleChar)
		if !ok || !isLetter(c.Char) {
			return "", false
		}
		name = append(name, c.Char)
	}
	if !posixClasses[string(name)] {
		return "", false
	}
	return string(name), true
}

func isChar(n ast.Node, r rune) bool {
	c, ok := n.(*ast.SingleChar)
	return ok && c.Char == r
}
