// Package regast parses patterns into a syntax tree.
//
// The pattern language covers literal characters, escapes (\t, \d, \x4A,
// \u1F4A, ...), character classes with ranges and POSIX names ([:digit:]),
// groups (capturing, non-capturing, named, lookahead), alternation and the
// quantifiers ?, *, +, {m,n} with their non-greedy forms.
package regast

import (
	"fmt"
	"io"

	"github.com/KromDaniel/regast/ast"
	"github.com/KromDaniel/regast/internal/compiler"
	"github.com/KromDaniel/regast/internal/grammar"
	"github.com/KromDaniel/regast/internal/machine"
)

// ParseError reports where and why a pattern was rejected. Use errors.Is
// with the Err* kinds below to tell failures apart.
type ParseError = machine.Error

// Error kinds carried by ParseError.
var (
	ErrUnbalancedGroup      = grammar.ErrUnbalancedGroup
	ErrUnexpectedEnd        = machine.ErrUnexpectedEnd
	ErrInvalidEscape        = grammar.ErrInvalidEscape
	ErrInvalidQuantifier    = grammar.ErrInvalidQuantifier
	ErrMalformedGroupOption = grammar.ErrMalformedGroupOption
	ErrMalformedGroupName   = grammar.ErrMalformedGroupName
	ErrMalformedRepetition  = grammar.ErrMalformedRepetition
	ErrMalformedClass       = grammar.ErrMalformedClass
)

// Step is a snapshot of the parser around one transition.
type Step struct {
	Pos   int    // 1-based position of Char
	Char  rune   // rune about to be read, 0 once the input is exhausted
	State string // name of the current grammar state
	Done  bool   // input exhausted
}

// ParseOptions instruments a parse. The zero value parses silently.
type ParseOptions struct {
	// Before is called before each rune is consumed.
	Before func(Step)

	// After is called after each rune is consumed.
	After func(Step)

	// Trace, when set, receives one log line per transition.
	Trace io.Writer
}

// Parse parses pattern and returns its root group. On failure the error is
// a *ParseError.
func Parse(pattern string) (*ast.Group, error) {
	return ParseWithOptions(pattern, ParseOptions{})
}

// MustParse is like Parse but panics on error.
func MustParse(pattern string) *ast.Group {
	g, err := Parse(pattern)
	if err != nil {
		panic(fmt.Sprintf("regast: Parse(%q): %v", pattern, err))
	}
	return g
}

// ParseWithOptions is Parse with instrumentation hooks.
func ParseWithOptions(pattern string, opts ParseOptions) (*ast.Group, error) {
	root := grammar.NewRoot()
	m := machine.New(machine.NewCursor(pattern), root.State())

	before, after := opts.Before, opts.After
	if opts.Trace != nil {
		logger := compiler.NewLogger(true)
		logger.SetOutput(opts.Trace)
		logger.Section("Parse " + pattern)
		before = chain(before, func(s Step) {
			logger.Transition(s.Pos, s.Char, s.State)
		})
		after = chain(after, func(s Step) {
			if s.Done {
				logger.Transition(s.Pos, 0, s.State)
			}
		})
	}
	if before != nil {
		m.Before = func(m *machine.Machine) { before(snapshot(m)) }
	}
	if after != nil {
		m.After = func(m *machine.Machine) { after(snapshot(m)) }
	}

	if err := m.Run(); err != nil {
		return nil, err
	}
	return root.Group(), nil
}

func snapshot(m *machine.Machine) Step {
	return Step{
		Pos:   m.Pos(),
		Char:  m.Char(),
		State: fmt.Sprint(m.State()),
		Done:  m.Done(),
	}
}

func chain(first, second func(Step)) func(Step) {
	if first == nil {
		return second
	}
	return func(s Step) {
		first(s)
		second(s)
	}
}
