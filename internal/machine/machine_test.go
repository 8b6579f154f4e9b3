package machine

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

var errBadRune = errors.New("bad rune")

// parenState accepts balanced parentheses: the start state is depth zero.
type parenState struct {
	depth  int
	parent *parenState
}

func (s *parenState) Next(_ *Machine, r rune) (State, error) {
	switch r {
	case '(':
		return &parenState{depth: s.depth + 1, parent: s}, nil
	case ')':
		if s.parent == nil {
			return nil, fmt.Errorf("%w: unmatched %q", errBadRune, r)
		}
		return s.parent, nil
	case 'x':
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", errBadRune, r)
	}
}

func (s *parenState) String() string { return fmt.Sprintf("depth %d", s.depth) }

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantPos int
	}{
		{name: "empty", input: ""},
		{name: "flat", input: "xxx"},
		{name: "nested", input: "(x(x)x)x"},
		{name: "unclosed", input: "((x)", wantErr: ErrUnexpectedEnd, wantPos: 5},
		{name: "unmatched", input: "x)", wantErr: errBadRune, wantPos: 2},
		{name: "unknown rune", input: "(xy)", wantErr: errBadRune, wantPos: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(NewCursor(tt.input), &parenState{})
			err := m.Run()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Run() error = %v", err)
				}
				if !m.CanEnd() {
					t.Error("CanEnd() = false after successful run")
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("Run() error type = %T, want *Error", err)
			}
			if perr.Pos != tt.wantPos {
				t.Errorf("Error.Pos = %d, want %d", perr.Pos, tt.wantPos)
			}
			if !strings.HasPrefix(err.Error(), fmt.Sprintf("error at pos %d: ", tt.wantPos)) {
				t.Errorf("Error() = %q", err.Error())
			}
		})
	}
}

func TestRunHooks(t *testing.T) {
	var trace []string
	m := New(NewCursor("(x)"), &parenState{})
	m.Before = func(m *Machine) {
		trace = append(trace, fmt.Sprintf("before %d %c %s", m.Pos(), m.Char(), m.State()))
	}
	m.After = func(m *Machine) {
		if m.Done() {
			trace = append(trace, fmt.Sprintf("done %d %s", m.Pos(), m.State()))
		}
	}

	if err := m.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{
		"before 1 ( depth 0",
		"before 2 x depth 1",
		"before 3 ) depth 1",
		"done 4 depth 0",
	}
	if strings.Join(trace, "\n") != strings.Join(want, "\n") {
		t.Errorf("trace =\n%s\nwant\n%s", strings.Join(trace, "\n"), strings.Join(want, "\n"))
	}
}

type nilState struct{}

func (nilState) Next(*Machine, rune) (State, error) { return nil, nil }

func TestRunNilStatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Run() did not panic on a nil next state")
		}
	}()
	New(NewCursor("a"), nilState{}).Run()
}

func TestErrorUnwrap(t *testing.T) {
	err := newError(7, fmt.Errorf("%w: detail", errBadRune))
	if err.Error() != "error at pos 7: bad rune: detail" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, errBadRune) {
		t.Error("errors.Is() = false for the wrapped kind")
	}
}
