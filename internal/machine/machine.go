// Package machine implements a rune-at-a-time state machine driver.
//
// The driver knows nothing about the grammar it runs. It feeds the current
// rune to the current State, installs whatever State comes back and stops
// at the first error. Input is accepted only if the machine ends up in the
// very state it started with.
package machine

// State is one state of a grammar.
type State interface {
	// Next consumes r and returns the state that handles the following rune.
	Next(m *Machine, r rune) (State, error)
}

// Hook observes the machine around a transition. Hooks must not change
// the machine; they only see its read-only accessors.
type Hook func(m *Machine)

// Machine drives a State over a Cursor.
type Machine struct {
	src   *Cursor
	start State
	state State

	// Before runs before each transition when set.
	Before Hook
	// After runs after each transition, once the cursor has moved.
	After Hook
}

// New returns a machine that starts (and must end) in start.
func New(src *Cursor, start State) *Machine {
	return &Machine{src: src, start: start, state: start}
}

// Char returns the rune about to be consumed, or 0 at the end of input.
func (m *Machine) Char() rune {
	r, _ := m.src.Current()
	return r
}

// Pos returns the 1-based position of Char.
func (m *Machine) Pos() int {
	return m.src.Position()
}

// Done reports whether the input is exhausted.
func (m *Machine) Done() bool {
	return m.src.Done()
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// CanEnd reports whether the machine is back in its start state.
func (m *Machine) CanEnd() bool {
	return m.state == m.start
}

// Run consumes the whole input. It fails fast: the first error stops the
// machine and no partial result is kept.
func (m *Machine) Run() error {
	for !m.src.Done() {
		if m.Before != nil {
			m.Before(m)
		}

		r, _ := m.src.Current()
		next, err := m.state.Next(m, r)
		if err != nil {
			return newError(m.src.Position(), err)
		}
		if next == nil {
			panic("machine: internal error: cannot find next state")
		}
		m.state = next
		m.src.Advance()

		if m.After != nil {
			m.After(m)
		}
	}

	if !m.CanEnd() {
		return newError(m.src.Position(), ErrUnexpectedEnd)
	}
	return nil
}
