// Package grammar holds the states of the pattern grammar.
//
// Active states live on an explicit stack owned by one parse. The innermost
// construct is on top. A state that completes pops itself and hands its
// result to the state below through the receiver or repeater interfaces, so
// states never point at each other.
package grammar

import (
	"fmt"

	"github.com/KromDaniel/regast/ast"
	"github.com/KromDaniel/regast/internal/machine"
)

// receiver accepts a finished atom from a state that just popped.
type receiver interface {
	receive(n ast.Node) error
}

// repeater accepts a finished repetition count.
type repeater interface {
	repeat(q ast.Quantifier) error
}

type parser struct {
	stack []machine.State
}

func (p *parser) push(s machine.State) machine.State {
	p.stack = append(p.stack, s)
	return s
}

// swap replaces the top of the stack.
func (p *parser) swap(s machine.State) machine.State {
	p.stack[len(p.stack)-1] = s
	return s
}

// pop removes the top of the stack and returns the new top.
func (p *parser) pop() machine.State {
	if len(p.stack) < 2 {
		panic("grammar: internal error: pop on root state")
	}
	p.stack = p.stack[:len(p.stack)-1]
	return p.stack[len(p.stack)-1]
}

// deliver pops the current state and passes n to the enclosing one.
func (p *parser) deliver(n ast.Node) (machine.State, error) {
	top := p.pop()
	r, ok := top.(receiver)
	if !ok {
		panic(fmt.Sprintf("grammar: internal error: %s cannot receive %T", top, n))
	}
	if err := r.receive(n); err != nil {
		return nil, err
	}
	return top, nil
}

// Root is the implicit top-level group. It is the start state of a parse
// and the only state a complete pattern can end in.
type Root struct {
	content *contentState
}

// NewRoot prepares a fresh parse. Parses never share state.
func NewRoot() *Root {
	p := &parser{}
	root := &contentState{p: p, group: ast.NewGroup(), root: true}
	p.push(root)
	return &Root{content: root}
}

// State returns the start state to hand to the machine.
func (r *Root) State() machine.State {
	return r.content
}

// Group returns the top-level group. It is complete once the machine has
// accepted the input.
func (r *Root) Group() *ast.Group {
	return r.content.group
}

// Depth returns the number of open constructs, the root included.
func (r *Root) Depth() int {
	return len(r.content.p.stack)
}
