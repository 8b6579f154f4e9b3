package grammar

import (
	"fmt"

	"github.com/KromDaniel/regast/ast"
	"github.com/KromDaniel/regast/internal/machine"
)

// openingState follows "(". A "?" introduces group options; anything else
// is the first rune of the content.
type openingState struct {
	p     *parser
	group *ast.Group
}

func (s *openingState) Next(m *machine.Machine, r rune) (machine.State, error) {
	if r == '?' {
		return s.p.swap(&optionState{p: s.p, group: s.group}), nil
	}
	content := &contentState{p: s.p, group: s.group}
	s.p.swap(content)
	return content.Next(m, r)
}

func (s *openingState) String() string { return "opening of group" }

// optionState follows "(?".
type optionState struct {
	p     *parser
	group *ast.Group
}

func (s *optionState) Next(_ *machine.Machine, r rune) (machine.State, error) {
	switch r {
	case ':':
		s.group.Ignored = true
	case '=':
		s.group.Lookahead = ast.PositiveLookahead
	case '!':
		s.group.Lookahead = ast.NegativeLookahead
	case '<':
		return s.p.swap(&nameState{p: s.p, group: s.group}), nil
	default:
		return nil, fmt.Errorf("%w: unexpected %q after \"(?\"", ErrMalformedGroupOption, r)
	}
	return s.p.swap(&contentState{p: s.p, group: s.group}), nil
}

func (s *optionState) String() string { return "first option of group" }

// nameState reads the label of (?<name>...).
type nameState struct {
	p     *parser
	group *ast.Group
	name  []rune
}

func (s *nameState) Next(_ *machine.Machine, r rune) (machine.State, error) {
	switch {
	case r == '>':
		if len(s.name) == 0 {
			return nil, fmt.Errorf("%w: empty name", ErrMalformedGroupName)
		}
		s.group.Name = string(s.name)
		return s.p.swap(&contentState{p: s.p, group: s.group}), nil
	case isNameRune(r):
		s.name = append(s.name, r)
		return s, nil
	default:
		return nil, fmt.Errorf("%w: invalid character %q", ErrMalformedGroupName, r)
	}
}

func (s *nameState) String() string { return "name of group" }

func isNameRune(r rune) bool {
	return r == '_' || isLetter(r)
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// contentState reads the body of a group up to its ")". The root instance
// reads the whole pattern and is never closed.
type contentState struct {
	p     *parser
	group *ast.Group
	root  bool

	alt   *ast.Alternative // set once a "|" was seen
	quant quantState
}

// seq returns the sequence new atoms go to: the group itself, or the last
// branch of its alternative.
func (s *contentState) seq() *[]ast.Node {
	if s.alt == nil {
		return &s.group.Seq
	}
	return &s.alt.Branches[len(s.alt.Branches)-1]
}

func (s *contentState) add(n ast.Node) {
	seq := s.seq()
	*seq = append(*seq, n)
	s.quant = notQuantified
}

func (s *contentState) receive(n ast.Node) error {
	s.add(n)
	return nil
}

func (s *contentState) repeat(q ast.Quantifier) error {
	st, err := applyQuantifier(s.quant, *s.seq(), q)
	if err != nil {
		return err
	}
	s.quant = st
	return nil
}

func (s *contentState) Next(_ *machine.Machine, r rune) (machine.State, error) {
	switch r {
	case '(':
		return s.p.push(&openingState{p: s.p, group: ast.NewGroup()}), nil
	case ')':
		if s.root {
			return nil, fmt.Errorf("%w: \")\" without \"(\"", ErrUnbalancedGroup)
		}
		return s.p.deliver(s.group)
	case '|':
		s.alternate()
	case '[':
		return s.p.push(&classState{p: s.p, class: ast.NewCharClass()}), nil
	case '\\':
		return s.p.push(&escapeState{p: s.p}), nil
	case '^':
		s.add(&ast.MatchBegin{})
	case '$':
		s.add(&ast.MatchEnd{})
	case '.':
		s.add(ast.NewPattern(".", ast.PatternOther))
	case '?', '*', '+':
		st, err := quantify(s.quant, *s.seq(), r)
		if err != nil {
			return nil, err
		}
		s.quant = st
	case '{':
		if err := canQuantify(s.quant, *s.seq()); err != nil {
			return nil, err
		}
		return s.p.push(&repeatState{p: s.p}), nil
	default:
		s.add(ast.NewChar(r))
	}
	return s, nil
}

// alternate opens a new branch. The first "|" moves everything read so far
// into branch 0 of a fresh Alternative; later ones extend that same
// Alternative.
func (s *contentState) alternate() {
	if s.alt == nil {
		s.alt = &ast.Alternative{Branches: [][]ast.Node{s.group.Seq, nil}}
		s.group.Seq = []ast.Node{s.alt}
	} else {
		s.alt.Branches = append(s.alt.Branches, nil)
	}
	s.quant = notQuantified
}

func (s *contentState) String() string {
	if s.root {
		return "content of root"
	}
	return "content of group"
}
