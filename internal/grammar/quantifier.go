package grammar

import (
	"fmt"
	"strconv"

	"github.com/KromDaniel/regast/ast"
	"github.com/KromDaniel/regast/internal/machine"
)

// quantState tracks what happened after the last atom of a sequence.
type quantState int

const (
	notQuantified quantState = iota
	quantified
	quantifiedUngreedy
)

// canQuantify checks that a quantifier may follow the current sequence.
func canQuantify(st quantState, seq []ast.Node) error {
	if st != notQuantified {
		return fmt.Errorf("%w: quantifier repeated", ErrInvalidQuantifier)
	}
	if len(seq) == 0 {
		return fmt.Errorf("%w: nothing to repeat", ErrInvalidQuantifier)
	}
	if _, ok := ast.QuantifierOf(seq[len(seq)-1]); !ok {
		return fmt.Errorf("%w: nothing to repeat", ErrInvalidQuantifier)
	}
	return nil
}

// quantify handles ?, * and + after the last atom of seq and returns the
// new state. A "?" right after a quantifier makes it non-greedy.
func quantify(st quantState, seq []ast.Node, r rune) (quantState, error) {
	if st == quantified && r == '?' {
		slot := lastQuantifier(seq)
		*slot = ungreedy(*slot)
		return quantifiedUngreedy, nil
	}

	var q ast.Quantifier
	switch r {
	case '?':
		q = ast.NoneOrOnce{Greedy: true}
	case '*':
		q = ast.NoneOrMore{Greedy: true}
	case '+':
		q = ast.OneOrMore{Greedy: true}
	default:
		panic(fmt.Sprintf("grammar: internal error: %q is not a quantifier", r))
	}
	return applyQuantifier(st, seq, q)
}

// applyQuantifier attaches q to the last atom of seq.
func applyQuantifier(st quantState, seq []ast.Node, q ast.Quantifier) (quantState, error) {
	if err := canQuantify(st, seq); err != nil {
		return st, err
	}
	*lastQuantifier(seq) = q
	return quantified, nil
}

func lastQuantifier(seq []ast.Node) *ast.Quantifier {
	if len(seq) == 0 {
		panic("grammar: internal error: no atom to quantify")
	}
	slot, ok := ast.QuantifierOf(seq[len(seq)-1])
	if !ok {
		panic(fmt.Sprintf("grammar: internal error: %T cannot be quantified", seq[len(seq)-1]))
	}
	return slot
}

func ungreedy(q ast.Quantifier) ast.Quantifier {
	switch q := q.(type) {
	case ast.NoneOrOnce:
		q.Greedy = false
		return q
	case ast.NoneOrMore:
		q.Greedy = false
		return q
	case ast.OneOrMore:
		q.Greedy = false
		return q
	case ast.Between:
		q.Greedy = false
		return q
	default:
		panic(fmt.Sprintf("grammar: internal error: %T cannot be made ungreedy", q))
	}
}

// repeatState reads the "m,n}" part of a {m,n} quantifier.
type repeatState struct {
	p        *parser
	min, max []rune
	comma    bool
}

func (s *repeatState) Next(_ *machine.Machine, r rune) (machine.State, error) {
	switch {
	case r >= '0' && r <= '9':
		if s.comma {
			s.max = append(s.max, r)
		} else {
			s.min = append(s.min, r)
		}
		return s, nil
	case r == ',' && !s.comma:
		s.comma = true
		return s, nil
	case r == '}':
		q, err := s.between()
		if err != nil {
			return nil, err
		}
		top := s.p.pop()
		rep, ok := top.(repeater)
		if !ok {
			panic(fmt.Sprintf("grammar: internal error: %s cannot take a repetition", top))
		}
		if err := rep.repeat(q); err != nil {
			return nil, err
		}
		return top, nil
	default:
		return nil, fmt.Errorf("%w: unexpected %q", ErrMalformedRepetition, r)
	}
}

func (s *repeatState) between() (ast.Between, error) {
	if len(s.min) == 0 && len(s.max) == 0 {
		return ast.Between{}, fmt.Errorf("%w: no bounds", ErrMalformedRepetition)
	}
	lo, err := bound(s.min)
	if err != nil {
		return ast.Between{}, err
	}
	hi := lo
	if s.comma {
		if hi, err = bound(s.max); err != nil {
			return ast.Between{}, err
		}
	}
	if lo != ast.Unbounded && hi != ast.Unbounded && lo > hi {
		return ast.Between{}, fmt.Errorf("%w: %d is greater than %d", ErrMalformedRepetition, lo, hi)
	}
	return ast.Between{Min: lo, Max: hi, Greedy: true}, nil
}

func bound(digits []rune) (int, error) {
	if len(digits) == 0 {
		return ast.Unbounded, nil
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedRepetition, err)
	}
	return n, nil
}

func (s *repeatState) String() string { return "repetition count" }
