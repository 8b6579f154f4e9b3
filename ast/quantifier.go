package ast

// Unbounded marks an omitted bound of Between.
const Unbounded = -1

// Quantifier is a repetition specifier: OneTime, NoneOrOnce, NoneOrMore,
// OneOrMore or Between.
type Quantifier interface {
	// IsGreedy reports whether the quantifier prefers the longest match.
	IsGreedy() bool
	quantifier()
}

// OneTime is the implicit quantifier of an atom written without one.
type OneTime struct{}

// NoneOrOnce is ?.
type NoneOrOnce struct {
	Greedy bool
}

// NoneOrMore is *.
type NoneOrMore struct {
	Greedy bool
}

// OneOrMore is +.
type OneOrMore struct {
	Greedy bool
}

// Between is {min,max}. Either bound may be Unbounded.
type Between struct {
	Min    int
	Max    int
	Greedy bool
}

func (OneTime) IsGreedy() bool      { return true }
func (q NoneOrOnce) IsGreedy() bool { return q.Greedy }
func (q NoneOrMore) IsGreedy() bool { return q.Greedy }
func (q OneOrMore) IsGreedy() bool  { return q.Greedy }
func (q Between) IsGreedy() bool    { return q.Greedy }

func (OneTime) quantifier()    {}
func (NoneOrOnce) quantifier() {}
func (NoneOrMore) quantifier() {}
func (OneOrMore) quantifier()  {}
func (Between) quantifier()    {}
