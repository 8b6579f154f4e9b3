// Package ast defines the syntax tree produced by the pattern parser.
//
// The tree is plain data. Nodes are built by the parser and never modified
// once it returns them. Children belong to exactly one parent and nodes carry
// no back-references.
package ast

// Node is implemented by every tree node:
// *Group, *MatchBegin, *MatchEnd, *Alternative, *SingleChar, *PatternChar,
// *Range and *CharClass.
type Node interface {
	node()
}

// Lookahead tells whether a group is a lookahead assertion.
type Lookahead int

const (
	// NoLookahead marks an ordinary group.
	NoLookahead Lookahead = iota
	// PositiveLookahead marks (?=...).
	PositiveLookahead
	// NegativeLookahead marks (?!...).
	NegativeLookahead
)

func (l Lookahead) String() string {
	switch l {
	case PositiveLookahead:
		return "pos"
	case NegativeLookahead:
		return "neg"
	default:
		return ""
	}
}

// PatternKind classifies a PatternChar.
type PatternKind int

const (
	// PatternOther covers \d, \t, . and the other single letter escapes.
	PatternOther PatternKind = iota
	// PatternASCII is a \xhh escape. Pattern holds the two hex digits.
	PatternASCII
	// PatternUnicode is a \uhhhh escape. Pattern holds the four hex digits.
	PatternUnicode
	// PatternPosix is a [:name:] class. Pattern holds the class name.
	PatternPosix
)

func (k PatternKind) String() string {
	switch k {
	case PatternASCII:
		return "ascii"
	case PatternUnicode:
		return "unicode"
	case PatternPosix:
		return "posix"
	default:
		return ""
	}
}

// Group is a parenthesized sub-pattern: (...), (?:...), (?=...), (?!...)
// or (?<name>...). The whole pattern is wrapped in an implicit root Group.
type Group struct {
	Seq        []Node
	Ignored    bool   // non-capturing (?:...)
	Name       string // empty unless (?<name>...)
	Lookahead  Lookahead
	Quantifier Quantifier
}

// MatchBegin is ^.
type MatchBegin struct{}

// MatchEnd is $.
type MatchEnd struct{}

// Alternative is a|b|... Each branch is a sequence of nodes and may be empty.
// An Alternative is never quantified; quantify the enclosing Group instead.
type Alternative struct {
	Branches [][]Node
}

// SingleChar is one literal character.
type SingleChar struct {
	Char       rune
	Quantifier Quantifier
}

// PatternChar is an escaped or named atom such as \d, \t, \x4A, \u1F4A,
// a POSIX class or the dot.
type PatternChar struct {
	Pattern    string
	Kind       PatternKind
	Quantifier Quantifier
}

// Range is begin-end inside a CharClass. Begin and End are *SingleChar or
// *PatternChar.
type Range struct {
	Begin Node
	End   Node
}

// CharClass is [...] or [^...]. Elems holds *SingleChar, *PatternChar and
// *Range values.
type CharClass struct {
	Elems      []Node
	Negate     bool
	Quantifier Quantifier
}

func (*Group) node()       {}
func (*MatchBegin) node()  {}
func (*MatchEnd) node()    {}
func (*Alternative) node() {}
func (*SingleChar) node()  {}
func (*PatternChar) node() {}
func (*Range) node()       {}
func (*CharClass) node()   {}

// NewGroup returns an empty group matched exactly once.
func NewGroup() *Group {
	return &Group{Quantifier: OneTime{}}
}

// NewChar returns a literal character matched exactly once.
func NewChar(r rune) *SingleChar {
	return &SingleChar{Char: r, Quantifier: OneTime{}}
}

// NewPattern returns a pattern character matched exactly once.
func NewPattern(pattern string, kind PatternKind) *PatternChar {
	return &PatternChar{Pattern: pattern, Kind: kind, Quantifier: OneTime{}}
}

// NewCharClass returns an empty, non-negated class matched exactly once.
func NewCharClass() *CharClass {
	return &CharClass{Quantifier: OneTime{}}
}

// QuantifierOf returns the quantifier slot of n. It reports false for nodes
// that cannot be quantified (MatchBegin, MatchEnd, Alternative, Range).
func QuantifierOf(n Node) (*Quantifier, bool) {
	switch n := n.(type) {
	case *Group:
		return &n.Quantifier, true
	case *SingleChar:
		return &n.Quantifier, true
	case *PatternChar:
		return &n.Quantifier, true
	case *CharClass:
		return &n.Quantifier, true
	default:
		return nil, false
	}
}
