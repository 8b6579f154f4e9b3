package compiler

import "github.com/KromDaniel/regast/ast"

// featureVisitor records which constructs a tree uses.
type featureVisitor struct {
	ast.NopVisitor
	root *ast.Group

	alternation  bool
	anchored     bool
	charClass    bool
	hexEscapes   bool
	lookahead    bool
	named        bool
	nonCapturing bool
	nonGreedy    bool
	posix        bool
	quantifiers  bool
	ranges       bool
}

func (f *featureVisitor) VisitGroup(g *ast.Group) {
	if g == f.root {
		return
	}
	if g.Lookahead != ast.NoLookahead {
		f.lookahead = true
	}
	if g.Name != "" {
		f.named = true
	}
	if g.Ignored {
		f.nonCapturing = true
	}
}

func (f *featureVisitor) VisitAlternative(*ast.Alternative) { f.alternation = true }
func (f *featureVisitor) VisitMatchBegin(*ast.MatchBegin)   { f.anchored = true }
func (f *featureVisitor) VisitMatchEnd(*ast.MatchEnd)       { f.anchored = true }
func (f *featureVisitor) VisitCharClass(*ast.CharClass)     { f.charClass = true }
func (f *featureVisitor) VisitRange(*ast.Range)             { f.ranges = true }

func (f *featureVisitor) VisitPatternChar(p *ast.PatternChar) {
	switch p.Kind {
	case ast.PatternASCII, ast.PatternUnicode:
		f.hexEscapes = true
	case ast.PatternPosix:
		f.posix = true
	case ast.PatternOther:
		// \d, \w and \s are classes in disguise
		switch p.Pattern {
		case "d", "D", "s", "S", "w", "W":
			f.charClass = true
		}
	}
}

func (f *featureVisitor) VisitNoneOrOnce(q ast.NoneOrOnce) { f.quantifier(q) }
func (f *featureVisitor) VisitNoneOrMore(q ast.NoneOrMore) { f.quantifier(q) }
func (f *featureVisitor) VisitOneOrMore(q ast.OneOrMore)   { f.quantifier(q) }
func (f *featureVisitor) VisitBetween(q ast.Between)       { f.quantifier(q) }

func (f *featureVisitor) quantifier(q ast.Quantifier) {
	f.quantifiers = true
	if !q.IsGreedy() {
		f.nonGreedy = true
	}
}

type measurement struct {
	atoms  int
	groups int
	depth  int
}

// measure counts atoms and groups below n. Class elements are not atoms of
// their own; the class is.
func measure(n ast.Node, depth int) measurement {
	var m measurement
	add := func(seq []ast.Node, depth int) {
		for _, child := range seq {
			c := measure(child, depth)
			m.atoms += c.atoms
			m.groups += c.groups
			m.depth = max(m.depth, c.depth)
		}
	}

	switch n := n.(type) {
	case *ast.Group:
		m.groups = 1
		m.depth = depth
		add(n.Seq, depth+1)
	case *ast.Alternative:
		for _, b := range n.Branches {
			add(b, depth)
		}
	case *ast.SingleChar, *ast.PatternChar, *ast.CharClass:
		m.atoms = 1
	}
	return m
}
