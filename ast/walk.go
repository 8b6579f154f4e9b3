package ast

import "fmt"

// Visitor receives one callback per node and quantifier variant.
// Embed NopVisitor to implement only the callbacks you need.
type Visitor interface {
	VisitGroup(*Group)
	VisitMatchBegin(*MatchBegin)
	VisitMatchEnd(*MatchEnd)
	VisitAlternative(*Alternative)
	VisitSingleChar(*SingleChar)
	VisitPatternChar(*PatternChar)
	VisitRange(*Range)
	VisitCharClass(*CharClass)

	VisitOneTime(OneTime)
	VisitNoneOrOnce(NoneOrOnce)
	VisitNoneOrMore(NoneOrMore)
	VisitOneOrMore(OneOrMore)
	VisitBetween(Between)
}

// NopVisitor ignores every callback.
type NopVisitor struct{}

func (NopVisitor) VisitGroup(*Group)             {}
func (NopVisitor) VisitMatchBegin(*MatchBegin)   {}
func (NopVisitor) VisitMatchEnd(*MatchEnd)       {}
func (NopVisitor) VisitAlternative(*Alternative) {}
func (NopVisitor) VisitSingleChar(*SingleChar)   {}
func (NopVisitor) VisitPatternChar(*PatternChar) {}
func (NopVisitor) VisitRange(*Range)             {}
func (NopVisitor) VisitCharClass(*CharClass)     {}
func (NopVisitor) VisitOneTime(OneTime)          {}
func (NopVisitor) VisitNoneOrOnce(NoneOrOnce)    {}
func (NopVisitor) VisitNoneOrMore(NoneOrMore)    {}
func (NopVisitor) VisitOneOrMore(OneOrMore)      {}
func (NopVisitor) VisitBetween(Between)          {}

// Walk traverses n depth-first. Each node is visited before its children.
// When quantify is set, the quantifier of a quantifiable node is visited
// right after the node itself. Range ends and CharClass elements never get
// their quantifiers visited; only the class does.
func Walk(n Node, v Visitor, quantify bool) {
	switch n := n.(type) {
	case *Group:
		v.VisitGroup(n)
		if quantify {
			WalkQuantifier(n.Quantifier, v)
		}
		for _, child := range n.Seq {
			Walk(child, v, quantify)
		}
	case *MatchBegin:
		v.VisitMatchBegin(n)
	case *MatchEnd:
		v.VisitMatchEnd(n)
	case *Alternative:
		v.VisitAlternative(n)
		for _, branch := range n.Branches {
			for _, child := range branch {
				Walk(child, v, quantify)
			}
		}
	case *SingleChar:
		v.VisitSingleChar(n)
		if quantify {
			WalkQuantifier(n.Quantifier, v)
		}
	case *PatternChar:
		v.VisitPatternChar(n)
		if quantify {
			WalkQuantifier(n.Quantifier, v)
		}
	case *Range:
		v.VisitRange(n)
		Walk(n.Begin, v, false)
		Walk(n.End, v, false)
	case *CharClass:
		v.VisitCharClass(n)
		if quantify {
			WalkQuantifier(n.Quantifier, v)
		}
		for _, elem := range n.Elems {
			Walk(elem, v, false)
		}
	default:
		panic(fmt.Sprintf("ast: unknown node type %T", n))
	}
}

// WalkQuantifier dispatches q to the matching Visitor callback.
func WalkQuantifier(q Quantifier, v Visitor) {
	switch q := q.(type) {
	case OneTime:
		v.VisitOneTime(q)
	case NoneOrOnce:
		v.VisitNoneOrOnce(q)
	case NoneOrMore:
		v.VisitNoneOrMore(q)
	case OneOrMore:
		v.VisitOneOrMore(q)
	case Between:
		v.VisitBetween(q)
	default:
		panic(fmt.Sprintf("ast: unknown quantifier type %T", q))
	}
}

type captureCollector struct {
	NopVisitor
	root   *Group
	groups []*Group
}

func (c *captureCollector) VisitGroup(g *Group) {
	if g == c.root || g.Ignored || g.Lookahead != NoLookahead {
		return
	}
	c.groups = append(c.groups, g)
}

// CaptureGroups returns the capturing groups below root in the order their
// opening parenthesis appears. Non-capturing groups and lookaheads are
// skipped; root itself is never included.
func CaptureGroups(root *Group) []*Group {
	c := &captureCollector{root: root}
	Walk(root, c, false)
	return c.groups
}
