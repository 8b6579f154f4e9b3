package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/KromDaniel/regast/ast"
)

// printTree writes one line per node, children indented under their parent.
func printTree(w io.Writer, root *ast.Group) {
	writeNode(w, root, 0)
}

func indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat("|  ", depth-1) + "|-- "
}

func writeNode(w io.Writer, n ast.Node, depth int) {
	prefix := indent(depth)
	switch n := n.(type) {
	case *ast.Group:
		label := "group"
		if depth == 0 {
			label = "root"
		}
		fmt.Fprintf(w, "%s%s%s%s\n", prefix, label, groupOptions(n), quantifierSuffix(n.Quantifier))
		for _, child := range n.Seq {
			writeNode(w, child, depth+1)
		}
	case *ast.MatchBegin:
		fmt.Fprintf(w, "%s^begin\n", prefix)
	case *ast.MatchEnd:
		fmt.Fprintf(w, "%send$\n", prefix)
	case *ast.Alternative:
		fmt.Fprintf(w, "%salt\n", prefix)
		for i, branch := range n.Branches {
			fmt.Fprintf(w, "%sbranch %d\n", indent(depth+1), i+1)
			for _, child := range branch {
				writeNode(w, child, depth+2)
			}
		}
	case *ast.SingleChar, *ast.PatternChar, *ast.Range:
		fmt.Fprintf(w, "%s%s%s\n", prefix, atomLabel(n), atomSuffix(n))
	case *ast.CharClass:
		negated := ""
		if n.Negate {
			negated = " negated"
		}
		fmt.Fprintf(w, "%sclass%s%s\n", prefix, negated, quantifierSuffix(n.Quantifier))
		for _, elem := range n.Elems {
			writeNode(w, elem, depth+1)
		}
	}
}

func groupOptions(g *ast.Group) string {
	var b strings.Builder
	if g.Name != "" {
		fmt.Fprintf(&b, " %q", g.Name)
	}
	if g.Ignored {
		b.WriteString(" (ignored)")
	}
	if g.Lookahead != ast.NoLookahead {
		b.WriteString(" lookahead:" + g.Lookahead.String())
	}
	return b.String()
}

func atomLabel(n ast.Node) string {
	switch n := n.(type) {
	case *ast.SingleChar:
		return fmt.Sprintf("char: %c", n.Char)
	case *ast.PatternChar:
		if n.Kind == ast.PatternOther {
			return "pattern: " + n.Pattern
		}
		return fmt.Sprintf("pattern: [%s] %s", n.Kind, n.Pattern)
	case *ast.Range:
		return fmt.Sprintf("range: %s to %s", atomLabel(n.Begin), atomLabel(n.End))
	default:
		return fmt.Sprintf("%T", n)
	}
}

func atomSuffix(n ast.Node) string {
	if q, ok := ast.QuantifierOf(n); ok {
		return quantifierSuffix(*q)
	}
	return ""
}

func quantifierSuffix(q ast.Quantifier) string {
	text := describeQuantifier(q)
	if text == "" {
		return ""
	}
	return "  [" + text + "]"
}

func describeQuantifier(q ast.Quantifier) string {
	var text string
	switch q := q.(type) {
	case nil, ast.OneTime:
		return ""
	case ast.NoneOrOnce:
		text = "0 or 1 time"
	case ast.NoneOrMore:
		text = "0 or more"
	case ast.OneOrMore:
		text = "1 or more"
	case ast.Between:
		switch {
		case q.Min == ast.Unbounded:
			text = fmt.Sprintf("up to %d times", q.Max)
		case q.Max == ast.Unbounded:
			text = fmt.Sprintf("at least %d times", q.Min)
		case q.Min == q.Max:
			text = fmt.Sprintf("exactly %d times", q.Min)
		default:
			text = fmt.Sprintf("between %d and %d", q.Min, q.Max)
		}
	}
	if !q.IsGreedy() {
		text += ", not greedy"
	}
	return text
}

// debugVisitor prints every callback it receives.
type debugVisitor struct {
	w io.Writer
}

func (v debugVisitor) visit(kind string, x any) {
	fmt.Fprintf(v.w, "Visit %s: %+v\n", kind, x)
}

func (v debugVisitor) VisitGroup(g *ast.Group) {
	v.visit("Group", fmt.Sprintf("%d elements%s", len(g.Seq), groupOptions(g)))
}
func (v debugVisitor) VisitMatchBegin(*ast.MatchBegin) { v.visit("MatchBegin", "^") }
func (v debugVisitor) VisitMatchEnd(*ast.MatchEnd)     { v.visit("MatchEnd", "$") }
func (v debugVisitor) VisitAlternative(a *ast.Alternative) {
	v.visit("Alternative", fmt.Sprintf("%d branches", len(a.Branches)))
}
func (v debugVisitor) VisitSingleChar(c *ast.SingleChar)   { v.visit("SingleChar", atomLabel(c)) }
func (v debugVisitor) VisitPatternChar(p *ast.PatternChar) { v.visit("PatternChar", atomLabel(p)) }
func (v debugVisitor) VisitRange(r *ast.Range)             { v.visit("Range", atomLabel(r)) }
func (v debugVisitor) VisitCharClass(c *ast.CharClass) {
	v.visit("CharClass", fmt.Sprintf("%d elements, negate=%t", len(c.Elems), c.Negate))
}
func (v debugVisitor) VisitOneTime(ast.OneTime)         { v.visit("OneTime", "1 time") }
func (v debugVisitor) VisitNoneOrOnce(q ast.NoneOrOnce) { v.visit("NoneOrOnce", describeQuantifier(q)) }
func (v debugVisitor) VisitNoneOrMore(q ast.NoneOrMore) { v.visit("NoneOrMore", describeQuantifier(q)) }
func (v debugVisitor) VisitOneOrMore(q ast.OneOrMore)   { v.visit("OneOrMore", describeQuantifier(q)) }
func (v debugVisitor) VisitBetween(q ast.Between)       { v.visit("Between", describeQuantifier(q)) }
