package grammar

import (
	"fmt"
	"strings"

	"github.com/KromDaniel/regast/ast"
)

// dump renders a tree compactly for failure messages.
func dump(n ast.Node) string {
	var b strings.Builder
	writeDump(&b, n)
	return b.String()
}

func writeDump(b *strings.Builder, n ast.Node) {
	switch n := n.(type) {
	case nil:
		b.WriteString("nil")
	case *ast.Group:
		fmt.Fprintf(b, "Group{name=%q ignored=%t look=%q q=%#v [", n.Name, n.Ignored, n.Lookahead, n.Quantifier)
		writeSeq(b, n.Seq)
		b.WriteString("]}")
	case *ast.MatchBegin:
		b.WriteString("^")
	case *ast.MatchEnd:
		b.WriteString("$")
	case *ast.Alternative:
		b.WriteString("Alt{")
		for i, br := range n.Branches {
			if i > 0 {
				b.WriteString(" | ")
			}
			writeSeq(b, br)
		}
		b.WriteString("}")
	case *ast.SingleChar:
		fmt.Fprintf(b, "%q q=%#v", n.Char, n.Quantifier)
	case *ast.PatternChar:
		fmt.Fprintf(b, "Pattern{%q %s q=%#v}", n.Pattern, n.Kind, n.Quantifier)
	case *ast.Range:
		b.WriteString("Range{")
		writeDump(b, n.Begin)
		b.WriteString(" - ")
		writeDump(b, n.End)
		b.WriteString("}")
	case *ast.CharClass:
		fmt.Fprintf(b, "Class{negate=%t q=%#v [", n.Negate, n.Quantifier)
		writeSeq(b, n.Elems)
		b.WriteString("]}")
	default:
		fmt.Fprintf(b, "%#v", n)
	}
}

func writeSeq(b *strings.Builder, seq []ast.Node) {
	if seq == nil {
		b.WriteString("nil")
		return
	}
	for i, n := range seq {
		if i > 0 {
			b.WriteString(", ")
		}
		writeDump(b, n)
	}
}
