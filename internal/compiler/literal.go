package compiler

import (
	"fmt"

	"github.com/KromDaniel/regast/ast"
	"github.com/KromDaniel/regast/internal/codegen"
	"github.com/dave/jennifer/jen"
)

// multiline renders composite literal elements one per line.
var multiline = jen.Options{Open: "{", Close: "}", Separator: ",", Multi: true}

// nodeLiteral returns a Go expression that builds n. Zero-valued fields are
// left out so the literal is deep-equal to what the parser produces.
func nodeLiteral(n ast.Node) jen.Code {
	switch n := n.(type) {
	case *ast.Group:
		d := jen.Dict{}
		if len(n.Seq) > 0 {
			d[jen.Id("Seq")] = seqLiteral(n.Seq)
		}
		if n.Ignored {
			d[jen.Id("Ignored")] = jen.True()
		}
		if n.Name != "" {
			d[jen.Id("Name")] = jen.Lit(n.Name)
		}
		if n.Lookahead != ast.NoLookahead {
			d[jen.Id("Lookahead")] = jen.Qual(codegen.ASTPackage, lookaheadName(n.Lookahead))
		}
		d[jen.Id("Quantifier")] = quantifierLiteral(n.Quantifier)
		return jen.Op("&").Qual(codegen.ASTPackage, "Group").Values(d)

	case *ast.MatchBegin:
		return jen.Op("&").Qual(codegen.ASTPackage, "MatchBegin").Values()

	case *ast.MatchEnd:
		return jen.Op("&").Qual(codegen.ASTPackage, "MatchEnd").Values()

	case *ast.Alternative:
		branches := make([]jen.Code, 0, len(n.Branches))
		for _, b := range n.Branches {
			if len(b) == 0 {
				branches = append(branches, jen.Nil())
				continue
			}
			branches = append(branches, elementsLiteral(b))
		}
		return jen.Op("&").Qual(codegen.ASTPackage, "Alternative").Values(jen.Dict{
			jen.Id("Branches"): jen.Index().Index().Qual(codegen.ASTPackage, "Node").Custom(multiline, branches...),
		})

	case *ast.SingleChar:
		return jen.Op("&").Qual(codegen.ASTPackage, "SingleChar").Values(jen.Dict{
			jen.Id("Char"):       jen.LitRune(n.Char),
			jen.Id("Quantifier"): quantifierLiteral(n.Quantifier),
		})

	case *ast.PatternChar:
		d := jen.Dict{
			jen.Id("Pattern"):    jen.Lit(n.Pattern),
			jen.Id("Quantifier"): quantifierLiteral(n.Quantifier),
		}
		if n.Kind != ast.PatternOther {
			d[jen.Id("Kind")] = jen.Qual(codegen.ASTPackage, patternKindName(n.Kind))
		}
		return jen.Op("&").Qual(codegen.ASTPackage, "PatternChar").Values(d)

	case *ast.Range:
		return jen.Op("&").Qual(codegen.ASTPackage, "Range").Values(jen.Dict{
			jen.Id("Begin"): nodeLiteral(n.Begin),
			jen.Id("End"):   nodeLiteral(n.End),
		})

	case *ast.CharClass:
		d := jen.Dict{
			jen.Id("Quantifier"): quantifierLiteral(n.Quantifier),
		}
		if len(n.Elems) > 0 {
			d[jen.Id("Elems")] = seqLiteral(n.Elems)
		}
		if n.Negate {
			d[jen.Id("Negate")] = jen.True()
		}
		return jen.Op("&").Qual(codegen.ASTPackage, "CharClass").Values(d)

	default:
		panic(fmt.Sprintf("compiler: unknown node type %T", n))
	}
}

// seqLiteral returns []ast.Node{...}.
func seqLiteral(seq []ast.Node) jen.Code {
	return jen.Index().Qual(codegen.ASTPackage, "Node").Add(elementsLiteral(seq))
}

// elementsLiteral returns the {...} part of a node slice literal.
func elementsLiteral(seq []ast.Node) *jen.Statement {
	items := make([]jen.Code, 0, len(seq))
	for _, n := range seq {
		items = append(items, nodeLiteral(n))
	}
	return jen.Custom(multiline, items...)
}

func quantifierLiteral(q ast.Quantifier) jen.Code {
	switch q := q.(type) {
	case ast.OneTime:
		return jen.Qual(codegen.ASTPackage, "OneTime").Values()
	case ast.NoneOrOnce:
		return greedyLiteral("NoneOrOnce", q.Greedy)
	case ast.NoneOrMore:
		return greedyLiteral("NoneOrMore", q.Greedy)
	case ast.OneOrMore:
		return greedyLiteral("OneOrMore", q.Greedy)
	case ast.Between:
		return jen.Qual(codegen.ASTPackage, "Between").Values(jen.Dict{
			jen.Id("Min"):    boundLiteral(q.Min),
			jen.Id("Max"):    boundLiteral(q.Max),
			jen.Id("Greedy"): jen.Lit(q.Greedy),
		})
	default:
		panic(fmt.Sprintf("compiler: unknown quantifier type %T", q))
	}
}

func greedyLiteral(name string, greedy bool) jen.Code {
	return jen.Qual(codegen.ASTPackage, name).Values(jen.Dict{
		jen.Id("Greedy"): jen.Lit(greedy),
	})
}

func boundLiteral(n int) jen.Code {
	if n == ast.Unbounded {
		return jen.Qual(codegen.ASTPackage, "Unbounded")
	}
	return jen.Lit(n)
}

func lookaheadName(l ast.Lookahead) string {
	switch l {
	case ast.PositiveLookahead:
		return "PositiveLookahead"
	case ast.NegativeLookahead:
		return "NegativeLookahead"
	default:
		return "NoLookahead"
	}
}

func patternKindName(k ast.PatternKind) string {
	switch k {
	case ast.PatternASCII:
		return "PatternASCII"
	case ast.PatternUnicode:
		return "PatternUnicode"
	case ast.PatternPosix:
		return "PatternPosix"
	default:
		return "PatternOther"
	}
}
