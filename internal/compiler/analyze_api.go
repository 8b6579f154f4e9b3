package compiler

import (
	"sort"

	"github.com/KromDaniel/regast/ast"
)

// AnalysisResult describes the structure of a parsed pattern.
type AnalysisResult struct {
	// FeatureLabels are derived from pattern structure (sorted alphabetically)
	FeatureLabels []string `json:"feature_labels"`

	// CaptureNames lists capturing groups in order; unnamed ones are empty
	CaptureNames []string `json:"capture_names,omitempty"`

	Atoms    int `json:"atoms"`     // literal, escaped and class atoms outside classes
	Groups   int `json:"groups"`    // groups below the root
	Captures int `json:"captures"`  // capturing groups below the root
	MaxDepth int `json:"max_depth"` // deepest group nesting, root is 0
}

// AnalyzeTree inspects a parsed pattern without generating code.
func AnalyzeTree(root *ast.Group) *AnalysisResult {
	f := &featureVisitor{root: root}
	ast.Walk(root, f, true)

	captures := ast.CaptureGroups(root)
	names := make([]string, len(captures))
	for i, g := range captures {
		names[i] = g.Name
	}

	m := measure(root, 0)

	return &AnalysisResult{
		FeatureLabels: deriveFeatureLabels(f, len(captures) > 0),
		CaptureNames:  names,
		Atoms:         m.atoms,
		Groups:        m.groups - 1,
		Captures:      len(captures),
		MaxDepth:      m.depth,
	}
}

// deriveFeatureLabels turns the collected flags into sorted labels.
func deriveFeatureLabels(f *featureVisitor, hasCaptures bool) []string {
	var labels []string

	flags := []struct {
		set   bool
		label string
	}{
		{f.alternation, "Alternation"},
		{f.anchored, "Anchored"},
		{hasCaptures, "Captures"},
		{f.charClass, "CharClass"},
		{f.hexEscapes, "HexEscapes"},
		{f.lookahead, "Lookahead"},
		{f.named, "NamedGroups"},
		{f.nonCapturing, "NonCapturing"},
		{f.nonGreedy, "NonGreedy"},
		{f.posix, "Posix"},
		{f.quantifiers, "Quantifiers"},
		{f.ranges, "Ranges"},
	}
	for _, fl := range flags {
		if fl.set {
			labels = append(labels, fl.label)
		}
	}

	// Simple: no special features
	if len(labels) == 0 {
		labels = append(labels, "Simple")
	}

	sort.Strings(labels)
	return labels
}
