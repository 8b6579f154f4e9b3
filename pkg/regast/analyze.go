package regast

import "github.com/KromDaniel/regast/internal/compiler"

// Analysis describes the structure of a pattern.
type Analysis = compiler.AnalysisResult

// Analyze parses pattern and reports which constructs it uses.
func Analyze(pattern string) (*Analysis, error) {
	root, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	return compiler.AnalyzeTree(root), nil
}
