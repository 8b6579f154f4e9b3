package compiler

import (
	"bytes"
	"reflect"
	"testing"
)

func TestAnalyzeTree(t *testing.T) {
	tests := []struct {
		pattern      string
		wantLabels   []string
		wantNames    []string
		wantAtoms    int
		wantGroups   int
		wantCaptures int
		wantDepth    int
		description  string
	}{
		{`abc`, []string{"Simple"}, []string{}, 3, 0, 0, 0, "literal string"},
		{`^a+$`, []string{"Anchored", "Quantifiers"}, []string{}, 1, 0, 0, 0, "anchored quantifier"},
		{`(?<y>\d{4})-(\d\d)`, []string{"Captures", "CharClass", "NamedGroups", "Quantifiers"}, []string{"y", ""}, 4, 2, 2, 1, "date prefix"},
		{`(?:a|b)*?`, []string{"Alternation", "NonCapturing", "NonGreedy", "Quantifiers"}, []string{}, 2, 1, 0, 1, "lazy alternation"},
		{`[a-z[:digit:]]\x41`, []string{"CharClass", "HexEscapes", "Posix", "Ranges"}, []string{}, 2, 0, 0, 0, "class and escape"},
		{`(?=a)`, []string{"Lookahead"}, []string{}, 1, 1, 0, 1, "lookahead"},
		{`((a))`, []string{"Captures"}, []string{"", ""}, 1, 2, 2, 2, "nested captures"},
		{``, []string{"Simple"}, []string{}, 0, 0, 0, 0, "empty pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			a := AnalyzeTree(parseTree(t, tt.pattern))

			if !reflect.DeepEqual(a.FeatureLabels, tt.wantLabels) {
				t.Errorf("pattern %q: FeatureLabels = %v, want %v", tt.pattern, a.FeatureLabels, tt.wantLabels)
			}
			if !reflect.DeepEqual(a.CaptureNames, tt.wantNames) {
				t.Errorf("pattern %q: CaptureNames = %q, want %q", tt.pattern, a.CaptureNames, tt.wantNames)
			}
			if a.Atoms != tt.wantAtoms {
				t.Errorf("pattern %q: Atoms = %d, want %d", tt.pattern, a.Atoms, tt.wantAtoms)
			}
			if a.Groups != tt.wantGroups {
				t.Errorf("pattern %q: Groups = %d, want %d", tt.pattern, a.Groups, tt.wantGroups)
			}
			if a.Captures != tt.wantCaptures {
				t.Errorf("pattern %q: Captures = %d, want %d", tt.pattern, a.Captures, tt.wantCaptures)
			}
			if a.MaxDepth != tt.wantDepth {
				t.Errorf("pattern %q: MaxDepth = %d, want %d", tt.pattern, a.MaxDepth, tt.wantDepth)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(true)
	l.SetOutput(&buf)

	l.Section("Parse ab")
	l.Log("value %d", 42)
	l.Transition(1, 'a', "content of root")
	l.Transition(3, 0, "content of root")

	want := "\n[regast] === Parse ab ===\n" +
		"[regast] value 42\n" +
		"[regast]    1  'a'   content of root\n" +
		"[regast]    3  end   content of root\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLoggerDisabled(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(false)
	l.SetOutput(&buf)

	l.Section("x")
	l.Log("y")
	l.Transition(1, 'a', "z")

	if l.Enabled() {
		t.Error("Enabled() = true, want false")
	}
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
}
