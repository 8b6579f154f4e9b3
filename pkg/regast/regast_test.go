package regast

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/KromDaniel/regast/ast"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    *ast.Group
	}{
		{
			name:    "two chars",
			pattern: "aB",
			want: &ast.Group{Quantifier: ast.OneTime{}, Seq: []ast.Node{
				&ast.SingleChar{Char: 'a', Quantifier: ast.OneTime{}},
				&ast.SingleChar{Char: 'B', Quantifier: ast.OneTime{}},
			}},
		},
		{
			name:    "range",
			pattern: "[1-4]",
			want: &ast.Group{Quantifier: ast.OneTime{}, Seq: []ast.Node{
				&ast.CharClass{Quantifier: ast.OneTime{}, Elems: []ast.Node{
					&ast.Range{
						Begin: &ast.SingleChar{Char: '1', Quantifier: ast.OneTime{}},
						End:   &ast.SingleChar{Char: '4', Quantifier: ast.OneTime{}},
					},
				}},
			}},
		},
		{
			name:    "alternation",
			pattern: "a|b",
			want: &ast.Group{Quantifier: ast.OneTime{}, Seq: []ast.Node{
				&ast.Alternative{Branches: [][]ast.Node{
					{&ast.SingleChar{Char: 'a', Quantifier: ast.OneTime{}}},
					{&ast.SingleChar{Char: 'b', Quantifier: ast.OneTime{}}},
				}},
			}},
		},
		{
			name:    "posix",
			pattern: "[:digit:]",
			want: &ast.Group{Quantifier: ast.OneTime{}, Seq: []ast.Node{
				&ast.PatternChar{Pattern: "digit", Kind: ast.PatternPosix, Quantifier: ast.OneTime{}},
			}},
		},
		{
			name:    "lazy between",
			pattern: "a{1,2}?",
			want: &ast.Group{Quantifier: ast.OneTime{}, Seq: []ast.Node{
				&ast.SingleChar{Char: 'a', Quantifier: ast.Between{Min: 1, Max: 2, Greedy: false}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.pattern, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		pattern string
		kind    error
		pos     int
		msg     string
	}{
		{`\x4`, ErrUnexpectedEnd, 4, "error at pos 4: unexpected end of input"},
		{"a)", ErrUnbalancedGroup, 2, "error at pos 2: unbalanced parenthesis"},
		{`\y`, ErrInvalidEscape, 2, `error at pos 2: invalid escape: unauthorized escape \y`},
		{"a**", ErrInvalidQuantifier, 3, "error at pos 3: invalid quantifier: quantifier repeated"},
		{"+", ErrInvalidQuantifier, 1, "error at pos 1: invalid quantifier: nothing to repeat"},
		{"(?#)", ErrMalformedGroupOption, 3, "error at pos 3: malformed group option"},
		{"(?<a-b>)", ErrMalformedGroupName, 5, "error at pos 5: malformed group name"},
		{"a{1,x}", ErrMalformedRepetition, 5, "error at pos 5: malformed group option: malformed repetition"},
		{"[a-[:digit:]]", ErrMalformedClass, 5, "error at pos 5: malformed character class"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := Parse(tt.pattern)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("Parse(%q) error = %v, want kind %v", tt.pattern, err, tt.kind)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) error type = %T, want *ParseError", tt.pattern, err)
			}
			if perr.Pos != tt.pos {
				t.Errorf("Parse(%q) pos = %d, want %d", tt.pattern, perr.Pos, tt.pos)
			}
			if !strings.HasPrefix(err.Error(), tt.msg) {
				t.Errorf("Parse(%q) error = %q, want prefix %q", tt.pattern, err.Error(), tt.msg)
			}
		})
	}
}

func TestMustParse(t *testing.T) {
	if g := MustParse("abc"); len(g.Seq) != 3 {
		t.Errorf("MustParse(abc) has %d elements, want 3", len(g.Seq))
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustParse did not panic on an invalid pattern")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "error at pos 2") {
			t.Errorf("panic = %q, want the parse error", msg)
		}
	}()
	MustParse("(")
}

func TestParsesAreIndependent(t *testing.T) {
	first := MustParse("(a|b)")
	second := MustParse("(a|b)")
	if first == second || first.Seq[0] == second.Seq[0] {
		t.Error("two parses share nodes")
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two parses of the same pattern differ")
	}
}

func TestParseWithOptionsHooks(t *testing.T) {
	var before, done []Step
	_, err := ParseWithOptions("(a)", ParseOptions{
		Before: func(s Step) { before = append(before, s) },
		After: func(s Step) {
			if s.Done {
				done = append(done, s)
			}
		},
	})
	if err != nil {
		t.Fatalf("ParseWithOptions() error = %v", err)
	}

	want := []Step{
		{Pos: 1, Char: '(', State: "content of root"},
		{Pos: 2, Char: 'a', State: "opening of group"},
		{Pos: 3, Char: ')', State: "content of group"},
	}
	if !reflect.DeepEqual(before, want) {
		t.Errorf("Before steps = %+v, want %+v", before, want)
	}
	wantDone := []Step{{Pos: 4, State: "content of root", Done: true}}
	if !reflect.DeepEqual(done, wantDone) {
		t.Errorf("done steps = %+v, want %+v", done, wantDone)
	}
}

func TestParseWithOptionsTrace(t *testing.T) {
	var buf bytes.Buffer
	var calls int
	_, err := ParseWithOptions("a+", ParseOptions{
		Trace:  &buf,
		Before: func(Step) { calls++ },
	})
	if err != nil {
		t.Fatalf("ParseWithOptions() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("Before called %d times, want 2", calls)
	}

	want := "\n[regast] === Parse a+ ===\n" +
		"[regast]    1  'a'   content of root\n" +
		"[regast]    2  '+'   content of root\n" +
		"[regast]    3  end   content of root\n"
	if buf.String() != want {
		t.Errorf("trace = %q, want %q", buf.String(), want)
	}
}

func TestParseWithOptionsTraceOnError(t *testing.T) {
	var buf bytes.Buffer
	_, err := ParseWithOptions("[a", ParseOptions{Trace: &buf})
	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Fatalf("ParseWithOptions() error = %v, want ErrUnexpectedEnd", err)
	}
	if !strings.Contains(buf.String(), "end   character class") {
		t.Errorf("trace does not show the open class:\n%s", buf.String())
	}
}

func TestAnalyze(t *testing.T) {
	a, err := Analyze(`(?<user>\w+)@(\w+)`)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if a.Captures != 2 || !reflect.DeepEqual(a.CaptureNames, []string{"user", ""}) {
		t.Errorf("Analyze() captures = %d %q", a.Captures, a.CaptureNames)
	}
	if !reflect.DeepEqual(a.FeatureLabels, []string{"Captures", "CharClass", "NamedGroups", "Quantifiers"}) {
		t.Errorf("Analyze() labels = %v", a.FeatureLabels)
	}

	if _, err := Analyze("(a"); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("Analyze(invalid) error = %v, want ErrUnexpectedEnd", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	valid := Options{Pattern: "a", Name: "A", OutputFile: "a.go", Package: "a"}
	tests := []struct {
		name    string
		modify  func(*Options)
		wantErr bool
	}{
		{"valid", func(*Options) {}, false},
		{"empty pattern", func(o *Options) { o.Pattern = "" }, true},
		{"empty name", func(o *Options) { o.Name = "" }, true},
		{"unexported name", func(o *Options) { o.Name = "email" }, true},
		{"invalid name", func(o *Options) { o.Name = "E-mail" }, true},
		{"empty output", func(o *Options) { o.OutputFile = "" }, true},
		{"empty package", func(o *Options) { o.Package = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.modify(&opts)
			if err := opts.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "email.go")

	err := Generate(Options{
		Pattern:          `[a-z]+@[a-z]+\.com`,
		Name:             "Email",
		OutputFile:       out,
		Package:          "email",
		GenerateTestFile: true,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	src, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output file was not created: %v", err)
	}
	if !strings.Contains(string(src), "const EmailPattern = ") {
		t.Errorf("generated file does not declare EmailPattern:\n%s", src)
	}
	if _, err := os.Stat(filepath.Join(dir, "email_test.go")); err != nil {
		t.Errorf("test file was not created: %v", err)
	}
}

func TestGenerateErrors(t *testing.T) {
	dir := t.TempDir()

	err := Generate(Options{Pattern: "(a", Name: "A", OutputFile: filepath.Join(dir, "a.go"), Package: "a"})
	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("Generate(invalid pattern) error = %v, want ErrUnexpectedEnd", err)
	}

	if err := Generate(Options{Pattern: "a"}); err == nil || !strings.Contains(err.Error(), "invalid options") {
		t.Errorf("Generate(missing options) error = %v", err)
	}

	if err := GenerateEntries(nil, BatchOptions{OutputFile: "x.go", Package: "x"}); err == nil {
		t.Error("GenerateEntries(nil) error = nil, want error")
	}
}

func TestGenerateEntries(t *testing.T) {
	out := filepath.Join(t.TempDir(), "all.go")
	entries := []Entry{
		{Name: "Digits", Pattern: `\d+`, Root: MustParse(`\d+`)},
		{Name: "Word", Pattern: `\w+`, Root: MustParse(`\w+`)},
	}
	if err := GenerateEntries(entries, BatchOptions{OutputFile: out, Package: "all"}); err != nil {
		t.Fatalf("GenerateEntries() error = %v", err)
	}

	src, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output file was not created: %v", err)
	}
	for _, want := range []string{"DigitsPattern", "WordPattern", "var Digits", "var Word"} {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated file missing %q", want)
		}
	}
}
