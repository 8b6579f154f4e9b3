// Command regast parses patterns, prints their trees and generates Go code
// declaring them.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KromDaniel/regast/ast"
	"github.com/KromDaniel/regast/catalog"
	"github.com/KromDaniel/regast/pkg/regast"
	"github.com/KromDaniel/regast/replace"
	"gopkg.in/alecthomas/kingpin.v2"
)

// arrayFlags collects a flag given several times.
type arrayFlags []string

func (a *arrayFlags) String() string {
	return strings.Join(*a, ", ")
}

func (a *arrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

// IsCumulative lets kingpin accept the flag more than once.
func (a *arrayFlags) IsCumulative() bool {
	return true
}

func main() {
	kingpin.FatalIfError(run(os.Args[1:], os.Stdout, os.Stderr), "")
}

func run(args []string, stdout, stderr io.Writer) error {
	app := kingpin.New("regast", "Parse patterns into syntax trees and generate Go code declaring them.")

	parseCmd := app.Command("parse", "Parse a pattern and print its tree.")
	parseQuiet := parseCmd.Flag("quiet", "Do not trace the parser.").Short('q').Bool()
	parseExpr := parseCmd.Arg("expr", "Pattern to parse.").Required().String()

	visitCmd := app.Command("visit", "Parse a pattern and print every node as it is visited.")
	visitQuantify := visitCmd.Flag("quantify", "Visit quantifiers too.").Bool()
	visitExpr := visitCmd.Arg("expr", "Pattern to parse.").Required().String()

	analyzeCmd := app.Command("analyze", "Print the structure of a pattern as JSON.")
	analyzeExpr := analyzeCmd.Arg("expr", "Pattern to analyze.").Required().String()

	genCmd := app.Command("gen", "Generate a Go file declaring parsed patterns.")
	genName := genCmd.Flag("name", "Exported identifier of the generated tree.").Short('n').String()
	genPackage := genCmd.Flag("package", "Package of the generated file.").Short('p').Default("main").String()
	genOutput := genCmd.Flag("output", "Output file.").Short('o').Required().String()
	genTest := genCmd.Flag("test", "Also generate a test file.").Bool()
	genVerbose := genCmd.Flag("verbose", "Log pattern analysis.").Short('v').Bool()
	genCatalog := genCmd.Flag("catalog", "Generate every pattern of a catalog file.").String()
	genPattern := genCmd.Arg("pattern", "Pattern to generate, unless --catalog is given.").String()

	checkCmd := app.Command("check", "Parse every pattern of a catalog file.")
	checkFile := checkCmd.Arg("file", "Catalog file.").Required().String()

	replaceCmd := app.Command("replace", "Check replacement templates against the capture groups of a pattern.")
	var templates arrayFlags
	replaceCmd.Flag("template", "Replacement template, may be repeated.").Short('t').Required().SetValue(&templates)
	replacePattern := replaceCmd.Arg("pattern", "Pattern providing the capture groups.").Required().String()

	command, err := app.Parse(args)
	if err != nil {
		return err
	}

	switch command {
	case parseCmd.FullCommand():
		return parseAndPrint(stdout, *parseExpr, *parseQuiet)
	case visitCmd.FullCommand():
		return visit(stdout, *visitExpr, *visitQuantify)
	case analyzeCmd.FullCommand():
		return analyze(stdout, *analyzeExpr)
	case genCmd.FullCommand():
		return generate(stderr, genConfig{
			name:    *genName,
			pkg:     *genPackage,
			output:  *genOutput,
			test:    *genTest,
			verbose: *genVerbose,
			catalog: *genCatalog,
			pattern: *genPattern,
		})
	case checkCmd.FullCommand():
		return check(stdout, *checkFile)
	case replaceCmd.FullCommand():
		return checkTemplates(stdout, *replacePattern, templates)
	}
	return nil
}

func parseAndPrint(w io.Writer, expr string, quiet bool) error {
	var opts regast.ParseOptions
	if !quiet {
		opts.Before = func(s regast.Step) {
			fmt.Fprintf(w, "Source: %q   State: %s\n", s.Char, s.State)
		}
		opts.After = func(s regast.Step) {
			if s.Done {
				fmt.Fprintf(w, "Done with state: %s\n", s.State)
			}
		}
	}

	root, err := regast.ParseWithOptions(expr, opts)
	if err != nil {
		return err
	}
	printTree(w, root)
	return nil
}

func visit(w io.Writer, expr string, quantify bool) error {
	root, err := regast.Parse(expr)
	if err != nil {
		return err
	}
	ast.Walk(root, debugVisitor{w: w}, quantify)
	return nil
}

func analyze(w io.Writer, expr string) error {
	a, err := regast.Analyze(expr)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}

type genConfig struct {
	name, pkg, output string
	test, verbose     bool
	catalog, pattern  string
}

func generate(log io.Writer, cfg genConfig) error {
	if cfg.catalog == "" {
		return regast.Generate(regast.Options{
			Pattern:          cfg.pattern,
			Name:             cfg.name,
			OutputFile:       cfg.output,
			Package:          cfg.pkg,
			GenerateTestFile: cfg.test,
			Verbose:          cfg.verbose,
		})
	}

	if cfg.pattern != "" || cfg.name != "" {
		return fmt.Errorf("--catalog cannot be combined with a pattern or --name")
	}
	c, err := catalog.Load(cfg.catalog)
	if err != nil {
		return err
	}
	if err := regast.GenerateEntries(c.Entries(), regast.BatchOptions{
		OutputFile:       cfg.output,
		Package:          cfg.pkg,
		GenerateTestFile: cfg.test,
		Verbose:          cfg.verbose,
	}); err != nil {
		return err
	}
	if cfg.verbose {
		fmt.Fprintf(log, "[regast] wrote %d patterns to %s\n", len(c.Patterns), cfg.output)
	}
	return nil
}

func check(w io.Writer, path string) error {
	c, err := catalog.Load(path)
	if err != nil {
		return err
	}
	for _, p := range c.Patterns {
		fmt.Fprintf(w, "%s:%d: %s ok (%d capture groups)\n", path, p.Line, p.Name, len(ast.CaptureGroups(p.Root)))
	}
	return nil
}

func checkTemplates(w io.Writer, pattern string, templates []string) error {
	root, err := regast.Parse(pattern)
	if err != nil {
		return err
	}
	for _, text := range templates {
		tmpl, err := replace.Parse(text)
		if err != nil {
			return fmt.Errorf("template %q: %w", text, err)
		}
		segments, err := tmpl.Resolve(root)
		if err != nil {
			return fmt.Errorf("template %q: %w", text, err)
		}
		fmt.Fprintf(w, "%s\n", text)
		for _, seg := range segments {
			fmt.Fprintf(w, "  %s\n", describeSegment(seg))
		}
	}
	return nil
}

func describeSegment(seg replace.Segment) string {
	switch seg.Type {
	case replace.SegmentLiteral:
		return fmt.Sprintf("literal %q", seg.Literal)
	case replace.SegmentFullMatch:
		return "full match"
	default:
		return fmt.Sprintf("group %d", seg.CaptureIndex)
	}
}
