// Package compiler turns parsed pattern trees into Go source code.
package compiler

import (
	"fmt"
	"go/format"
	"os"
	"strings"

	"github.com/KromDaniel/regast/ast"
	"github.com/KromDaniel/regast/internal/codegen"
	"github.com/dave/jennifer/jen"
)

// Entry is one pattern to emit.
type Entry struct {
	Name    string     // exported identifier of the generated tree
	Pattern string     // source pattern, kept as <Name>Pattern
	Root    *ast.Group // parsed tree of Pattern
}

// Config holds the configuration for code generation.
type Config struct {
	Entries          []Entry
	OutputFile       string
	Package          string
	GenerateTestFile bool // Generate a test checking every tree against a fresh parse
	Verbose          bool // Enable verbose logging of analysis and emission
}

// Compiler generates Go declarations for pattern trees.
type Compiler struct {
	config Config
	file   *jen.File
	logger *Logger
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	c := &Compiler{
		config: config,
		file:   jen.NewFile(config.Package),
		logger: NewLogger(config.Verbose),
	}
	c.analyzeAndLog()
	return c
}

// analyzeAndLog logs the structure of every entry if verbose mode is enabled.
func (c *Compiler) analyzeAndLog() {
	if !c.logger.Enabled() {
		return
	}
	for _, e := range c.config.Entries {
		c.logger.Section("Pattern " + e.Name)
		c.logger.Log("Pattern: %s", e.Pattern)
		a := AnalyzeTree(e.Root)
		c.logger.Log("Atoms: %d, groups: %d, captures: %d, depth: %d", a.Atoms, a.Groups, a.Captures, a.MaxDepth)
		c.logger.Log("Features: %s", strings.Join(a.FeatureLabels, ", "))
	}
}

// SetOutputFile sets the output file path.
func (c *Compiler) SetOutputFile(path string) {
	c.config.OutputFile = path
}

// Generate writes the declarations to the output file and, if requested,
// the companion test file.
func (c *Compiler) Generate() error {
	if err := c.checkNames(); err != nil {
		return err
	}

	c.file.HeaderComment("Code generated by regast. DO NOT EDIT.")

	for _, e := range c.config.Entries {
		c.logger.Log("Emitting %s", e.Name)
		c.file.Commentf("%s is the parsed form of %s.", e.Name, codegen.PatternName(e.Name))
		c.file.Const().Id(codegen.PatternName(e.Name)).Op("=").Lit(e.Pattern)
		c.file.Var().Id(e.Name).Op("=").Add(nodeLiteral(e.Root))
		c.file.Line()
	}

	if err := c.file.Save(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	if err := formatFile(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to format file: %w", err)
	}

	if c.config.GenerateTestFile {
		if err := c.generateTestFile(); err != nil {
			return fmt.Errorf("failed to generate test file: %w", err)
		}
	}

	return nil
}

// checkNames rejects entries whose identifiers would collide.
func (c *Compiler) checkNames() error {
	seen := make(map[string]bool, 2*len(c.config.Entries))
	for _, e := range c.config.Entries {
		if e.Root == nil {
			return fmt.Errorf("entry %s has no tree", e.Name)
		}
		for _, id := range []string{e.Name, codegen.PatternName(e.Name)} {
			if seen[id] {
				return fmt.Errorf("duplicate identifier %s", id)
			}
			seen[id] = true
		}
	}
	return nil
}

// testFilePath derives foo_test.go from foo.go.
func testFilePath(path string) string {
	return strings.TrimSuffix(path, GoFileSuffix) + TestFileSuffix
}

// generateTestFile emits one test per entry that parses the pattern again
// and compares the result with the generated tree.
func (c *Compiler) generateTestFile() error {
	f := jen.NewFile(c.config.Package)
	f.HeaderComment("Code generated by regast. DO NOT EDIT.")

	for _, e := range c.config.Entries {
		pattern := jen.Id(codegen.PatternName(e.Name))
		f.Func().Id(codegen.TestName(e.Name)).Params(jen.Id("t").Op("*").Qual("testing", "T")).Block(
			jen.List(jen.Id("got"), jen.Err()).Op(":=").Qual(codegen.RegastPackage, "Parse").Call(pattern),
			jen.If(jen.Err().Op("!=").Nil()).Block(
				jen.Id("t").Dot("Fatalf").Call(jen.Lit("Parse(%q) failed: %v"), pattern, jen.Err()),
			),
			jen.If(jen.Op("!").Qual("reflect", "DeepEqual").Call(jen.Id("got"), jen.Id(e.Name))).Block(
				jen.Id("t").Dot("Errorf").Call(jen.Lit("Parse(%q) differs from the generated tree"), pattern),
			),
		)
		f.Line()
	}

	path := testFilePath(c.config.OutputFile)
	if err := f.Save(path); err != nil {
		return err
	}
	return formatFile(path)
}

// formatFile reads a file, formats it with go/format, and writes it back.
func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	formatted, err := format.Source(src)
	if err != nil {
		return err
	}

	return os.WriteFile(path, formatted, GeneratedFileMode)
}
