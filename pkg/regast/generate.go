package regast

import (
	"fmt"
	"go/token"

	"github.com/KromDaniel/regast/internal/compiler"
)

// Options configures Go code generation for a pattern.
type Options struct {
	// Pattern is the pattern to parse
	Pattern string

	// Name is the identifier of the generated tree; "<Name>Pattern" holds the source
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// GenerateTestFile also writes <OutputFile>_test.go checking the tree against a fresh parse
	GenerateTestFile bool

	// Verbose logs pattern analysis to stderr
	Verbose bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !token.IsIdentifier(o.Name) || !token.IsExported(o.Name) {
		return fmt.Errorf("name %q is not an exported Go identifier", o.Name)
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// Generate parses the pattern and writes a Go file declaring its tree.
func Generate(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	root, err := Parse(opts.Pattern)
	if err != nil {
		return fmt.Errorf("failed to parse pattern: %w", err)
	}

	return GenerateEntries([]Entry{{Name: opts.Name, Pattern: opts.Pattern, Root: root}}, BatchOptions{
		OutputFile:       opts.OutputFile,
		Package:          opts.Package,
		GenerateTestFile: opts.GenerateTestFile,
		Verbose:          opts.Verbose,
	})
}

// Entry is a named, already parsed pattern.
type Entry = compiler.Entry

// BatchOptions configures GenerateEntries.
type BatchOptions struct {
	OutputFile       string
	Package          string
	GenerateTestFile bool
	Verbose          bool
}

// GenerateEntries writes one Go file declaring every entry's tree.
func GenerateEntries(entries []Entry, opts BatchOptions) error {
	if len(entries) == 0 {
		return fmt.Errorf("nothing to generate")
	}
	if opts.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if opts.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}

	c := compiler.New(compiler.Config{
		Entries:          entries,
		OutputFile:       opts.OutputFile,
		Package:          opts.Package,
		GenerateTestFile: opts.GenerateTestFile,
		Verbose:          opts.Verbose,
	})

	if err := c.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	return nil
}
