// Package catalog reads files of named patterns.
//
// A catalog has one pattern per line:
//
//	# comments and blank lines are ignored
//	Email = [a-z]+@[a-z]+\.com
//	Version = v\d+(\.\d+){0,2}
//
// Everything after "=" up to the end of the line is the pattern. Blanks
// around "=" are dropped, the rest is kept verbatim.
package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/KromDaniel/regast/ast"
	"github.com/KromDaniel/regast/internal/codegen"
	"github.com/KromDaniel/regast/pkg/regast"
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lowercase rules are elided from the token stream.
var catalogLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "comment", Pattern: `#[^\n]*`},
		{Name: "Assign", Pattern: `[ \t]*=[ \t]*`, Action: lexer.Push("Pattern")},
		{Name: "whitespace", Pattern: `[ \t\r]+`},
		{Name: "Name", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "EOL", Pattern: `\n`},
	},
	"Pattern": {
		{Name: "Pattern", Pattern: `[^\r\n]+`, Action: lexer.Pop()},
	},
})

type file struct {
	Entries []*entry `parser:"( @@ | EOL )*"`
}

type entry struct {
	Pos     lexer.Position
	Name    string `parser:"@Name Assign"`
	Pattern string `parser:"@Pattern"`
}

var catalogParser = participle.MustBuild[file](participle.Lexer(catalogLexer))

// Pattern is one named pattern of a catalog.
type Pattern struct {
	Name   string
	Source string
	Line   int
	Root   *ast.Group
}

// Catalog is a parsed catalog file.
type Catalog struct {
	Filename string
	Patterns []Pattern
}

// Load reads and parses the catalog at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	return Parse(path, f)
}

// Parse reads a catalog from r. filename is only used in error messages.
// Every pattern is parsed; the first failure is returned with its line.
func Parse(filename string, r io.Reader) (*Catalog, error) {
	parsed, err := catalogParser.Parse(filename, r)
	if err != nil {
		return nil, err
	}

	c := &Catalog{Filename: filename}
	lines := make(map[string]int, len(parsed.Entries))
	for _, e := range parsed.Entries {
		line := e.Pos.Line
		if first, dup := lines[e.Name]; dup {
			return nil, fmt.Errorf("%s:%d: duplicate pattern %s (first defined on line %d)", filename, line, e.Name, first)
		}
		lines[e.Name] = line

		root, err := regast.Parse(e.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %s: %w", filename, line, e.Name, err)
		}
		c.Patterns = append(c.Patterns, Pattern{
			Name:   e.Name,
			Source: e.Pattern,
			Line:   line,
			Root:   root,
		})
	}
	return c, nil
}

// Lookup returns the pattern called name.
func (c *Catalog) Lookup(name string) (Pattern, bool) {
	for _, p := range c.Patterns {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

// Entries converts the catalog for code generation. Names are turned into
// exported identifiers, so "user_id" is emitted as UserId.
func (c *Catalog) Entries() []regast.Entry {
	entries := make([]regast.Entry, 0, len(c.Patterns))
	for _, p := range c.Patterns {
		entries = append(entries, regast.Entry{Name: codegen.Identifier(p.Name), Pattern: p.Source, Root: p.Root})
	}
	return entries
}
