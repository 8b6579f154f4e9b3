// Package codegen provides code generation helpers and constants.
package codegen

import (
	"strings"
	"unicode"
)

// Import paths referenced by generated code
const (
	ASTPackage    = "github.com/KromDaniel/regast/ast"
	RegastPackage = "github.com/KromDaniel/regast/pkg/regast"
)

// Suffixes of generated identifiers
const (
	PatternSuffix = "Pattern"
	TestPrefix    = "Test"
)

// PatternName returns the name of the constant holding the source pattern.
func PatternName(name string) string {
	return name + PatternSuffix
}

// TestName returns the name of the generated test function.
func TestName(name string) string {
	return TestPrefix + name
}

// Identifier turns an arbitrary label into an exported Go identifier.
// Runs of characters that cannot appear in an identifier act as word
// separators: "user_name" and "user-name" both become "UserName".
func Identifier(label string) string {
	var b strings.Builder
	for _, word := range strings.FieldsFunc(label, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		b.WriteString(UpperFirst(word))
	}
	id := b.String()
	if id == "" || unicode.IsDigit(rune(id[0])) {
		id = "P" + id
	}
	return id
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]&^0x20) + s[1:]
	}
	return s
}
