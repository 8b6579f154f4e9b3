// Package replace parses replacement templates and checks them against the
// capture groups of a parsed pattern.
package replace

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"github.com/KromDaniel/regast/ast"
	"github.com/KromDaniel/regast/internal/machine"
)

// SegmentType indicates the type of segment in a replacement template.
type SegmentType int

const (
	// SegmentLiteral represents literal text (no capture reference).
	SegmentLiteral SegmentType = iota
	// SegmentFullMatch represents a reference to the full match ($0).
	SegmentFullMatch
	// SegmentCaptureIndex represents a reference to a capture group by index ($1, $2, etc.).
	SegmentCaptureIndex
	// SegmentCaptureName represents a reference to a capture group by name ($name, ${name}).
	SegmentCaptureName
)

// Segment represents a parsed segment of a replacement template.
type Segment struct {
	Type         SegmentType
	Literal      string // For SegmentLiteral: the literal text
	CaptureIndex int    // For SegmentCaptureIndex: 1-based index
	CaptureName  string // For SegmentCaptureName: the capture group name
}

// Template represents a fully parsed replacement template.
type Template struct {
	Original string
	Segments []Segment
}

// Parse parses a replacement template string into segments.
// Template syntax:
//   - $0 or ${0}: full match
//   - $1, $2, ..., $99 or ${1}, ${2}: capture group by index
//   - $name or ${name}: capture group by name
//   - $$: literal dollar sign
//   - Everything else: literal text
//
// Errors are *machine.Error values carrying the offending position.
func Parse(template string) (*Template, error) {
	b := &builder{}
	start := &literalState{b: b}
	m := machine.New(machine.NewCursor(template), start)

	if err := m.Run(); err != nil {
		// A reference may run up to the end of the template.
		f, ok := m.State().(finisher)
		if !ok || !errors.Is(err, machine.ErrUnexpectedEnd) {
			return nil, err
		}
		f.finish()
	}
	b.flush()

	return &Template{Original: template, Segments: b.segments}, nil
}

// Check verifies that every reference of t names a capture group of root.
func (t *Template) Check(root *ast.Group) error {
	_, err := t.Resolve(root)
	return err
}

// Resolve checks t against the capture groups of root and returns its
// segments with every named reference replaced by the index of its group.
func (t *Template) Resolve(root *ast.Group) ([]Segment, error) {
	groups := ast.CaptureGroups(root)
	index := make(map[string]int, len(groups))
	for i, g := range groups {
		if _, dup := index[g.Name]; g.Name != "" && !dup {
			index[g.Name] = i + 1
		}
	}

	resolved := make([]Segment, 0, len(t.Segments))
	for _, seg := range t.Segments {
		switch seg.Type {
		case SegmentCaptureIndex:
			if seg.CaptureIndex > len(groups) {
				return nil, fmt.Errorf("capture group index %d out of range (pattern has %d groups)", seg.CaptureIndex, len(groups))
			}
		case SegmentCaptureName:
			i, ok := index[seg.CaptureName]
			if !ok {
				return nil, fmt.Errorf("capture group %q not found in pattern", seg.CaptureName)
			}
			seg = Segment{Type: SegmentCaptureIndex, CaptureIndex: i}
		}
		resolved = append(resolved, seg)
	}
	return resolved, nil
}

// builder collects segments, merging adjacent literal text.
type builder struct {
	segments []Segment
	literal  []rune
}

func (b *builder) text(r ...rune) {
	b.literal = append(b.literal, r...)
}

func (b *builder) flush() {
	if len(b.literal) == 0 {
		return
	}
	b.segments = append(b.segments, Segment{Type: SegmentLiteral, Literal: string(b.literal)})
	b.literal = nil
}

func (b *builder) emit(seg Segment) {
	b.flush()
	b.segments = append(b.segments, seg)
}

func (b *builder) emitIndex(index int) {
	if index == 0 {
		b.emit(Segment{Type: SegmentFullMatch})
		return
	}
	b.emit(Segment{Type: SegmentCaptureIndex, CaptureIndex: index})
}

// finisher is implemented by states that are complete at end of input.
type finisher interface {
	finish()
}

// literalState copies text until a "$".
type literalState struct {
	b *builder
}

func (s *literalState) Next(_ *machine.Machine, r rune) (machine.State, error) {
	if r == '$' {
		return &dollarState{b: s.b, literal: s}, nil
	}
	s.b.text(r)
	return s, nil
}

// dollarState follows a "$".
type dollarState struct {
	b       *builder
	literal *literalState
}

func (s *dollarState) Next(m *machine.Machine, r rune) (machine.State, error) {
	switch {
	case r == '$':
		s.b.text('$')
		return s.literal, nil
	case r == '{':
		return &bracedState{b: s.b, literal: s.literal}, nil
	case r == '0':
		s.b.emitIndex(0)
		return s.literal, nil
	case r >= '1' && r <= '9':
		return &indexState{b: s.b, literal: s.literal, digits: []rune{r}}, nil
	case isNameStart(r):
		return &nameState{b: s.b, literal: s.literal, name: []rune{r}}, nil
	default:
		// Lone "$": keep it and read r as text.
		s.b.text('$')
		return s.literal.Next(m, r)
	}
}

func (s *dollarState) finish() {
	s.b.text('$')
}

// indexState reads $N and $NN.
type indexState struct {
	b       *builder
	literal *literalState
	digits  []rune
}

func (s *indexState) Next(m *machine.Machine, r rune) (machine.State, error) {
	if r >= '0' && r <= '9' && len(s.digits) < 2 {
		s.digits = append(s.digits, r)
		return s, nil
	}
	s.finish()
	return s.literal.Next(m, r)
}

func (s *indexState) finish() {
	n, _ := strconv.Atoi(string(s.digits))
	s.b.emitIndex(n)
}

// nameState reads $name.
type nameState struct {
	b       *builder
	literal *literalState
	name    []rune
}

func (s *nameState) Next(m *machine.Machine, r rune) (machine.State, error) {
	if isNameContinue(r) {
		s.name = append(s.name, r)
		return s, nil
	}
	s.finish()
	return s.literal.Next(m, r)
}

func (s *nameState) finish() {
	s.b.emit(Segment{Type: SegmentCaptureName, CaptureName: string(s.name)})
}

// bracedState reads ${...}.
type bracedState struct {
	b       *builder
	literal *literalState
	content []rune
}

func (s *bracedState) Next(_ *machine.Machine, r rune) (machine.State, error) {
	if r != '}' {
		s.content = append(s.content, r)
		return s, nil
	}

	content := string(s.content)
	switch {
	case content == "":
		return nil, fmt.Errorf("empty ${}")
	case isDigit(s.content[0]):
		n, err := strconv.Atoi(content)
		if err != nil {
			return nil, fmt.Errorf("invalid capture reference ${%s}: mixed digits and non-digits", content)
		}
		s.b.emitIndex(n)
	case isValidIdentifier(s.content):
		s.b.emit(Segment{Type: SegmentCaptureName, CaptureName: content})
	default:
		return nil, fmt.Errorf("invalid capture name ${%s}", content)
	}
	return s.literal, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isValidIdentifier(s []rune) bool {
	if len(s) == 0 || !isNameStart(s[0]) {
		return false
	}
	for _, r := range s[1:] {
		if !isNameContinue(r) {
			return false
		}
	}
	return true
}
