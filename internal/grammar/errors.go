package grammar

import (
	"errors"
	"fmt"
)

// Error kinds. States wrap them with details; callers match them with
// errors.Is.
var (
	ErrUnbalancedGroup      = errors.New("unbalanced parenthesis")
	ErrInvalidEscape        = errors.New("invalid escape")
	ErrInvalidQuantifier    = errors.New("invalid quantifier")
	ErrMalformedGroupOption = errors.New("malformed group option")
	ErrMalformedGroupName   = errors.New("malformed group name")
	ErrMalformedClass       = errors.New("malformed character class")

	// ErrMalformedRepetition also matches ErrMalformedGroupOption.
	ErrMalformedRepetition = fmt.Errorf("%w: malformed repetition", ErrMalformedGroupOption)
)
