package validation

import (
	"errors"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

type Kind string

const (
	RequiredFieldMissing Kind = "RequiredFieldMissing"
	ConstraintViolation  Kind = "ConstraintViolation"
)

// Violation is a single rule failure on a single field.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Violations is the ordered list of every failure found in one input.
type Violations []Violation

func (v Violations) Error() string {
	msgs := make([]string, 0, len(v))
	for _, violation := range v {
		msgs = append(msgs, violation.Message)
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(msgs, "; ")
}

func (v Violations) Unwrap() error {
	return ErrInvalidInput
}

// Fields returns the offending field names, in order, without duplicates.
func (v Violations) Fields() []string {
	seen := make(map[string]bool, len(v))
	var fields []string
	for _, violation := range v {
		if seen[violation.Field] {
			continue
		}
		seen[violation.Field] = true
		fields = append(fields, violation.Field)
	}
	return fields
}

// AsViolations extracts Violations from an error chain.
func AsViolations(err error) (Violations, bool) {
	var v Violations
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
