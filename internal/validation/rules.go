package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validate is safe for concurrent use and caches parsed tags.
var validate = validator.New()

const (
	RuleRequired         = "required"
	RuleType             = "type"
	RuleUUID             = "uuid"
	RuleMinLength        = "min_length"
	RuleMaxLength        = "max_length"
	RuleMin              = "min"
	RuleMaxDecimalPlaces = "max_decimal_places"
	RuleEnum             = "enum"
	RuleUnknownField     = "unknown_field"
)

// Rule is a single predicate over a coerced field value.
type Rule struct {
	Name  string
	Check func(v any) bool
	// DefaultMessage is used when the schema has no message for (field, rule).
	DefaultMessage func(field string) string
}

func tagCheck(tag string) func(v any) bool {
	return func(v any) bool {
		return validate.Var(v, tag) == nil
	}
}

func UUID() Rule {
	return Rule{
		Name: RuleUUID,
		Check: func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			return validate.Var(strings.ToLower(s), "uuid") == nil
		},
		DefaultMessage: func(field string) string {
			return field + " must be a UUID"
		},
	}
}

// MinLength and MaxLength count characters, not bytes. Bounds are inclusive.
func MinLength(n int) Rule {
	return Rule{
		Name:  RuleMinLength,
		Check: tagCheck(fmt.Sprintf("min=%d", n)),
		DefaultMessage: func(field string) string {
			return fmt.Sprintf("%s must be longer than or equal to %d characters", field, n)
		},
	}
}

func MaxLength(n int) Rule {
	return Rule{
		Name:  RuleMaxLength,
		Check: tagCheck(fmt.Sprintf("max=%d", n)),
		DefaultMessage: func(field string) string {
			return fmt.Sprintf("%s must be shorter than or equal to %d characters", field, n)
		},
	}
}

func Min(bound decimal.Decimal) Rule {
	return Rule{
		Name: RuleMin,
		Check: func(v any) bool {
			d, ok := v.(decimal.Decimal)
			return ok && d.GreaterThanOrEqual(bound)
		},
		DefaultMessage: func(field string) string {
			return fmt.Sprintf("%s must not be less than %s", field, bound.String())
		},
	}
}

// MaxDecimalPlaces fails when the value has more than places fractional
// digits. Trailing zeros do not count.
func MaxDecimalPlaces(places int32) Rule {
	return Rule{
		Name: RuleMaxDecimalPlaces,
		Check: func(v any) bool {
			d, ok := v.(decimal.Decimal)
			return ok && d.Equal(d.Truncate(places))
		},
		DefaultMessage: func(field string) string {
			return fmt.Sprintf("%s must have at most %d decimal places", field, places)
		},
	}
}

func OneOf(members ...string) Rule {
	return Rule{
		Name:  RuleEnum,
		Check: tagCheck("oneof=" + strings.Join(members, " ")),
		DefaultMessage: func(field string) string {
			return fmt.Sprintf("%s must be one of the following values: %s", field, strings.Join(members, ", "))
		},
	}
}
