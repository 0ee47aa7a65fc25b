// Package validation checks raw request arguments against an explicit
// schema of fields, wire types and rules.
//
// Validate is a pure function: it performs no I/O and collects every
// violation instead of stopping at the first one.
package validation

import (
	"sort"
)

// Values holds the coerced value of every field present in the input.
type Values map[string]any

func Validate(schema Schema, raw map[string]any) (Values, error) {
	values := make(Values, len(raw))
	var violations Violations

	for _, f := range schema.Fields {
		v, present := raw[f.Name]
		if !present || v == nil {
			if f.Required {
				violations = append(violations, requiredViolation(schema, f))
			}
			continue
		}

		if f.Required && isEmpty(v) {
			violations = append(violations, requiredViolation(schema, f))
			continue
		}

		coerced, ok := f.Type.Coerce(v)
		if !ok {
			violations = append(violations, Violation{
				Field:   f.Name,
				Rule:    RuleType,
				Kind:    ConstraintViolation,
				Message: schema.message(f.Name, RuleType, typeMessage(f.Type)),
			})
			continue
		}

		for _, rule := range f.Rules {
			if rule.Check(coerced) {
				continue
			}
			violations = append(violations, Violation{
				Field:   f.Name,
				Rule:    rule.Name,
				Kind:    ConstraintViolation,
				Message: schema.message(f.Name, rule.Name, rule.DefaultMessage),
			})
		}

		values[f.Name] = coerced
	}

	violations = append(violations, unknownFields(schema, raw)...)

	if len(violations) > 0 {
		return nil, violations
	}
	return values, nil
}

func requiredViolation(schema Schema, f Field) Violation {
	return Violation{
		Field:   f.Name,
		Rule:    RuleRequired,
		Kind:    RequiredFieldMissing,
		Message: schema.message(f.Name, RuleRequired, func(field string) string { return field + " should not be empty" }),
	}
}

func typeMessage(t Type) func(string) string {
	return func(field string) string {
		switch t.Name {
		case Boolean.Name:
			return field + " must be a boolean value"
		case Float.Name:
			return field + " must be a number"
		case DateTime.Name:
			return field + " must be a valid date"
		default:
			return field + " must be a string"
		}
	}
}

func isEmpty(v any) bool {
	s, ok := v.(string)
	return ok && s == ""
}

func unknownFields(schema Schema, raw map[string]any) Violations {
	var names []string
	for name := range raw {
		if _, ok := schema.field(name); !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := make(Violations, 0, len(names))
	for _, name := range names {
		out = append(out, Violation{
			Field:   name,
			Rule:    RuleUnknownField,
			Kind:    ConstraintViolation,
			Message: "field " + name + " is not defined by type " + schema.Name,
		})
	}
	return out
}
