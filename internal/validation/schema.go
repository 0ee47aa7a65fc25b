package validation

import (
	"fmt"
	"sort"
	"strings"
)

type Field struct {
	Name     string
	Type     Type
	Required bool
	Rules    []Rule
}

// MessageKey addresses the message for one rule on one field.
type MessageKey struct {
	Field string
	Rule  string
}

type Messages map[MessageKey]string

// Schema describes one input shape. Fields are validated, and violations
// reported, in declaration order.
type Schema struct {
	Name     string
	Fields   []Field
	Messages Messages
}

func (s Schema) field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (s Schema) message(field, rule string, fallback func(string) string) string {
	if msg, ok := s.Messages[MessageKey{Field: field, Rule: rule}]; ok {
		return msg
	}
	return fallback(field)
}

// SDL renders the schema as a GraphQL input type.
func (s Schema) SDL() string {
	var b strings.Builder
	fmt.Fprintf(&b, "input %s {\n", s.Name)
	for _, f := range s.Fields {
		bang := ""
		if f.Required {
			bang = "!"
		}
		fmt.Fprintf(&b, "  %s: %s%s\n", f.Name, f.Type.Name, bang)
	}
	b.WriteString("}\n")
	return b.String()
}

// EnumSDL renders every enum type referenced by the given schemas, once each,
// sorted by name.
func EnumSDL(schemas ...Schema) string {
	enums := make(map[string]Type)
	for _, s := range schemas {
		for _, f := range s.Fields {
			if f.Type.isEnum() {
				enums[f.Type.Name] = f.Type
			}
		}
	}

	names := make([]string, 0, len(enums))
	for name := range enums {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "enum %s {\n", name)
		for _, m := range enums[name].Members {
			fmt.Fprintf(&b, "  %s\n", m)
		}
		b.WriteString("}\n")
	}
	return b.String()
}
