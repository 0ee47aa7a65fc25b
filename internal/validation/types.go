package validation

import (
	"encoding/json"
	"math"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// Type is the wire type of a field. Coerce converts a raw decoded JSON value
// into the Go value the rules and models work with.
type Type struct {
	Name   string
	Coerce func(v any) (any, bool)
	// Members is set for enum types and only used for schema exposure.
	Members []string
}

var (
	ID       = Type{Name: "ID", Coerce: coerceString}
	String   = Type{Name: "String", Coerce: coerceString}
	Boolean  = Type{Name: "Boolean", Coerce: coerceBool}
	Float    = Type{Name: "Float", Coerce: coerceDecimal}
	DateTime = Type{Name: "DateTime", Coerce: coerceTime}
)

// Enum declares a named enum wire type. Values are carried as strings;
// membership is checked by the OneOf rule.
func Enum(name string, members ...string) Type {
	return Type{Name: name, Coerce: coerceString, Members: members}
}

func (t Type) isEnum() bool {
	return len(t.Members) > 0
}

func coerceString(v any) (any, bool) {
	s, ok := v.(string)
	return s, ok
}

func coerceBool(v any) (any, bool) {
	b, ok := v.(bool)
	return b, ok
}

// maxExponent bounds the base-10 exponent of a Float value. Comparing or
// truncating a decimal rescales it to 10^|exp|, so unbounded exponents are
// rejected before any rule runs.
const maxExponent = 32

func coerceDecimal(v any) (any, bool) {
	d, ok := toDecimal(v)
	if !ok {
		return nil, false
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return nil, false
	}
	return d, true
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(n), true
	case float32:
		if math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat32(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int8:
		return decimal.NewFromInt(int64(n)), true
	case int16:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt32(n), true
	case int64:
		return decimal.NewFromInt(n), true
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(n)), 0), true
	case uint8:
		return decimal.NewFromInt(int64(n)), true
	case uint16:
		return decimal.NewFromInt(int64(n)), true
	case uint32:
		return decimal.NewFromInt(int64(n)), true
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0), true
	case decimal.Decimal:
		return n, true
	default:
		return decimal.Decimal{}, false
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

func coerceTime(v any) (any, bool) {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return nil, false
		}
		return t.UTC(), true
	case string:
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UTC(), true
			}
		}
		return nil, false
	default:
		return nil, false
	}
}
