package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Cheertaboi/catalog-coupon-service/internal/validation"
)

type DiscountUnit string

const (
	DiscountUnitFlat    DiscountUnit = "FLAT"
	DiscountUnitPercent DiscountUnit = "PERCENT"
)

var DiscountUnits = []string{string(DiscountUnitFlat), string(DiscountUnitPercent)}

type Coupon struct {
	ID              uuid.UUID           `json:"id"`
	Name            string              `json:"name"`
	Code            string              `json:"code"`
	Discount        decimal.Decimal     `json:"discount"`
	DiscountUnit    DiscountUnit        `json:"discountUnit"`
	MinimumPurchase decimal.NullDecimal `json:"minimumPurchase"`
	ExpiresAt       time.Time           `json:"expiresAt"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// MarshalJSON writes discount and minimumPurchase as JSON numbers, matching
// their Float type in the GraphQL schema.
func (c Coupon) MarshalJSON() ([]byte, error) {
	type coupon Coupon

	var minimumPurchase *json.Number
	if c.MinimumPurchase.Valid {
		n := json.Number(c.MinimumPurchase.Decimal.String())
		minimumPurchase = &n
	}

	return json.Marshal(struct {
		coupon
		Discount        json.Number  `json:"discount"`
		MinimumPurchase *json.Number `json:"minimumPurchase"`
	}{
		coupon:          coupon(c),
		Discount:        json.Number(c.Discount.String()),
		MinimumPurchase: minimumPurchase,
	})
}

// CreateCouponInput is a validated createCoupon argument. The unit does not
// constrain the discount range: a PERCENT coupon above 100 passes here.
type CreateCouponInput struct {
	Name            string
	Code            string
	Discount        decimal.Decimal
	DiscountUnit    DiscountUnit
	MinimumPurchase decimal.NullDecimal
	ExpiresAt       time.Time
}

var CreateCouponSchema = validation.Schema{
	Name: "CreateCouponInput",
	Fields: []validation.Field{
		{
			Name:     "name",
			Type:     validation.String,
			Required: true,
			Rules:    []validation.Rule{validation.MinLength(3), validation.MaxLength(50)},
		},
		{
			Name:     "code",
			Type:     validation.String,
			Required: true,
			Rules:    []validation.Rule{validation.MinLength(3), validation.MaxLength(20)},
		},
		{
			Name:     "discount",
			Type:     validation.Float,
			Required: true,
			Rules: []validation.Rule{
				validation.MaxDecimalPlaces(2),
				validation.Min(decimal.RequireFromString("0.1")),
			},
		},
		{
			Name:     "discountUnit",
			Type:     validation.Enum("DiscountUnit", DiscountUnits...),
			Required: true,
			Rules:    []validation.Rule{validation.OneOf(DiscountUnits...)},
		},
		{
			Name: "minimumPurchase",
			Type: validation.Float,
			Rules: []validation.Rule{
				validation.MaxDecimalPlaces(2),
				validation.Min(decimal.Zero),
			},
		},
		{
			Name:     "expiresAt",
			Type:     validation.DateTime,
			Required: true,
		},
	},
	Messages: couponMessages,
}

var couponMessages = validation.Messages{
	{Field: "name", Rule: validation.RuleRequired}:  "Name is required",
	{Field: "name", Rule: validation.RuleType}:      "Name must be a string",
	{Field: "name", Rule: validation.RuleMinLength}: "Name must be at least 3 characters long",
	{Field: "name", Rule: validation.RuleMaxLength}: "Name must be less than 50 characters",

	{Field: "code", Rule: validation.RuleRequired}:  "Code is required",
	{Field: "code", Rule: validation.RuleType}:      "Code must be a string",
	{Field: "code", Rule: validation.RuleMinLength}: "Code must be at least 3 characters long",
	{Field: "code", Rule: validation.RuleMaxLength}: "Code must be less than 20 characters",

	{Field: "discount", Rule: validation.RuleRequired}:         "Discount is required",
	{Field: "discount", Rule: validation.RuleType}:             "Discount must be a number with at most 2 decimal places",
	{Field: "discount", Rule: validation.RuleMaxDecimalPlaces}: "Discount must be a number with at most 2 decimal places",
	{Field: "discount", Rule: validation.RuleMin}:              "Discount must be at least 0.1",

	{Field: "discountUnit", Rule: validation.RuleRequired}: "Discount unit is required",
	{Field: "discountUnit", Rule: validation.RuleType}:     "Invalid discount unit, must be FLAT or PERCENT",
	{Field: "discountUnit", Rule: validation.RuleEnum}:     "Invalid discount unit, must be FLAT or PERCENT",

	{Field: "minimumPurchase", Rule: validation.RuleType}:             "Minimum purchase must be a number with at most 2 decimal places",
	{Field: "minimumPurchase", Rule: validation.RuleMaxDecimalPlaces}: "Minimum purchase must be a number with at most 2 decimal places",
	{Field: "minimumPurchase", Rule: validation.RuleMin}:              "Minimum purchase must be at least 0",

	{Field: "expiresAt", Rule: validation.RuleRequired}: "Expiry date is required",
	{Field: "expiresAt", Rule: validation.RuleType}:     "Expiry date must be a valid date",
}

func ParseCreateCouponInput(raw map[string]any) (*CreateCouponInput, error) {
	values, err := validation.Validate(CreateCouponSchema, raw)
	if err != nil {
		return nil, err
	}

	in := &CreateCouponInput{
		Name:         values["name"].(string),
		Code:         values["code"].(string),
		Discount:     values["discount"].(decimal.Decimal),
		DiscountUnit: DiscountUnit(values["discountUnit"].(string)),
		ExpiresAt:    values["expiresAt"].(time.Time),
	}
	if v, ok := values["minimumPurchase"]; ok {
		in.MinimumPurchase = decimal.NewNullDecimal(v.(decimal.Decimal))
	}

	return in, nil
}
