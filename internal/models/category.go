package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Cheertaboi/catalog-coupon-service/internal/validation"
)

type MainCategory struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	Image          string    `json:"image"`
	IsActive       bool      `json:"isActive"`
	Order          float64   `json:"order"`
	SeoTitle       string    `json:"seoTitle"`
	SeoDescription string    `json:"seoDescription"`
	SeoKeywords    string    `json:"seoKeywords"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// UpdateMainCategoryInput is a validated updateMainCategory argument.
// A nil field means "leave unchanged".
type UpdateMainCategoryInput struct {
	ID             uuid.UUID
	Name           *string
	Slug           *string
	Description    *string
	Image          *string
	IsActive       *bool
	Order          *float64
	SeoTitle       *string
	SeoDescription *string
	SeoKeywords    *string
}

func (in *UpdateMainCategoryInput) IsEmpty() bool {
	return in.Name == nil && in.Slug == nil && in.Description == nil &&
		in.Image == nil && in.IsActive == nil && in.Order == nil &&
		in.SeoTitle == nil && in.SeoDescription == nil && in.SeoKeywords == nil
}

func optionalString(name string) validation.Field {
	return validation.Field{Name: name, Type: validation.String}
}

var UpdateMainCategorySchema = validation.Schema{
	Name: "UpdateMainCategoryInput",
	Fields: []validation.Field{
		{Name: "id", Type: validation.ID, Required: true, Rules: []validation.Rule{validation.UUID()}},
		optionalString("name"),
		optionalString("slug"),
		optionalString("description"),
		optionalString("image"),
		{Name: "isActive", Type: validation.Boolean},
		{Name: "order", Type: validation.Float},
		optionalString("seoTitle"),
		optionalString("seoDescription"),
		optionalString("seoKeywords"),
	},
}

func ParseUpdateMainCategoryInput(raw map[string]any) (*UpdateMainCategoryInput, error) {
	values, err := validation.Validate(UpdateMainCategorySchema, raw)
	if err != nil {
		return nil, err
	}

	in := &UpdateMainCategoryInput{
		ID:             uuid.MustParse(values["id"].(string)),
		Name:           stringValue(values, "name"),
		Slug:           stringValue(values, "slug"),
		Description:    stringValue(values, "description"),
		Image:          stringValue(values, "image"),
		SeoTitle:       stringValue(values, "seoTitle"),
		SeoDescription: stringValue(values, "seoDescription"),
		SeoKeywords:    stringValue(values, "seoKeywords"),
	}
	if v, ok := values["isActive"]; ok {
		b := v.(bool)
		in.IsActive = &b
	}
	if v, ok := values["order"]; ok {
		f := v.(decimal.Decimal).InexactFloat64()
		in.Order = &f
	}

	return in, nil
}

func stringValue(values validation.Values, field string) *string {
	v, ok := values[field]
	if !ok {
		return nil
	}
	s := v.(string)
	return &s
}
