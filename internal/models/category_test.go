package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/catalog-coupon-service/internal/validation"
)

const categoryID = "3f2c1e1a-7d35-4c61-9a8e-0f5a4b1c2d3e"

func TestParseUpdateMainCategoryInput_OnlyID(t *testing.T) {
	in, err := ParseUpdateMainCategoryInput(map[string]any{"id": categoryID})
	require.NoError(t, err)

	assert.Equal(t, uuid.MustParse(categoryID), in.ID)
	assert.True(t, in.IsEmpty())
	assert.Equal(t, &UpdateMainCategoryInput{ID: uuid.MustParse(categoryID)}, in)
}

func TestParseUpdateMainCategoryInput_AllFields(t *testing.T) {
	raw := map[string]any{
		"id":             categoryID,
		"name":           "Shoes",
		"slug":           "shoes",
		"description":    "",
		"image":          "/img/shoes.png",
		"isActive":       false,
		"order":          json.Number("2.5"),
		"seoTitle":       "Shoes",
		"seoDescription": "All shoes",
		"seoKeywords":    "shoes,boots",
	}

	in, err := ParseUpdateMainCategoryInput(raw)
	require.NoError(t, err)
	require.False(t, in.IsEmpty())

	require.NotNil(t, in.Name)
	assert.Equal(t, "Shoes", *in.Name)
	require.NotNil(t, in.Description)
	assert.Equal(t, "", *in.Description)
	require.NotNil(t, in.IsActive)
	assert.False(t, *in.IsActive)
	require.NotNil(t, in.Order)
	assert.Equal(t, 2.5, *in.Order)
	require.NotNil(t, in.SeoKeywords)
	assert.Equal(t, "shoes,boots", *in.SeoKeywords)
}

func TestParseUpdateMainCategoryInput_NullMeansUnchanged(t *testing.T) {
	in, err := ParseUpdateMainCategoryInput(map[string]any{"id": categoryID, "name": nil, "order": nil})
	require.NoError(t, err)
	assert.True(t, in.IsEmpty())
}

func TestParseUpdateMainCategoryInput_MissingID(t *testing.T) {
	in, err := ParseUpdateMainCategoryInput(map[string]any{"name": "Shoes"})
	require.Error(t, err)
	require.Nil(t, in)

	v, ok := validation.AsViolations(err)
	require.True(t, ok)
	require.Len(t, v, 1)
	assert.Equal(t, "id", v[0].Field)
	assert.Equal(t, validation.RequiredFieldMissing, v[0].Kind)
}

func TestParseUpdateMainCategoryInput_InvalidID(t *testing.T) {
	_, err := ParseUpdateMainCategoryInput(map[string]any{"id": "not-a-uuid"})

	v, ok := validation.AsViolations(err)
	require.True(t, ok)
	require.Len(t, v, 1)
	assert.Equal(t, validation.Violation{
		Field:   "id",
		Rule:    validation.RuleUUID,
		Kind:    validation.ConstraintViolation,
		Message: "id must be a UUID",
	}, v[0])
}

func TestParseUpdateMainCategoryInput_WrongTypes(t *testing.T) {
	raw := map[string]any{
		"id":       categoryID,
		"name":     12,
		"isActive": "true",
		"order":    "1",
	}

	_, err := ParseUpdateMainCategoryInput(raw)
	v, ok := validation.AsViolations(err)
	require.True(t, ok)
	require.Len(t, v, 3)

	assert.Equal(t, "name must be a string", v[0].Message)
	assert.Equal(t, "isActive must be a boolean value", v[1].Message)
	assert.Equal(t, "order must be a number", v[2].Message)
}

func TestParseUpdateMainCategoryInput_ExtremeOrderRejected(t *testing.T) {
	for _, n := range []string{"1e-20000000", "1e20000000"} {
		_, err := ParseUpdateMainCategoryInput(map[string]any{"id": categoryID, "order": json.Number(n)})
		v, ok := validation.AsViolations(err)
		require.True(t, ok, n)
		require.Len(t, v, 1)
		assert.Equal(t, "order", v[0].Field)
		assert.Equal(t, validation.RuleType, v[0].Rule)
	}
}

func TestUpdateMainCategorySchemaSDL(t *testing.T) {
	sdl := UpdateMainCategorySchema.SDL()
	assert.Contains(t, sdl, "  id: ID!\n")
	assert.Contains(t, sdl, "  isActive: Boolean\n")
	assert.Contains(t, sdl, "  order: Float\n")
}
