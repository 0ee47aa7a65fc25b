package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Cheertaboi/catalog-coupon-service/internal/cache"
	"github.com/Cheertaboi/catalog-coupon-service/internal/models"
	"github.com/Cheertaboi/catalog-coupon-service/internal/repository"
	"github.com/Cheertaboi/catalog-coupon-service/internal/validation"
)

type fakeCouponRepo struct {
	created []*models.CreateCouponInput
	byCode  map[string]*models.Coupon
	err     error
	lookups int
}

func (f *fakeCouponRepo) Create(_ context.Context, in *models.CreateCouponInput) (*models.Coupon, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, in)
	return &models.Coupon{ID: uuid.New(), Name: in.Name, Code: in.Code, Discount: in.Discount, DiscountUnit: in.DiscountUnit}, nil
}

func (f *fakeCouponRepo) GetByCode(_ context.Context, code string) (*models.Coupon, error) {
	f.lookups++
	if c, ok := f.byCode[code]; ok {
		return c, nil
	}
	return nil, repository.ErrCouponNotFound
}

type fakeCategoryRepo struct {
	got *models.UpdateMainCategoryInput
	err error
}

func (f *fakeCategoryRepo) UpdateMain(_ context.Context, in *models.UpdateMainCategoryInput) (*models.MainCategory, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.got = in
	return &models.MainCategory{ID: in.ID}, nil
}

func rawCoupon() map[string]any {
	return map[string]any{
		"name":         "Summer sale",
		"code":         "SUMMER10",
		"discount":     json.Number("15"),
		"discountUnit": "FLAT",
		"expiresAt":    "2030-06-30",
	}
}

func TestCouponService_Create(t *testing.T) {
	repo := &fakeCouponRepo{}
	c := cache.NewCouponCache()
	svc := NewCouponService(repo, c, zap.NewNop())

	coupon, err := svc.Create(context.Background(), rawCoupon())
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "SUMMER10", coupon.Code)

	cached, ok := c.Get("SUMMER10")
	require.True(t, ok)
	assert.Same(t, coupon, cached)
}

func TestCouponService_Create_InvalidNeverReachesRepo(t *testing.T) {
	repo := &fakeCouponRepo{}
	svc := NewCouponService(repo, cache.NewCouponCache(), zap.NewNop())

	raw := rawCoupon()
	raw["code"] = "ab"

	_, err := svc.Create(context.Background(), raw)
	require.ErrorIs(t, err, validation.ErrInvalidInput)
	assert.Empty(t, repo.created)
}

func TestCouponService_Create_RepoError(t *testing.T) {
	repo := &fakeCouponRepo{err: repository.ErrCouponCodeTaken}
	c := cache.NewCouponCache()
	svc := NewCouponService(repo, c, zap.NewNop())

	_, err := svc.Create(context.Background(), rawCoupon())
	require.ErrorIs(t, err, repository.ErrCouponCodeTaken)
	assert.Zero(t, c.Len())
}

func TestCouponService_GetByCode_UsesCache(t *testing.T) {
	stored := &models.Coupon{Code: "WINTER"}
	repo := &fakeCouponRepo{byCode: map[string]*models.Coupon{"WINTER": stored}}
	svc := NewCouponService(repo, cache.NewCouponCache(), zap.NewNop())

	for i := 0; i < 3; i++ {
		c, err := svc.GetByCode(context.Background(), "WINTER")
		require.NoError(t, err)
		assert.Same(t, stored, c)
	}
	assert.Equal(t, 1, repo.lookups)

	_, err := svc.GetByCode(context.Background(), "MISSING")
	require.ErrorIs(t, err, repository.ErrCouponNotFound)
}

func TestCategoryService_UpdateMain(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo, zap.NewNop())
	id := uuid.New()

	c, err := svc.UpdateMain(context.Background(), map[string]any{"id": id.String(), "slug": "boots"})
	require.NoError(t, err)
	assert.Equal(t, id, c.ID)

	require.NotNil(t, repo.got)
	require.NotNil(t, repo.got.Slug)
	assert.Equal(t, "boots", *repo.got.Slug)
	assert.Nil(t, repo.got.Name)
}

func TestCategoryService_UpdateMain_Invalid(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo, zap.NewNop())

	_, err := svc.UpdateMain(context.Background(), map[string]any{"id": "not-a-uuid"})
	v, ok := validation.AsViolations(err)
	require.True(t, ok)
	assert.Equal(t, validation.RuleUUID, v[0].Rule)
	assert.Nil(t, repo.got)
}

func TestCategoryService_UpdateMain_NotFound(t *testing.T) {
	repo := &fakeCategoryRepo{err: repository.ErrCategoryNotFound}
	svc := NewCategoryService(repo, zap.NewNop())

	_, err := svc.UpdateMain(context.Background(), map[string]any{"id": uuid.NewString()})
	require.ErrorIs(t, err, repository.ErrCategoryNotFound)
}
