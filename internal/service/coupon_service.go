package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Cheertaboi/catalog-coupon-service/internal/cache"
	"github.com/Cheertaboi/catalog-coupon-service/internal/models"
	"github.com/Cheertaboi/catalog-coupon-service/internal/validation"
)

// Repos required by service (use interfaces to allow mocking)
type CouponRepo interface {
	Create(ctx context.Context, in *models.CreateCouponInput) (*models.Coupon, error)
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
}

type CouponService struct {
	repo   CouponRepo
	cache  *cache.CouponCache
	logger *zap.Logger
}

func NewCouponService(repo CouponRepo, cache *cache.CouponCache, logger *zap.Logger) *CouponService {
	return &CouponService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Create validates raw createCoupon arguments and persists the coupon.
// Invalid input is returned as validation.Violations and never reaches the repo.
func (s *CouponService) Create(ctx context.Context, raw map[string]any) (*models.Coupon, error) {
	in, err := models.ParseCreateCouponInput(raw)
	if err != nil {
		if v, ok := validation.AsViolations(err); ok {
			s.logger.Info("create coupon rejected",
				zap.Strings("fields", v.Fields()),
				zap.Int("violations", len(v)),
			)
		}
		return nil, err
	}

	coupon, err := s.repo.Create(ctx, in)
	if err != nil {
		s.logger.Warn("create coupon failed", zap.String("code", in.Code), zap.Error(err))
		return nil, err
	}

	s.cache.Set(coupon)
	s.logger.Info("coupon created",
		zap.String("coupon_id", coupon.ID.String()),
		zap.String("code", coupon.Code),
	)

	return coupon, nil
}

func (s *CouponService) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	if c, ok := s.cache.Get(code); ok {
		return c, nil
	}

	c, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.logger.Debug("get coupon failed", zap.String("code", code), zap.Error(err))
		}
		return nil, err
	}

	s.cache.Set(c)
	return c, nil
}
