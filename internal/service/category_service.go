package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Cheertaboi/catalog-coupon-service/internal/models"
	"github.com/Cheertaboi/catalog-coupon-service/internal/validation"
)

type CategoryRepo interface {
	UpdateMain(ctx context.Context, in *models.UpdateMainCategoryInput) (*models.MainCategory, error)
}

type CategoryService struct {
	repo   CategoryRepo
	logger *zap.Logger
}

func NewCategoryService(repo CategoryRepo, logger *zap.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

func (s *CategoryService) UpdateMain(ctx context.Context, raw map[string]any) (*models.MainCategory, error) {
	in, err := models.ParseUpdateMainCategoryInput(raw)
	if err != nil {
		if v, ok := validation.AsViolations(err); ok {
			s.logger.Info("update main category rejected", zap.Strings("fields", v.Fields()))
		}
		return nil, err
	}

	c, err := s.repo.UpdateMain(ctx, in)
	if err != nil {
		s.logger.Warn("update main category failed", zap.String("category_id", in.ID.String()), zap.Error(err))
		return nil, err
	}

	s.logger.Info("main category updated", zap.String("category_id", c.ID.String()))
	return c, nil
}
