package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Cheertaboi/catalog-coupon-service/internal/models"
)

type CouponRepo struct {
	db *sql.DB
}

func NewCouponRepo(db *sql.DB) *CouponRepo {
	return &CouponRepo{db: db}
}

const couponColumns = `id, name, code, discount, discount_unit, minimum_purchase,
		       expires_at, created_at, updated_at`

func (r *CouponRepo) Create(ctx context.Context, in *models.CreateCouponInput) (*models.Coupon, error) {
	query := `
		INSERT INTO coupons (id, name, code, discount, discount_unit, minimum_purchase, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	c := models.Coupon{
		ID:              uuid.New(),
		Name:            in.Name,
		Code:            in.Code,
		Discount:        in.Discount,
		DiscountUnit:    in.DiscountUnit,
		MinimumPurchase: in.MinimumPurchase,
		ExpiresAt:       in.ExpiresAt,
	}

	err := r.db.QueryRowContext(ctx, query,
		c.ID,
		c.Name,
		c.Code,
		c.Discount,
		string(c.DiscountUnit),
		c.MinimumPurchase,
		c.ExpiresAt,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCouponCodeTaken
		}
		// discount and minimum_purchase are NUMERIC(12, 2)
		if isNumericOverflow(err) {
			return nil, ErrValueOutOfRange
		}
		return nil, fmt.Errorf("insert coupon: %w", err)
	}

	return &c, nil
}

func (r *CouponRepo) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	query := `
		SELECT ` + couponColumns + `
		FROM coupons
		WHERE code = $1
	`

	var c models.Coupon
	var unit string
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&c.ID,
		&c.Name,
		&c.Code,
		&c.Discount,
		&unit,
		&c.MinimumPurchase,
		&c.ExpiresAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCouponNotFound
		}
		return nil, fmt.Errorf("get coupon by code: %w", err)
	}
	c.DiscountUnit = models.DiscountUnit(unit)

	return &c, nil
}
