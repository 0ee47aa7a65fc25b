package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Cheertaboi/catalog-coupon-service/internal/models"
)

type CouponService interface {
	Create(ctx context.Context, raw map[string]any) (*models.Coupon, error)
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
}

type CouponHandler struct {
	service CouponService
	logger  *zap.Logger
}

func NewCouponHandler(service CouponService, logger *zap.Logger) *CouponHandler {
	return &CouponHandler{service: service, logger: logger}
}

// CreateCoupon handles POST /admin/coupons
func (h *CouponHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := decodeObject(r.Body, &raw); err != nil {
		writeError(w, err)
		return
	}

	coupon, err := h.service.Create(r.Context(), raw)
	if err != nil {
		if code, _ := statusFor(err); code == http.StatusInternalServerError {
			h.logger.Error("create coupon", zap.Error(err))
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, coupon)
}

// GetCoupon handles GET /coupons/{code}
func (h *CouponHandler) GetCoupon(w http.ResponseWriter, r *http.Request) {
	coupon, err := h.service.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		if code, _ := statusFor(err); code == http.StatusInternalServerError {
			h.logger.Error("get coupon", zap.Error(err))
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, coupon)
}
