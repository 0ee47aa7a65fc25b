package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Cheertaboi/catalog-coupon-service/internal/models"
)

type CategoryService interface {
	UpdateMain(ctx context.Context, raw map[string]any) (*models.MainCategory, error)
}

type CategoryHandler struct {
	service CategoryService
	logger  *zap.Logger
}

func NewCategoryHandler(service CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{service: service, logger: logger}
}

// UpdateMainCategory handles PATCH /admin/categories/{id}
// The path id takes precedence over any id in the body.
func (h *CategoryHandler) UpdateMainCategory(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := decodeObject(r.Body, &raw); err != nil {
		writeError(w, err)
		return
	}
	if raw == nil {
		raw = map[string]any{}
	}
	raw["id"] = chi.URLParam(r, "id")

	category, err := h.service.UpdateMain(r.Context(), raw)
	if err != nil {
		if code, _ := statusFor(err); code == http.StatusInternalServerError {
			h.logger.Error("update main category", zap.Error(err))
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, category)
}
