package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Cheertaboi/catalog-coupon-service/internal/repository"
	"github.com/Cheertaboi/catalog-coupon-service/internal/validation"
)

const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("invalid_body")

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeObject reads a JSON object keeping numbers as json.Number so that
// decimal precision survives decoding.
func decodeObject(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return nil
}

type errorBody struct {
	Error      string                `json:"error"`
	Violations validation.Violations `json:"violations,omitempty"`
}

// statusFor maps service errors to an HTTP status and a stable error code.
func statusFor(err error) (int, string) {
	if _, ok := validation.AsViolations(err); ok {
		return http.StatusBadRequest, "validation_failed"
	}

	switch {
	case errors.Is(err, errInvalidBody):
		return http.StatusBadRequest, "invalid_body"
	case errors.Is(err, repository.ErrValueOutOfRange):
		return http.StatusBadRequest, "value_out_of_range"
	case errors.Is(err, repository.ErrCouponNotFound):
		return http.StatusNotFound, "coupon_not_found"
	case errors.Is(err, repository.ErrCategoryNotFound):
		return http.StatusNotFound, "category_not_found"
	case errors.Is(err, repository.ErrCouponCodeTaken):
		return http.StatusConflict, "coupon_code_taken"
	case errors.Is(err, repository.ErrSlugTaken):
		return http.StatusConflict, "slug_taken"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeError(w http.ResponseWriter, err error) {
	code, msg := statusFor(err)
	body := errorBody{Error: msg}
	if v, ok := validation.AsViolations(err); ok {
		body.Violations = v
	}
	writeJSON(w, code, body)
}
