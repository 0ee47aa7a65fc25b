package handlers

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/Cheertaboi/catalog-coupon-service/internal/models"
	"github.com/Cheertaboi/catalog-coupon-service/internal/validation"
)

const (
	OpCreateCoupon       = "createCoupon"
	OpUpdateMainCategory = "updateMainCategory"
)

// graphQLRequest is a persisted-operation style request: the operation is
// selected by name and its argument is read from variables.input. The query
// document itself is not parsed.
type graphQLRequest struct {
	Query         string `json:"query"`
	OperationName string `json:"operationName"`
	Variables     struct {
		Input map[string]any `json:"input"`
	} `json:"variables"`
}

type graphQLError struct {
	Message    string         `json:"message"`
	Path       []string       `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

type graphQLResponse struct {
	Data   map[string]any `json:"data"`
	Errors []graphQLError `json:"errors,omitempty"`
}

type operation func(ctx context.Context, input map[string]any) (any, error)

type GraphQLHandler struct {
	operations map[string]operation
	logger     *zap.Logger
}

func NewGraphQLHandler(coupons CouponService, categories CategoryService, logger *zap.Logger) *GraphQLHandler {
	return &GraphQLHandler{
		operations: map[string]operation{
			OpCreateCoupon: func(ctx context.Context, input map[string]any) (any, error) {
				return coupons.Create(ctx, input)
			},
			OpUpdateMainCategory: func(ctx context.Context, input map[string]any) (any, error) {
				return categories.UpdateMain(ctx, input)
			},
		},
		logger: logger,
	}
}

// Serve handles POST /graphql
func (h *GraphQLHandler) Serve(w http.ResponseWriter, r *http.Request) {
	var req graphQLRequest
	if err := decodeObject(r.Body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, graphQLResponse{Errors: []graphQLError{{
			Message:    "request body must be a JSON object",
			Extensions: map[string]any{"code": "BAD_REQUEST"},
		}}})
		return
	}

	op, ok := h.operations[req.OperationName]
	if !ok {
		writeJSON(w, http.StatusBadRequest, graphQLResponse{Errors: []graphQLError{{
			Message:    fmt.Sprintf("unknown operation %q", req.OperationName),
			Extensions: map[string]any{"code": "GRAPHQL_VALIDATION_FAILED"},
		}}})
		return
	}

	result, err := op(r.Context(), req.Variables.Input)
	if err != nil {
		writeJSON(w, http.StatusOK, graphQLResponse{Errors: h.toGraphQLErrors(req.OperationName, err)})
		return
	}

	writeJSON(w, http.StatusOK, graphQLResponse{Data: map[string]any{req.OperationName: result}})
}

func (h *GraphQLHandler) toGraphQLErrors(opName string, err error) []graphQLError {
	if v, ok := validation.AsViolations(err); ok {
		out := make([]graphQLError, 0, len(v))
		for _, violation := range v {
			out = append(out, graphQLError{
				Message: violation.Message,
				Path:    []string{opName},
				Extensions: map[string]any{
					"code":  "BAD_USER_INPUT",
					"field": violation.Field,
					"rule":  violation.Rule,
					"kind":  violation.Kind,
				},
			})
		}
		return out
	}

	status, msg := statusFor(err)
	code := "INTERNAL_SERVER_ERROR"
	switch status {
	case http.StatusBadRequest:
		code = "BAD_USER_INPUT"
	case http.StatusNotFound:
		code = "NOT_FOUND"
	case http.StatusConflict:
		code = "CONFLICT"
	default:
		h.logger.Error("graphql operation", zap.String("operation", opName), zap.Error(err))
	}

	return []graphQLError{{
		Message:    msg,
		Path:       []string{opName},
		Extensions: map[string]any{"code": code},
	}}
}

// Schema handles GET /schema.graphql
func Schema(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(SDL()))
}

func SDL() string {
	return validation.EnumSDL(models.CreateCouponSchema, models.UpdateMainCategorySchema) + "\n" +
		models.CreateCouponSchema.SDL() + "\n" +
		models.UpdateMainCategorySchema.SDL()
}
