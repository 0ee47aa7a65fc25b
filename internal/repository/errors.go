package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrCouponNotFound   = errors.New("coupon not found")
	ErrCouponCodeTaken  = errors.New("coupon code already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrSlugTaken        = errors.New("category slug already exists")
	ErrValueOutOfRange  = errors.New("value out of range")
)

const (
	uniqueViolation = pq.ErrorCode("23505")
	numericOverflow = pq.ErrorCode("22003")
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func isNumericOverflow(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == numericOverflow
}
