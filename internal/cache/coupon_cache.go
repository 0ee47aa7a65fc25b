package cache

import (
	"sync"

	"github.com/Cheertaboi/catalog-coupon-service/internal/models"
)

// CouponCache keeps coupons by code.
type CouponCache struct {
	mu    sync.RWMutex
	store map[string]*models.Coupon
}

func NewCouponCache() *CouponCache {
	return &CouponCache{
		store: make(map[string]*models.Coupon),
	}
}

func (c *CouponCache) Get(code string) (*models.Coupon, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, ok := c.store[code]
	return val, ok
}

func (c *CouponCache) Set(coupon *models.Coupon) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[coupon.Code] = coupon
}

func (c *CouponCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}
