package adapter

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimited wraps an Adapter and throttles backend calls with a token
// bucket. Useful in front of shared object stores where a bulk migration
// must not starve interactive traffic.
type RateLimited struct {
	inner   Adapter
	limiter *rate.Limiter
}

// NewRateLimited creates a rate-limited wrapper around inner.
// opsPerSec is the sustained operation rate; burst is the bucket size.
func NewRateLimited(inner Adapter, opsPerSec float64, burst int) *RateLimited {
	return &RateLimited{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(opsPerSec), burst),
	}
}

// Save waits for a token and delegates.
func (r *RateLimited) Save(ctx context.Context, rec *Record) (bool, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return false, err
	}
	return r.inner.Save(ctx, rec)
}

// Load waits for a token and delegates.
func (r *RateLimited) Load(ctx context.Context, key string) (*Record, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return r.inner.Load(ctx, key)
}

// Init delegates without consuming a token: constructing a record does not
// touch the backend.
func (r *RateLimited) Init(ctx context.Context, key string, touch bool) (*Record, error) {
	return r.inner.Init(ctx, key, touch)
}

// Delete waits for a token and delegates.
func (r *RateLimited) Delete(ctx context.Context, key string) (bool, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return false, err
	}
	return r.inner.Delete(ctx, key)
}
