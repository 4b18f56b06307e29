package redis

import (
	"context"
	"fmt"
	"time"

	redisclient "pos-backend/cmd/redis"
)

// Repository wraps the Redis counters the sale path depends on.
type Repository interface {
	// NextInvoiceSequence increments and returns the per-day invoice counter.
	// The sequence is monotonic for a given day; rolled-back sales leave gaps,
	// which invoice numbering tolerates.
	NextInvoiceSequence(ctx context.Context, day time.Time) (int64, error)
}

type redis struct {
	// *redis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func (r *redis) NextInvoiceSequence(ctx context.Context, day time.Time) (int64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, fmt.Errorf("redis client not initialized")
	}
	key := "invoice:" + day.Format("20060102")
	seq, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	// First increment of the day sets an expiry so stale counters age out.
	if seq == 1 {
		client.Expire(ctx, key, 48*time.Hour)
	}
	return seq, nil
}
