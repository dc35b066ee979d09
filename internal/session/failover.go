package session

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// FailoverRepository prefers the primary store and degrades to the fallback
// on error. After a minute it probes the primary again.
type FailoverRepository struct {
	primary   Repository
	fallback  Repository
	logger    *zerolog.Logger
	isDown    atomic.Bool
	lastCheck time.Time
}

func NewFailoverRepository(primary, fallback Repository, logger *zerolog.Logger) *FailoverRepository {
	return &FailoverRepository{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (r *FailoverRepository) Get(ctx context.Context, key string) (string, error) {
	if !r.isDown.Load() {
		val, err := r.primary.Get(ctx, key)
		if err == nil {
			return val, nil
		}
		r.markDown(err)
	}

	// Try to recover after 1 minute
	if r.isDown.Load() && time.Since(r.lastCheck) > time.Minute {
		val, err := r.primary.Get(ctx, key)
		if err == nil {
			r.isDown.Store(false)
			return val, nil
		}
		r.lastCheck = time.Now()
	}

	return r.fallback.Get(ctx, key)
}

func (r *FailoverRepository) Set(ctx context.Context, key, value string) error {
	if !r.isDown.Load() {
		if err := r.primary.Set(ctx, key, value); err == nil {
			// mirror into the fallback so a later failover still sees it
			_ = r.fallback.Set(ctx, key, value)
			return nil
		} else {
			r.markDown(err)
		}
	}
	return r.fallback.Set(ctx, key, value)
}

func (r *FailoverRepository) Delete(ctx context.Context, keys ...string) error {
	if !r.isDown.Load() {
		if err := r.primary.Delete(ctx, keys...); err == nil {
			_ = r.fallback.Delete(ctx, keys...)
			return nil
		} else {
			r.markDown(err)
		}
	}
	return r.fallback.Delete(ctx, keys...)
}

func (r *FailoverRepository) markDown(err error) {
	r.logger.Error().Err(err).Msg("Primary session repository failed, falling back to memory")
	r.isDown.Store(true)
	r.lastCheck = time.Now()
}
