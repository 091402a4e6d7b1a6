package session

import (
	"context"
	"sync/atomic"
	"time"

	"oceandesk/internal/domain"

	"github.com/rs/zerolog"
)

// FailoverStore reads and writes through a primary store and falls back to a
// secondary when the primary errors, retrying the primary after a minute.
// A desk losing its Redis keeps a working (if non-durable) session slot.
type FailoverStore struct {
	primary   domain.TokenStore
	fallback  domain.TokenStore
	logger    *zerolog.Logger
	isDown    atomic.Bool
	lastCheck time.Time
}

func NewFailoverStore(primary, fallback domain.TokenStore, logger *zerolog.Logger) *FailoverStore {
	return &FailoverStore{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (s *FailoverStore) Get(ctx context.Context) (string, error) {
	if !s.isDown.Load() {
		token, err := s.primary.Get(ctx)
		if err == nil {
			return token, nil
		}
		s.logger.Error().Err(err).Msg("Primary token store failed, falling back")
		s.isDown.Store(true)
		s.lastCheck = time.Now()
	}

	// Try to recover after 1 minute
	if s.isDown.Load() && time.Since(s.lastCheck) > time.Minute {
		token, err := s.primary.Get(ctx)
		if err == nil {
			s.isDown.Store(false)
			return token, nil
		}
		s.lastCheck = time.Now()
	}

	return s.fallback.Get(ctx)
}

func (s *FailoverStore) Set(ctx context.Context, token string) error {
	if !s.isDown.Load() {
		err := s.primary.Set(ctx, token)
		if err == nil {
			return nil
		}
		s.logger.Error().Err(err).Msg("Primary token store failed, falling back")
		s.isDown.Store(true)
		s.lastCheck = time.Now()
	}

	return s.fallback.Set(ctx, token)
}

func (s *FailoverStore) Clear(ctx context.Context) error {
	if !s.isDown.Load() {
		err := s.primary.Clear(ctx)
		if err == nil {
			return nil
		}
		s.logger.Error().Err(err).Msg("Primary token store failed, falling back")
		s.isDown.Store(true)
		s.lastCheck = time.Now()
	}

	return s.fallback.Clear(ctx)
}
