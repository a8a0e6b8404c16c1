package auth

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Sweeper periodically drops expired entries from the token store and the
// revocation list. An expired token is rejected regardless of either map, so
// sweeping does not change who gets admitted.
type Sweeper struct {
	store    *TokenStore
	revoked  *RevocationList
	interval time.Duration
	log      zerolog.Logger
	now      func() time.Time
}

func NewSweeper(store *TokenStore, revoked *RevocationList, interval time.Duration, log zerolog.Logger) *Sweeper {
	return &Sweeper{
		store:    store,
		revoked:  revoked,
		interval: interval,
		log:      log.With().Str("component", "token-sweeper").Logger(),
		now:      time.Now,
	}
}

// Run blocks until ctx is done. A non-positive interval disables sweeping.
func (s *Sweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		return
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepOnce()
		}
	}
}

func (s *Sweeper) SweepOnce() (storeRemoved, revokedRemoved int) {
	now := s.now()
	storeRemoved = s.store.Sweep(now)
	revokedRemoved = s.revoked.Sweep(now)
	if storeRemoved > 0 || revokedRemoved > 0 {
		s.log.Debug().
			Int("store_removed", storeRemoved).
			Int("revoked_removed", revokedRemoved).
			Msg("swept expired tokens")
	}
	return storeRemoved, revokedRemoved
}
