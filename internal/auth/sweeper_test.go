package auth

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSweeperSweepOnce(t *testing.T) {
	store := NewTokenStore()
	revoked := NewRevocationList()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	store.Save("alice", "t1", time.Minute)
	revoked.Revoke("t0", base.Add(-time.Second))
	revoked.Revoke("t2", base.Add(time.Hour))

	s := NewSweeper(store, revoked, time.Minute, zerolog.Nop())
	s.now = func() time.Time { return base.Add(time.Hour - time.Second) }

	storeRemoved, revokedRemoved := s.SweepOnce()
	assert.Equal(t, 1, storeRemoved)
	assert.Equal(t, 1, revokedRemoved)
	assert.True(t, revoked.IsRevoked("t2"))
}

func TestSweeperDisabledReturnsImmediately(t *testing.T) {
	s := NewSweeper(NewTokenStore(), NewRevocationList(), 0, zerolog.Nop())
	done := make(chan struct{})
	go func() {
		s.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled sweeper should return")
	}
}

func TestSweeperStopsOnCancel(t *testing.T) {
	s := NewSweeper(NewTokenStore(), NewRevocationList(), time.Millisecond, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
