package auth

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenStoreSaveOverwrites(t *testing.T) {
	s := NewTokenStore()

	_, ok := s.Get("alice")
	assert.False(t, ok)

	s.Save("alice", "t1", time.Hour)
	s.Save("alice", "t2", time.Hour)

	got, ok := s.Get("alice")
	assert.True(t, ok)
	assert.Equal(t, "t2", got)
	assert.Equal(t, 1, s.Len())
}

func TestTokenStoreConcurrentAccess(t *testing.T) {
	s := NewTokenStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := fmt.Sprintf("user-%d", i%10)
			s.Save(user, fmt.Sprintf("token-%d", i), time.Hour)
			_, _ = s.Get(user)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, s.Len())
	for i := 0; i < 10; i++ {
		_, ok := s.Get(fmt.Sprintf("user-%d", i))
		assert.True(t, ok)
	}
}

func TestTokenStoreSweep(t *testing.T) {
	s := NewTokenStore()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	s.Save("short", "a", time.Minute)
	s.Save("long", "b", time.Hour)
	s.Save("forever", "c", 0)

	assert.Equal(t, 1, s.Sweep(base.Add(2*time.Minute)))
	_, ok := s.Get("short")
	assert.False(t, ok)
	_, ok = s.Get("long")
	assert.True(t, ok)
	_, ok = s.Get("forever")
	assert.True(t, ok)
}
