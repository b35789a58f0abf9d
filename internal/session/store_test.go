package session_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linfit/internal/regression"
	"linfit/internal/session"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newClockedStore(ttl time.Duration, max int) (*session.Store, *fakeClock) {
	clk := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	st := session.NewStore()
	st.TTL = ttl
	st.MaxSessions = max
	st.SetClock(clk.now)
	return st, clk
}

func TestStoreSweepDropsIdleSessions(t *testing.T) {
	st, clk := newClockedStore(time.Minute, 0)
	idle, _, err := st.Create()
	require.NoError(t, err)
	busy, _, err := st.Create()
	require.NoError(t, err)

	clk.advance(40 * time.Second)
	_, err = st.Update(busy, func(s *session.State) error { s.Nudge(1, 0); return nil })
	require.NoError(t, err)

	clk.advance(40 * time.Second)
	assert.Equal(t, 1, st.Sweep())
	assert.Equal(t, 1, st.Len())

	_, err = st.Get(idle)
	assert.True(t, errors.Is(err, session.ErrNotFound))
	s, err := st.Get(busy)
	require.NoError(t, err)
	assert.InDelta(t, 1.1, s.Line.Slope, 1e-9)
}

func TestStoreExpiredSessionIsNotFound(t *testing.T) {
	st, clk := newClockedStore(time.Minute, 0)
	id, _, err := st.Create()
	require.NoError(t, err)

	clk.advance(time.Minute + time.Second)
	_, err = st.Update(id, func(s *session.State) error { return s.Set(regression.Line{Slope: 2}) })
	assert.True(t, errors.Is(err, session.ErrNotFound))
	assert.Equal(t, 0, st.Len(), "expired entry is removed on access")
}

func TestStoreCap(t *testing.T) {
	st, clk := newClockedStore(time.Minute, 2)
	_, _, err := st.Create()
	require.NoError(t, err)
	_, _, err = st.Create()
	require.NoError(t, err)

	_, _, err = st.Create()
	assert.True(t, errors.Is(err, session.ErrFull))
	assert.Equal(t, 2, st.Len())

	clk.advance(2 * time.Minute)
	_, _, err = st.Create()
	require.NoError(t, err, "expired sessions make room")
	assert.Equal(t, 1, st.Len())
}

func TestStoreZeroLimitsKeepEverything(t *testing.T) {
	st, clk := newClockedStore(0, 0)
	for i := 0; i < 5; i++ {
		_, _, err := st.Create()
		require.NoError(t, err)
	}
	clk.advance(24 * time.Hour)
	assert.Equal(t, 0, st.Sweep())
	assert.Equal(t, 5, st.Len())
}
