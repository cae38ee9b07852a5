package provider

import (
	"context"
	"testing"
	"time"

	"github.com/shandysiswandi/goamviajes/internal/amviajes/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitedProvider(t *testing.T) {
	p := NewRateLimitedProvider(NewMockProvider(NewSeededRand(1), nil), 40*time.Millisecond)
	assert.Equal(t, "mock", p.Name())

	q := cordobaToBuenosAires(true, entity.PassengerCounts{Adults: 1})
	start := time.Now()
	_, err := p.Search(context.Background(), q)
	require.NoError(t, err)
	_, err = p.Search(context.Background(), q)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestRateLimitedProvider_ContextDeadline(t *testing.T) {
	p := NewRateLimitedProvider(NewMockProvider(NewSeededRand(1), nil), time.Second)
	q := cordobaToBuenosAires(true, entity.PassengerCounts{Adults: 1})

	_, err := p.Search(context.Background(), q)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = p.Search(ctx, q)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSlotLimiter_Reserve(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := &slotLimiter{interval: 100 * time.Millisecond, now: func() time.Time { return now }}

	assert.Equal(t, time.Duration(0), l.reserve())
	assert.Equal(t, 100*time.Millisecond, l.reserve())
	assert.Equal(t, 200*time.Millisecond, l.reserve())

	now = now.Add(time.Second)
	assert.Equal(t, time.Duration(0), l.reserve())
}

func TestNewRateLimitedProvider_NoInterval(t *testing.T) {
	mock := NewMockProvider(NewSeededRand(1), nil)
	assert.Same(t, mock, NewRateLimitedProvider(mock, 0))
}
