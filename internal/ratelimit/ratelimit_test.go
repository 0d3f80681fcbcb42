package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryLimiter_Allow(t *testing.T) {
	limiter := NewInMemoryLimiter(1, time.Hour, 2)

	assert.True(t, limiter.Allow("cdn.example.com"))
	assert.True(t, limiter.Allow("cdn.example.com"))
	assert.False(t, limiter.Allow("cdn.example.com"))

	assert.True(t, limiter.Allow("api.telegram.org"), "keys have separate buckets")
}

func TestInMemoryLimiter_WaitRespectsContext(t *testing.T) {
	limiter := NewInMemoryLimiter(1, time.Hour, 1)
	require.NoError(t, limiter.Wait(context.Background(), "host"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.Error(t, limiter.Wait(ctx, "host"))
}

func TestInMemoryLimiter_Unlimited(t *testing.T) {
	limiter := NewInMemoryLimiter(0, time.Second, 0)

	for i := 0; i < 100; i++ {
		require.True(t, limiter.Allow("host"))
	}
}
