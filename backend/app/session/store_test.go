package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "jti-1", "user-1", time.Minute))

	uid, ok, err := s.UserID(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "user-1", uid)

	// unknown jti is simply not live
	_, ok, err = s.UserID(ctx, "jti-unknown")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Revoke(ctx, "jti-1"))
	_, ok, err = s.UserID(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "jti-ttl", "user-1", -time.Second))
	_, ok, err := s.UserID(ctx, "jti-ttl")
	require.NoError(t, err)
	assert.False(t, ok)
}
