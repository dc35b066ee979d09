package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := redis.NewClient(&redis.Options{
		Addr: s.Addr(),
	})
	defer client.Close()

	repo := NewRedisRepository(client, time.Hour)
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, KeyToken, "jwt-abc"))

		got, err := repo.Get(ctx, KeyToken)
		require.NoError(t, err)
		assert.Equal(t, "jwt-abc", got)
	})

	t.Run("GetAbsentKey", func(t *testing.T) {
		got, err := repo.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("KeysAreNamespaced", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, KeyUser, `{"_id":"u1"}`))
		assert.True(t, s.Exists("session:user"))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, KeyToken, "jwt-abc"))
		require.NoError(t, repo.Set(ctx, KeyUser, `{"_id":"u1"}`))

		require.NoError(t, repo.Delete(ctx, KeyToken, KeyUser))

		got, err := repo.Get(ctx, KeyToken)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("TTLApplied", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, KeyToken, "jwt-expiring"))

		s.FastForward(2 * time.Hour)

		got, err := repo.Get(ctx, KeyToken)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})
}
