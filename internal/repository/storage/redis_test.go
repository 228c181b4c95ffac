package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hotseat/testing/suite"
)

func TestNewRedisStorage(t *testing.T) {
	t.Run("Connects to a running server", func(t *testing.T) {
		ctx, st := suite.New(t)

		// When: storage is opened against the container
		redisStorage, err := NewRedisStorage(ctx, st.RedisAddr)

		// Then: the connection works and closes cleanly
		require.NoError(t, err)
		require.NoError(t, redisStorage.Connection.Ping(ctx).Err())
		require.NoError(t, redisStorage.Close())
	})
}
