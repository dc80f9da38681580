package log_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Nugamoto/bestbuy2.0/pkg/log"
)

func TestNew(t *testing.T) {
	t.Run("builds a logger at the given level", func(t *testing.T) {
		logger, err := log.New("debug")
		require.NoError(t, err)
		require.NotNil(t, logger)
		require.True(t, logger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("info level filters debug", func(t *testing.T) {
		logger, err := log.New("info")
		require.NoError(t, err)
		require.False(t, logger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("rejects an unknown level", func(t *testing.T) {
		_, err := log.New("chatty")
		require.Error(t, err)
	})
}

func TestGlobal(t *testing.T) {
	t.Cleanup(func() { log.SetGlobal(zap.NewNop()) })

	logger, err := log.New("warn")
	require.NoError(t, err)

	log.SetGlobal(logger)
	require.Same(t, logger, log.L())
}
