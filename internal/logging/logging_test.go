package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")
	logger, err := Setup("debug", path)
	require.NoError(t, err)

	logger.Info().Str("k", "v").Msg("hello")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"message":"hello"`)
	require.Contains(t, string(raw), `"k":"v"`)
}

func TestSetupBadLevelFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	logger, err := Setup("chatty", path)
	require.NoError(t, err)

	logger.Debug().Msg("dropped")
	logger.Info().Msg("kept")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "dropped")
	require.Contains(t, string(raw), "kept")
}
