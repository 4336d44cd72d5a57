package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"GEOPLOT_MARGIN", "GEOPLOT_DEFAULT_WIDTH", "GEOPLOT_DEFAULT_HEIGHT",
		"GEOPLOT_LOG_LEVEL", "GEOPLOT_LOG_FILE",
	} {
		t.Setenv(key, "")
	}
	cfg := Load()
	require.Equal(t, 0.05, cfg.MarginFrac)
	require.Equal(t, 360.0, cfg.DefaultExtentW)
	require.Equal(t, 180.0, cfg.DefaultExtentH)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "logs/geoplot.log", cfg.LogFile)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEOPLOT_MARGIN", "0.2")
	t.Setenv("GEOPLOT_DEFAULT_WIDTH", "100")
	t.Setenv("GEOPLOT_LOG_LEVEL", "debug")
	cfg := Load()
	require.Equal(t, 0.2, cfg.MarginFrac)
	require.Equal(t, 100.0, cfg.DefaultExtentW)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadBadFloatFallsBack(t *testing.T) {
	t.Setenv("GEOPLOT_MARGIN", "lots")
	cfg := Load()
	require.Equal(t, 0.05, cfg.MarginFrac)
}
