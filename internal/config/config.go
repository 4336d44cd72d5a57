// Package config holds the viewer settings, read from the environment with
// an optional .env file loaded first.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries everything the viewer can be told from outside.
type Config struct {
	// MarginFrac is the fraction of the data extent added as padding on
	// every side when auto-fitting the view.
	MarginFrac float64
	// DefaultExtentW and DefaultExtentH give the view box, centered on the
	// origin, used when a dataset has no bounding box.
	DefaultExtentW float64
	DefaultExtentH float64

	LogLevel string
	LogFile  string
}

// Load reads the configuration. A missing .env file is fine; process
// environment always wins over defaults.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		MarginFrac:     envFloat("GEOPLOT_MARGIN", 0.05),
		DefaultExtentW: envFloat("GEOPLOT_DEFAULT_WIDTH", 360),
		DefaultExtentH: envFloat("GEOPLOT_DEFAULT_HEIGHT", 180),
		LogLevel:       envString("GEOPLOT_LOG_LEVEL", "info"),
		LogFile:        envString("GEOPLOT_LOG_FILE", "logs/geoplot.log"),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
