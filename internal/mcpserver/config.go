package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds the configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxInputs caps the number of PDFs a single tool call may resolve.
	MaxInputs int

	// List tool defaults.
	ListLimit int
	MaxLimit  int

	// StrictValidation is the merge tool default for strict PDF validation.
	StrictValidation bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from PDFMERGE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxInputs:        envInt("PDFMERGE_MAX_INPUTS", 500),
		ListLimit:        envInt("PDFMERGE_LIST_LIMIT", 100),
		MaxLimit:         envInt("PDFMERGE_MAX_LIMIT", 1000),
		StrictValidation: envBool("PDFMERGE_STRICT", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
