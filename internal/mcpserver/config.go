package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/sduikit/sduitools/resolver"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Resolve tool defaults.
	MaxDepth    int
	WebOnly     bool
	CyclicNames []string

	// Document cache capacity in entries.
	CacheSize int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from SDUITOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxDepth:    envInt("SDUITOOLS_MAX_DEPTH", resolver.DefaultMaxDepth),
		WebOnly:     envBool("SDUITOOLS_WEB_ONLY", false),
		CyclicNames: envNames("SDUITOOLS_CYCLIC_NAMES"),
		CacheSize:   envInt("SDUITOOLS_CACHE_SIZE", resolver.DefaultCacheSize),
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

// envNames parses a comma-separated name list. Unset returns nil, which
// keeps the resolver's built-in cyclic name set; an explicitly empty value
// returns an empty slice, disabling the tighter cap.
func envNames(key string) []string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	parts := strings.Split(v, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}
