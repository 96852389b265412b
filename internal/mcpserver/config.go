package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/text/language"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// RulesFile is an optional YAML file with extra inflection rules.
	RulesFile string
	// WatchRules reloads RulesFile when it changes.
	WatchRules bool

	// Language drives upper and lower case mapping.
	Language language.Tag
	// PreserveAcronyms keeps fully uppercase words in camel and Pascal output.
	PreserveAcronyms bool

	// MaxInputBytes caps the size of every string argument.
	MaxInputBytes int
	// MaxBatch caps the number of words in one pluralize or singularize call.
	MaxBatch int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from WORDCASE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		RulesFile:        os.Getenv("WORDCASE_RULES_FILE"),
		WatchRules:       envBool("WORDCASE_WATCH_RULES", true),
		Language:         envLanguage("WORDCASE_LANGUAGE"),
		PreserveAcronyms: envBool("WORDCASE_PRESERVE_ACRONYMS", false),
		MaxInputBytes:    envInt("WORDCASE_MAX_INPUT_BYTES", 64*1024),
		MaxBatch:         envInt("WORDCASE_MAX_BATCH", 1000),
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

func envLanguage(key string) language.Tag {
	v := os.Getenv(key)
	if v == "" {
		return language.Und
	}
	tag, err := language.Parse(v)
	if err != nil {
		slog.Warn("invalid language env var, using default", "key", key, "value", v, "error", err)
		return language.Und
	}
	return tag
}
