// Package config resolves tool settings from defaults, an optional .env
// file, and HASHPW_* environment variables. CLI flags override the result in
// cmd/hashpw.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults for the complexity rules and hashing method.
const (
	DefaultMinLength  = 10
	DefaultMinClasses = 3
	DefaultWordCredit = 1.5
	DefaultMethod     = "bcrypt"
)

// Config carries the resolved settings for one invocation.
type Config struct {
	MinLength     int
	MinClasses    int
	WordCredit    float64
	DictPath      string
	Method        string
	CheckUsername bool
	CheckFullName bool
	LogLevel      string
	LogFormat     string
}

// Load resolves configuration. Precedence, lowest first: built-in defaults,
// the .env file (HASHPW_ENV_FILE or ./.env), then process environment
// variables. godotenv never overrides variables already set in the process.
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		MinLength:     DefaultMinLength,
		MinClasses:    DefaultMinClasses,
		WordCredit:    DefaultWordCredit,
		Method:        DefaultMethod,
		CheckUsername: true,
		CheckFullName: true,
		LogLevel:      "info",
		LogFormat:     "auto",
	}

	var err error
	if cfg.MinLength, err = intEnv("HASHPW_MIN_LENGTH", cfg.MinLength); err != nil {
		return nil, err
	}
	if cfg.MinClasses, err = intEnv("HASHPW_MIN_CLASSES", cfg.MinClasses); err != nil {
		return nil, err
	}
	if cfg.WordCredit, err = floatEnv("HASHPW_WORD_CREDIT", cfg.WordCredit); err != nil {
		return nil, err
	}
	if cfg.CheckUsername, err = boolEnv("HASHPW_CHECK_USERNAME", cfg.CheckUsername); err != nil {
		return nil, err
	}
	if cfg.CheckFullName, err = boolEnv("HASHPW_CHECK_NAME", cfg.CheckFullName); err != nil {
		return nil, err
	}

	cfg.DictPath = stringEnv("HASHPW_DICT", cfg.DictPath)
	cfg.Method = stringEnv("HASHPW_METHOD", cfg.Method)
	cfg.LogLevel = stringEnv("HASHPW_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = stringEnv("HASHPW_LOG_FORMAT", cfg.LogFormat)

	return cfg, nil
}

func loadEnvFile() {
	path := os.Getenv("HASHPW_ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	// Best effort: a malformed .env file should not block an otherwise
	// fully flag-driven invocation.
	_ = godotenv.Load(path)
}

func stringEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", key, raw)
	}
	return value, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", key, raw)
	}
	return value, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return value, nil
}
