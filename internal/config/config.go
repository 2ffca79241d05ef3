package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/example/studycoach/internal/logger"
)

type Config struct {
	DataPath      string
	Addr          string
	LogLevel      string
	ReviewLimit   int
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		DataPath:      envOr("COACH_DATA_PATH", "learning_data.json"),
		Addr:          envOr("COACH_ADDR", ":8080"),
		LogLevel:      envOr("LOG_LEVEL", "INFO"),
		ReviewLimit:   envIntOr("COACH_REVIEW_LIMIT", 10),
		OpenAIKey:     envOr("OPENAI_API_KEY", ""),
		OpenAIModel:   envOr("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAIBaseURL: envOr("OPENAI_BASE_URL", "https://api.openai.com"),
	}
}

// Validate checks the configuration and returns a single error listing
// every problem found.
func (c Config) Validate() error {
	var problems []string

	if c.DataPath == "" {
		problems = append(problems, "COACH_DATA_PATH cannot be empty")
	}
	if c.Addr == "" {
		problems = append(problems, "COACH_ADDR cannot be empty")
	}
	if c.ReviewLimit <= 0 {
		problems = append(problems, "COACH_REVIEW_LIMIT must be positive")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR (got %q)", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// AdvisorEnabled reports whether the optional OpenAI advisor is configured.
func (c Config) AdvisorEnabled() bool {
	return c.OpenAIKey != ""
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		logger.Warn("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
