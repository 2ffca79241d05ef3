package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/studycoach/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		DataPath:      "learning_data.json",
		Addr:          ":8080",
		LogLevel:      "INFO",
		ReviewLimit:   10,
		OpenAIModel:   "gpt-3.5-turbo",
		OpenAIBaseURL: "https://api.openai.com",
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	err := validConfig().Validate()
	assert.NoError(t, err)
}

func TestValidate_EmptyDataPath(t *testing.T) {
	cfg := validConfig()
	cfg.DataPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "COACH_DATA_PATH cannot be empty")
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "COACH_ADDR cannot be empty")
}

func TestValidate_InvalidReviewLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
	}{
		{name: "zero limit", limit: 0},
		{name: "negative limit", limit: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.ReviewLimit = tt.limit

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "COACH_REVIEW_LIMIT")
		})
	}
}

func TestValidate_LogLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "uppercase valid", level: "DEBUG", wantErr: false},
		{name: "lowercase valid", level: "warn", wantErr: false},
		{name: "invalid level", level: "LOUD", wantErr: true},
		{name: "empty level", level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.level

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{
		DataPath:    "",
		Addr:        "",
		LogLevel:    "INVALID",
		ReviewLimit: 0,
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "COACH_DATA_PATH")
	assert.Contains(t, errStr, "COACH_ADDR")
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "COACH_REVIEW_LIMIT")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("COACH_DATA_PATH", "custom.json")
	t.Setenv("COACH_ADDR", ":9090")
	t.Setenv("COACH_REVIEW_LIMIT", "25")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := config.Load()

	assert.Equal(t, "custom.json", cfg.DataPath)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 25, cfg.ReviewLimit)
	assert.True(t, cfg.AdvisorEnabled())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("COACH_DATA_PATH", "")
	t.Setenv("COACH_ADDR", "")
	t.Setenv("COACH_REVIEW_LIMIT", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("OPENAI_BASE_URL", "")

	cfg := config.Load()

	assert.Equal(t, "learning_data.json", cfg.DataPath)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 10, cfg.ReviewLimit)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAIModel)
	assert.Equal(t, "https://api.openai.com", cfg.OpenAIBaseURL)
	assert.False(t, cfg.AdvisorEnabled())
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("COACH_REVIEW_LIMIT", "plenty")

	cfg := config.Load()
	assert.Equal(t, 10, cfg.ReviewLimit)
}
