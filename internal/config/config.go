package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	StrategyExact    = "exact"
	StrategySemantic = "semantic"
)

type Config struct {
	App    AppConfig
	Match  MatchConfig
	OpenAI OpenAIConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type MatchConfig struct {
	DataFile      string
	DefaultUserID string
	Limit         int
	Strategy      string
	Threshold     float64
}

type OpenAIConfig struct {
	BaseURL        string
	APIKey         string
	EmbeddingModel string
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variable")
)

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	limit, err := parseIntEnv("MATCH_LIMIT", 3)
	if err != nil {
		return Config{}, err
	}
	threshold, err := parseFloatEnv("SIMILARITY_THRESHOLD", 0.6)
	if err != nil {
		return Config{}, err
	}

	cfg.Match = MatchConfig{
		DataFile:      opt("DATA_FILE", "users.json"),
		DefaultUserID: opt("DEFAULT_USER_ID", "user_001"),
		Limit:         limit,
		Strategy:      opt("MATCH_STRATEGY", StrategyExact),
		Threshold:     threshold,
	}

	cfg.OpenAI = OpenAIConfig{
		BaseURL:        opt("OPENAI_BASE_URL", ""),
		APIKey:         opt("OPENAI_API_KEY", ""),
		EmbeddingModel: opt("EMBEDDING_MODEL", ""),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	switch cfg.Match.Strategy {
	case StrategyExact:
	case StrategySemantic:
		if cfg.OpenAI.APIKey == "" {
			return Config{}, fmt.Errorf("%w: MATCH_STRATEGY=semantic requires OPENAI_API_KEY", errInvalidEnv)
		}
	default:
		return Config{}, fmt.Errorf("%w: MATCH_STRATEGY must be %q or %q", errInvalidEnv, StrategyExact, StrategySemantic)
	}

	return cfg, nil
}

func parseIntEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", errInvalidEnv, key)
	}
	return v, nil
}

func parseFloatEnv(key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 || v > 1 {
		return 0, fmt.Errorf("%w: %s must be in (0, 1]", errInvalidEnv, key)
	}
	return v, nil
}
