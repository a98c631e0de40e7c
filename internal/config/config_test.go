package config

import (
	"errors"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "matchmaker")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected missing-env error, got %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Match.DataFile != "users.json" {
		t.Fatalf("unexpected data file: %q", cfg.Match.DataFile)
	}
	if cfg.Match.DefaultUserID != "user_001" {
		t.Fatalf("unexpected default user: %q", cfg.Match.DefaultUserID)
	}
	if cfg.Match.Limit != 3 {
		t.Fatalf("unexpected limit: %d", cfg.Match.Limit)
	}
	if cfg.Match.Strategy != StrategyExact {
		t.Fatalf("unexpected strategy: %q", cfg.Match.Strategy)
	}
	if cfg.Match.Threshold != 0.6 {
		t.Fatalf("unexpected threshold: %v", cfg.Match.Threshold)
	}
}

func TestLoad_SemanticRequiresAPIKey(t *testing.T) {
	setRequired(t)
	t.Setenv("MATCH_STRATEGY", "semantic")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	if !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected invalid-env error, got %v", err)
	}

	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Match.Strategy != StrategySemantic {
		t.Fatalf("unexpected strategy: %q", cfg.Match.Strategy)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	setRequired(t)

	t.Setenv("MATCH_LIMIT", "zero")
	if _, err := Load(); !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected invalid-env error for MATCH_LIMIT, got %v", err)
	}
	t.Setenv("MATCH_LIMIT", "")

	t.Setenv("SIMILARITY_THRESHOLD", "1.5")
	if _, err := Load(); !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected invalid-env error for SIMILARITY_THRESHOLD, got %v", err)
	}
	t.Setenv("SIMILARITY_THRESHOLD", "")

	t.Setenv("MATCH_STRATEGY", "fuzzy")
	if _, err := Load(); !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected invalid-env error for MATCH_STRATEGY, got %v", err)
	}
}
