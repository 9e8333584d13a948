package config

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load(zap.NewNop())

	if cfg.WebPort != 8090 {
		t.Errorf("WebPort = %d, want 8090", cfg.WebPort)
	}
	if cfg.FuzzyThreshold != 0.7 {
		t.Errorf("FuzzyThreshold = %v, want 0.7", cfg.FuzzyThreshold)
	}
	if cfg.MaxRecommendations != 3 {
		t.Errorf("MaxRecommendations = %d, want 3", cfg.MaxRecommendations)
	}
	if cfg.LookupTimeout != 5*time.Second {
		t.Errorf("LookupTimeout = %v, want 5s", cfg.LookupTimeout)
	}
	if cfg.SessionRetentionAge != 24*time.Hour {
		t.Errorf("SessionRetentionAge = %v, want 24h", cfg.SessionRetentionAge)
	}
	if cfg.CatalogPath == "" {
		t.Error("CatalogPath is empty")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("WEB_PORT", "9100")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load(zap.NewNop())

	if cfg.WebPort != 9100 {
		t.Errorf("WebPort = %d, want env override 9100", cfg.WebPort)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}
