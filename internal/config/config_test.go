package config

import (
	"testing"
	"time"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.envValue)

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.envValue)

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsBoolOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		envValue   string
		defaultVal bool
		expected   bool
	}{
		{"parses true", "true", false, true},
		{"parses 0", "0", true, false},
		{"uses default for empty", "", true, true},
		{"uses default for garbage", "maybe", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tc.envValue)

			result := getEnvAsBoolOrDefault("TEST_BOOL", tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, result)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "GEMINI_MODEL", "HISTORY_STORE", "STRICT_RESULTS", "GEMINI_API_KEY", "WORKSPACE_IDLE_TTL_MINUTES"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %q", cfg.Port)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("Expected default model, got %q", cfg.GeminiModel)
	}
	if cfg.HistoryStore != "memory" {
		t.Errorf("Expected memory history store, got %q", cfg.HistoryStore)
	}
	if cfg.StrictResults {
		t.Error("Expected strict results to be off by default")
	}
	if cfg.GeminiAPIKey != "" {
		t.Errorf("Expected empty API key, got %q", cfg.GeminiAPIKey)
	}
	if cfg.WorkspaceIdleTTL != time.Hour {
		t.Errorf("Expected one hour workspace TTL, got %v", cfg.WorkspaceIdleTTL)
	}
}

func TestLoad_OverridesFromEnv(t *testing.T) {
	t.Setenv("HISTORY_STORE", "Redis")
	t.Setenv("GEMINI_API_KEY", "  secret  ")
	t.Setenv("DISCARD_STALE_RESPONSES", "true")
	t.Setenv("WORKSPACE_IDLE_TTL_MINUTES", "5")

	cfg := Load()
	if cfg.HistoryStore != "redis" {
		t.Errorf("Expected lower-cased store name, got %q", cfg.HistoryStore)
	}
	if cfg.GeminiAPIKey != "secret" {
		t.Errorf("Expected trimmed API key, got %q", cfg.GeminiAPIKey)
	}
	if !cfg.DiscardStaleResponses {
		t.Error("Expected stale discard to be enabled")
	}
	if cfg.WorkspaceIdleTTL != 5*time.Minute {
		t.Errorf("Expected 5m workspace TTL, got %v", cfg.WorkspaceIdleTTL)
	}
}
