// ABOUTME: Tests for centralized configuration system
// ABOUTME: Verifies environment variable parsing and validation
package config

import (
	"errors"
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear environment to test defaults
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Verify defaults
	if cfg.WindowSize != 1000 {
		t.Errorf("WindowSize = %d, want 1000", cfg.WindowSize)
	}
	if cfg.OverlapSize != 200 {
		t.Errorf("OverlapSize = %d, want 200", cfg.OverlapSize)
	}
	if cfg.TopK != 3 {
		t.Errorf("TopK = %d, want 3", cfg.TopK)
	}
	if cfg.ChatModel != "gpt-4o-mini" {
		t.Errorf("ChatModel = %s, want gpt-4o-mini", cfg.ChatModel)
	}
	if cfg.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("EmbeddingModel = %s, want text-embedding-3-small", cfg.EmbeddingModel)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.RetryDelay != 2*time.Second {
		t.Errorf("RetryDelay = %v, want 2s", cfg.RetryDelay)
	}
	if cfg.ContextTokenBudget != 3000 {
		t.Errorf("ContextTokenBudget = %d, want 3000", cfg.ContextTokenBudget)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	os.Setenv("KHIA_WINDOW_SIZE", "500")
	os.Setenv("KHIA_OVERLAP_SIZE", "50")
	os.Setenv("KHIA_TOP_K", "10")
	os.Setenv("KHIA_CHAT_MODEL", "gpt-4")
	os.Setenv("KHIA_EMBEDDING_MODEL", "text-embedding-3-large")
	os.Setenv("OPENAI_TIMEOUT", "60s")
	os.Setenv("OPENAI_MAX_RETRIES", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.WindowSize != 500 {
		t.Errorf("WindowSize = %d, want 500", cfg.WindowSize)
	}
	if cfg.OverlapSize != 50 {
		t.Errorf("OverlapSize = %d, want 50", cfg.OverlapSize)
	}
	if cfg.TopK != 10 {
		t.Errorf("TopK = %d, want 10", cfg.TopK)
	}
	if cfg.ChatModel != "gpt-4" {
		t.Errorf("ChatModel = %s, want gpt-4", cfg.ChatModel)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("Timeout = %v, want 60s", cfg.Timeout)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", cfg.MaxRetries)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"overlap equals window", "KHIA_OVERLAP_SIZE", "1000"},
		{"overlap exceeds window", "KHIA_OVERLAP_SIZE", "1500"},
		{"negative overlap", "KHIA_OVERLAP_SIZE", "-1"},
		{"zero window", "KHIA_WINDOW_SIZE", "0"},
		{"negative window", "KHIA_WINDOW_SIZE", "-100"},
		{"zero top-k", "KHIA_TOP_K", "0"},
		{"too many retries", "OPENAI_MAX_RETRIES", "100"},
		{"zero token budget", "KHIA_CONTEXT_TOKENS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			os.Setenv(tt.key, tt.val)

			_, err := Load()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestLoad_InvalidIntFallsBackToDefault(t *testing.T) {
	os.Clearenv()
	os.Setenv("KHIA_WINDOW_SIZE", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.WindowSize != 1000 {
		t.Errorf("WindowSize = %d, want default 1000", cfg.WindowSize)
	}
}
