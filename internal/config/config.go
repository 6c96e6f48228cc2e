// ABOUTME: Centralized configuration for the knowledge hub
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ErrInvalidConfiguration indicates malformed chunker or retrieval
// parameters. Fatal at construction, never recovered.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config holds all configuration for the knowledge hub.
// Fixed at construction; not hot-reloadable.
type Config struct {
	// Chunking settings
	WindowSize  int
	OverlapSize int

	// Retrieval settings
	TopK int

	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Synthesis settings
	ContextTokenBudget int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		WindowSize:         getEnvInt("KHIA_WINDOW_SIZE", 1000),
		OverlapSize:        getEnvInt("KHIA_OVERLAP_SIZE", 200),
		TopK:               getEnvInt("KHIA_TOP_K", 3),
		OpenAIKey:          os.Getenv("OPENAI_API_KEY"),
		ChatModel:          getEnv("KHIA_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel:     getEnv("KHIA_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:            getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:         getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:         getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		ContextTokenBudget: getEnvInt("KHIA_CONTEXT_TOKENS", 3000),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.WindowSize <= 0 {
		return fmt.Errorf("%w: KHIA_WINDOW_SIZE must be positive, got %d", ErrInvalidConfiguration, c.WindowSize)
	}
	if c.OverlapSize < 0 || c.OverlapSize >= c.WindowSize {
		return fmt.Errorf("%w: KHIA_OVERLAP_SIZE must satisfy 0 <= overlap < window, got overlap=%d window=%d",
			ErrInvalidConfiguration, c.OverlapSize, c.WindowSize)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("%w: KHIA_TOP_K must be positive, got %d", ErrInvalidConfiguration, c.TopK)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("%w: OPENAI_MAX_RETRIES must be 0-10, got %d", ErrInvalidConfiguration, c.MaxRetries)
	}
	if c.ContextTokenBudget <= 0 {
		return fmt.Errorf("%w: KHIA_CONTEXT_TOKENS must be positive, got %d", ErrInvalidConfiguration, c.ContextTokenBudget)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
