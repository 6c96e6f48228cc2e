// ABOUTME: Shared helpers for CLI commands
// ABOUTME: Session construction, document loading, and output formatting
package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/config"
	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/core"
	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/llm"
)

// newSession builds a session from environment configuration and the
// OpenAI-backed embedder and generator
func newSession() (*core.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing OpenAI client: %w", err)
	}

	return core.NewSession(cfg, client, client)
}

// ingestFiles reads each plain-text file and folds it into the session index
func ingestFiles(ctx context.Context, session *core.Session, files []string) error {
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if _, err := session.Ingest(ctx, filepath.Base(path), string(data)); err != nil {
			return err
		}
	}
	return nil
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
