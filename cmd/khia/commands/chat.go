// ABOUTME: CLI command for interactive multi-turn chat over ingested documents
// ABOUTME: Runs the Bubble Tea chat interface for one session
package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/tui"
)

var (
	chatFiles []string
)

// NewChatCmd creates the chat command
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat interactively about the given documents",
		Long: `Start an interactive chat session over one or more plain-text documents.

Follow-up questions are rewritten into standalone search queries using
the running conversation, so "what about sick leave?" works after a
question about the leave policy.

Examples:
  khia chat --file handbook.txt
  khia chat --file policies.txt --file onboarding.txt`,
		RunE: runChat,
	}

	cmd.Flags().StringSliceVar(&chatFiles, "file", []string{}, "Plain-text document to index (repeatable)")

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	if len(chatFiles) == 0 {
		return fmt.Errorf("at least one --file is required")
	}

	session, err := newSession()
	if err != nil {
		return err
	}

	if err := ingestFiles(cmd.Context(), session, chatFiles); err != nil {
		return err
	}

	model := tui.New(session, len(session.Documents()))
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running chat interface: %w", err)
	}
	return nil
}
