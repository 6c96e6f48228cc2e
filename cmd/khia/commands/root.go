// ABOUTME: Root CLI command with global flags and subcommand wiring
// ABOUTME: Entry point for ask, chat, mcp, and version subcommands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "khia",
		Short: "Corporate Training Knowledge Hub",
		Long: `Corporate Training Knowledge Hub

Ingest plain-text corporate documents into an in-memory semantic index
and ask natural-language questions grounded in the indexed content.
Follow-up questions are rewritten using the running conversation, and
every answer reports the chunks it was grounded in.

The index lives for the duration of one command; nothing is persisted.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "Output format: text or json")

	cmd.AddCommand(NewAskCmd())
	cmd.AddCommand(NewChatCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
