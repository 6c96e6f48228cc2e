// ABOUTME: CLI command for one-shot ingest-and-ask
// ABOUTME: Indexes the given files and answers a single question with provenance
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	askFiles []string
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a question about the given documents",
		Long: `Ask a single question about one or more plain-text documents.

The documents are chunked, embedded, and indexed in memory, then the
question is answered strictly from the retrieved chunks.

Examples:
  khia ask --file handbook.txt "How long do employees have to onboard?"
  khia ask --file a.txt --file b.txt --format json "What is the leave policy?"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().StringSliceVar(&askFiles, "file", []string{}, "Plain-text document to index (repeatable)")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	session, err := newSession()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := ingestFiles(ctx, session, askFiles); err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "Indexed %d chunk(s) from %d document(s)\n",
			session.IndexSize(), len(session.Documents()))
	}

	answer := session.Ask(ctx, args[0])

	if outputFormat == "json" {
		data, err := json.MarshalIndent(answer, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer.Answer)
	if !quiet && len(answer.Sources) > 0 {
		fmt.Fprintln(cmd.OutOrStdout())
		for _, src := range answer.Sources {
			fmt.Fprintf(cmd.OutOrStdout(), "  source: %s\n", src)
		}
	}
	return nil
}
