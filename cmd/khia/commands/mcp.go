// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Exposes the session's ingest and ask operations to LLM agents via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the knowledge hub as an MCP (Model Context Protocol) server over
stdio, exposing upload_document, ask_question, and list_documents tools.
The session's index and conversation history live for the duration of
the server process.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  khia mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "khia": {
  #       "command": "khia",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("Warning: OPENAI_API_KEY not set - ingestion and question answering will not work")
	}

	session, err := newSession()
	if err != nil {
		return fmt.Errorf("initializing session: %w", err)
	}

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"Corporate Training Knowledge Hub",
		"0.1.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, session)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("Knowledge hub MCP server starting on stdio...")
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	// Wait for shutdown signal or server error
	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, shutting down")
		}
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
