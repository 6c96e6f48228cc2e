// ABOUTME: MCP tool definitions and registration for the knowledge hub server
// ABOUTME: Defines JSON schemas for the upload, ask, and list tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/core"
)

// RegisterTools registers all MCP tools with the server. The session lives
// for the duration of the server process; its index and history are not
// shared with any other session.
func RegisterTools(server *mcpserver.MCPServer, session *core.Session) *Handlers {
	handlers := &Handlers{session: session}

	// 1. upload_document - ingest one plain-text document into the session index
	server.AddTool(mcp.Tool{
		Name:        "upload_document",
		Description: "Ingest a plain-text document into the session's searchable index. Text is chunked, embedded, and added incrementally.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Document name, e.g. handbook.txt",
				},
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Plain text content of the document",
				},
			},
			Required: []string{"name", "text"},
		},
	}, handlers.UploadDocument)

	// 2. ask_question - conversational retrieval over the ingested documents
	server.AddTool(mcp.Tool{
		Name:        "ask_question",
		Description: "Ask a question about the uploaded documents. Follow-up questions are rewritten using the conversation history; the answer is grounded in retrieved chunks and includes source chunk IDs.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Natural-language question",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.AskQuestion)

	// 3. list_documents - show what has been ingested in this session
	server.AddTool(mcp.Tool{
		Name:        "list_documents",
		Description: "List the documents ingested in this session with their IDs.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListDocuments)

	return handlers
}
