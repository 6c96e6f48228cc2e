// ABOUTME: MCP tool handler implementations for the knowledge hub server
// ABOUTME: Bridges tool calls onto one session's ingest and ask operations
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/core"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	session *core.Session
}

// UploadDocument handles the upload_document tool
func (h *Handlers) UploadDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name argument is required and must be a string"), nil
	}
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	doc, err := h.session.Ingest(ctx, name, text)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ingestion failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"document_id":    doc.ID,
		"name":           doc.Name,
		"indexed_chunks": h.session.IndexSize(),
	}
	return jsonResult(response)
}

// AskQuestion handles the ask_question tool
func (h *Handlers) AskQuestion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	answer := h.session.Ask(ctx, question)

	response := map[string]interface{}{
		"answer":          answer.Answer,
		"rewritten_query": answer.RewrittenQuery,
		"sources":         answer.Sources,
	}
	return jsonResult(response)
}

// ListDocuments handles the list_documents tool
func (h *Handlers) ListDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docs := h.session.Documents()

	entries := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, map[string]interface{}{
			"document_id": doc.ID,
			"name":        doc.Name,
		})
	}

	response := map[string]interface{}{
		"documents":      entries,
		"indexed_chunks": h.session.IndexSize(),
	}
	return jsonResult(response)
}

// jsonResult marshals a response map into a text tool result
func jsonResult(response map[string]interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshaling response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
