// ABOUTME: Document represents one ingested corporate file as plain text
// ABOUTME: Created by the ingestion boundary, immutable after creation
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Document is a single uploaded file after text normalization.
// RawText is already decoded; unsupported file types never reach this type.
type Document struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	RawText string `json:"raw_text"`
}

// NewDocument creates a Document with validation
func NewDocument(name, rawText string) (*Document, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("document name cannot be empty")
	}
	if strings.TrimSpace(rawText) == "" {
		return nil, errors.New("document text cannot be empty")
	}
	return &Document{
		ID:      generateDocumentID(),
		Name:    name,
		RawText: rawText,
	}, nil
}

// generateDocumentID generates a unique document identifier
func generateDocumentID() string {
	return fmt.Sprintf("doc_%s_%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
}
