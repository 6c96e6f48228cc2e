// ABOUTME: Token counting and truncation for the synthesizer context budget
// ABOUTME: Uses tiktoken cl100k_base, falling back to a chars/4 heuristic
package core

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const encodingName = "cl100k_base"

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

func loadEncoding() *tiktoken.Tiktoken {
	encodingOnce.Do(func() {
		enc, err := tiktoken.GetEncoding(encodingName)
		if err == nil {
			encoding = enc
		}
	})
	return encoding
}

// countTokens returns the token count of text, or a chars/4 estimate if the
// encoding is unavailable
func countTokens(text string) int {
	if enc := loadEncoding(); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return len(text) / 4
}

// truncateToTokens shortens text to at most budget tokens
func truncateToTokens(text string, budget int) string {
	if budget <= 0 {
		return ""
	}
	enc := loadEncoding()
	if enc == nil {
		// Heuristic: 4 chars per token
		limit := budget * 4
		if len(text) <= limit {
			return text
		}
		return text[:limit]
	}

	tokens := enc.Encode(text, nil, nil)
	if len(tokens) <= budget {
		return text
	}
	return enc.Decode(tokens[:budget])
}
