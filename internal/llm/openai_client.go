// ABOUTME: OpenAI client for embeddings and text generation
// ABOUTME: Uses text-embedding-3-small for embeddings, gpt-4o-mini for generation (configurable)
package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/config"
	"github.com/SATHEESH-MEADI/KHIA-Tech/internal/util"
)

// embeddingDimensions maps known embedding models to their vector dimension
var embeddingDimensions = map[openai.EmbeddingModel]int{
	openai.SmallEmbedding3: 1536,
	openai.LargeEmbedding3: 3072,
	openai.AdaEmbeddingV2:  1536,
}

// Client wraps the OpenAI API client with retry logic. It provides both the
// embedding and generation capabilities of the pipeline.
type Client struct {
	client         *openai.Client
	chatModel      string
	embeddingModel openai.EmbeddingModel
	timeout        time.Duration
	maxRetries     int
	retryDelay     time.Duration
}

// NewClient creates a new OpenAI client from configuration
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &Client{
		client:         openai.NewClient(cfg.OpenAIKey),
		chatModel:      cfg.ChatModel,
		embeddingModel: openai.EmbeddingModel(cfg.EmbeddingModel),
		timeout:        cfg.Timeout,
		maxRetries:     cfg.MaxRetries,
		retryDelay:     cfg.RetryDelay,
	}, nil
}

// Dimension returns the embedding vector dimension for the configured model
func (c *Client) Dimension() int {
	if dim, ok := embeddingDimensions[c.embeddingModel]; ok {
		return dim
	}
	return 1536
}

// Embed generates an embedding vector for the given text
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	vector, err := util.Do(ctx, c.maxRetries, c.retryDelay, func(ctx context.Context) ([]float64, error) {
		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		resp, err := c.client.CreateEmbeddings(attemptCtx, openai.EmbeddingRequestStrings{
			Input: []string{text},
			Model: c.embeddingModel,
		})
		if err != nil {
			return nil, err
		}
		if len(resp.Data) == 0 {
			return nil, fmt.Errorf("no embeddings returned")
		}

		// Convert []float32 to []float64
		embedding32 := resp.Data[0].Embedding
		embedding64 := make([]float64, len(embedding32))
		for i, v := range embedding32 {
			embedding64[i] = float64(v)
		}
		return embedding64, nil
	})
	if err != nil {
		return nil, fmt.Errorf("generating embedding: %w", err)
	}
	return vector, nil
}

// Generate produces a completion for the given prompt
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	answer, err := util.Do(ctx, c.maxRetries, c.retryDelay, func(ctx context.Context) (string, error) {
		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		resp, err := c.client.CreateChatCompletion(attemptCtx, openai.ChatCompletionRequest{
			Model: c.chatModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		})
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("no completion choices returned")
		}
		return resp.Choices[0].Message.Content, nil
	})
	if err != nil {
		return "", fmt.Errorf("generating completion: %w", err)
	}
	return answer, nil
}
