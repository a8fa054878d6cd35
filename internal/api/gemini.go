// Package api wraps the Gemini SDK behind the chat.Backend interface.
package api

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bz888/banter/internal/chat"
	"github.com/bz888/banter/internal/logger"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

var localLogger *logger.Logger

func Init() {
	localLogger = logger.NewLogger("api client")
}

var ErrNoAPIKey = errors.New("no API key set, export GEMINI_API_KEY or GOOGLE_API_KEY")

// Client streams structured replies from a Gemini model.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(ctx context.Context, modelName, systemInstruction string) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = replySchema()
	if sys := strings.TrimSpace(systemInstruction); sys != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(sys)}}
	}

	localLogger.Info("Gemini client ready, model: ", modelName)
	return &Client{client: client, model: model}, nil
}

// Generate starts a streaming exchange. Deltas arrive on the returned
// channel as the model produces them; the channel closes when the stream
// ends, after an Err chunk if it ended badly.
func (c *Client) Generate(ctx context.Context, req chat.Request) (<-chan chat.Chunk, error) {
	parts, err := toGenaiParts(req)
	if err != nil {
		localLogger.Error("Failed to build request parts: ", err)
		return nil, err
	}

	iter := c.model.GenerateContentStream(ctx, parts...)
	out := make(chan chat.Chunk)
	go func() {
		defer close(out)
		for {
			resp, err := iter.Next()
			if err == iterator.Done {
				return
			}
			if err != nil {
				localLogger.Error("Stream failed: ", err)
				out <- chat.Chunk{Err: err}
				return
			}
			if delta := responseText(resp); delta != "" {
				out <- chat.Chunk{Delta: delta}
			}
		}
	}()
	return out, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}

// Unavailable stands in for the real client when startup configuration
// fails. Every request fails with the recorded reason, so the
// conversation surface still comes up and can report the problem.
type Unavailable struct {
	Reason string
}

func (u Unavailable) Generate(ctx context.Context, req chat.Request) (<-chan chat.Chunk, error) {
	return nil, errors.New(u.Reason)
}
