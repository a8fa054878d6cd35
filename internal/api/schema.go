package api

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/bz888/banter/internal/chat"
	"github.com/google/generative-ai-go/genai"
)

var ErrEmptyRequest = errors.New("request has no parts")

// replySchema constrains generation to the envelope the parser expects:
// a markdown reply plus follow-up suggestions.
func replySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"response": {
				Type:        genai.TypeString,
				Description: "The answer to the user, formatted as markdown.",
			},
			"suggestions": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Short follow-up prompts the user could send next.",
			},
		},
		Required: []string{"response", "suggestions"},
	}
}

func toGenaiParts(req chat.Request) ([]genai.Part, error) {
	parts := make([]genai.Part, 0, len(req.Parts))
	for _, p := range req.Parts {
		switch {
		case p.Inline != "":
			data, err := base64.StdEncoding.DecodeString(p.Inline)
			if err != nil {
				return nil, fmt.Errorf("decode attachment: %w", err)
			}
			parts = append(parts, genai.Blob{MIMEType: p.MIME, Data: data})
		case p.Text != "":
			parts = append(parts, genai.Text(p.Text))
		}
	}
	if len(parts) == 0 {
		return nil, ErrEmptyRequest
	}
	return parts, nil
}
