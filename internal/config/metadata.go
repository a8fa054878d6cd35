package config

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
)

const DefaultModel = "gemini-2.5-flash"

var (
	ErrNoMetadata      = errors.New("metadata file not found")
	ErrInvalidMetadata = errors.New("invalid metadata JSON")
	ErrNoPrompt        = errors.New("prompt not set in metadata")
)

// Metadata describes the persona the client chats as. Prompt becomes the
// system instruction; Name and Description only affect the display.
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
}

// LoadMetadata reads the persona definition from path.
func LoadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoMetadata
		}
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, ErrInvalidMetadata
	}

	if strings.TrimSpace(meta.Prompt) == "" {
		return nil, ErrNoPrompt
	}

	if meta.Name == "" {
		meta.Name = "Bot"
	}
	return &meta, nil
}
