// Package chat holds the conversation core: the attachment store, the
// conversation log, the response parser and the session state machine that
// drives one exchange at a time against the backend.
package chat

import (
	"context"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one entry in the conversation log. Turns are immutable once
// appended; the only exception is a pending model turn, whose content is
// filled in by Log.Resolve when its exchange finishes.
type Turn struct {
	ID          string
	Role        Role
	Body        string
	ImageName   string
	Suggestions []string
	Pending     bool
}

func NewUserTurn(body, imageName string) *Turn {
	return &Turn{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Body:      body,
		ImageName: imageName,
	}
}

func NewModelTurn(body string, suggestions []string) *Turn {
	return &Turn{
		ID:          uuid.NewString(),
		Role:        RoleModel,
		Body:        body,
		Suggestions: suggestions,
	}
}

// NewPendingTurn creates the loading placeholder that stands in for a model
// reply until its exchange resolves.
func NewPendingTurn() *Turn {
	return &Turn{
		ID:      uuid.NewString(),
		Role:    RoleModel,
		Pending: true,
	}
}

// Attachment is the single pending image between selection and send.
// Data carries the payload as base64 text, MIME its media type and Name a
// short reference for display. A zero Attachment means "none"; the store
// never produces a partially populated one.
type Attachment struct {
	Data string
	MIME string
	Name string
}

func (a Attachment) Empty() bool {
	return a.Data == "" && a.MIME == ""
}

// Envelope is the structured payload the backend is contracted to return.
type Envelope struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
}

// Part is one ordered element of an outbound prompt: either inline image
// data (base64 text plus media type) or plain text, never both.
type Part struct {
	Text   string
	Inline string
	MIME   string
}

// Request is the multi-part prompt for one exchange.
type Request struct {
	Parts []Part
}

// Chunk is one fragment of a streamed reply. A Chunk with Err set ends the
// stream; otherwise the producer closes the channel when it is done.
type Chunk struct {
	Delta string
	Err   error
}

// Backend issues one streaming generation call. Implementations must close
// the returned channel once the stream is exhausted or failed.
type Backend interface {
	Generate(ctx context.Context, req Request) (<-chan Chunk, error)
}
