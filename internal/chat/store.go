package chat

import (
	"encoding/base64"
	"errors"
	"sync"
)

var (
	ErrNoAttachmentData = errors.New("attachment has no data")
	ErrNoAttachmentMIME = errors.New("attachment has no media type")
)

// Store holds at most one pending image attachment between selection and
// send. Attaching replaces whatever was there; there is no multi-image
// support.
type Store struct {
	mu      sync.Mutex
	current Attachment
}

func NewStore() *Store {
	return &Store{}
}

// Attach encodes data and makes it the pending attachment, replacing any
// previous one. On error the store is left unchanged.
func (s *Store) Attach(data []byte, mime, name string) (Attachment, error) {
	if len(data) == 0 {
		return Attachment{}, ErrNoAttachmentData
	}
	if mime == "" {
		return Attachment{}, ErrNoAttachmentMIME
	}

	att := Attachment{
		Data: base64.StdEncoding.EncodeToString(data),
		MIME: mime,
		Name: name,
	}

	s.mu.Lock()
	s.current = att
	s.mu.Unlock()
	return att, nil
}

// Current returns the pending attachment, if any.
func (s *Store) Current() (Attachment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, !s.current.Empty()
}

// Clear removes the pending attachment.
func (s *Store) Clear() {
	s.mu.Lock()
	s.current = Attachment{}
	s.mu.Unlock()
}
