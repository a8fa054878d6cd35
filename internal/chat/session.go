package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/bz888/banter/internal/logger"
)

type State int

const (
	StateIdle State = iota
	StateSending
	StateStreaming
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	case StateStreaming:
		return "streaming"
	default:
		return "unknown"
	}
}

var (
	// ErrBusy is returned while another exchange is still outstanding.
	ErrBusy = errors.New("an exchange is already in flight")
	// ErrNothingToSend is returned when both the trimmed prompt and the
	// pending attachment are empty.
	ErrNothingToSend = errors.New("nothing to send")
	// ErrEmptyStream marks a call that finished without producing any text.
	ErrEmptyStream = errors.New("the model returned an empty reply")
)

// pendingExchange is the transient state of the one in-flight exchange:
// the captured prompt and attachment, the placeholder awaiting the reply,
// and the text accumulated from the stream.
type pendingExchange struct {
	prompt      string
	attachment  Attachment
	placeholder *Turn
	accumulated strings.Builder
}

func (ex *pendingExchange) request() Request {
	var parts []Part
	if !ex.attachment.Empty() {
		parts = append(parts, Part{Inline: ex.attachment.Data, MIME: ex.attachment.MIME})
	}
	if ex.prompt != "" {
		parts = append(parts, Part{Text: ex.prompt})
	}
	return Request{Parts: parts}
}

// Session coordinates exchanges with the backend. At most one exchange is
// in flight at any time; Send refuses to start a second one until the
// current one has resolved back to idle.
type Session struct {
	backend Backend
	store   *Store
	log     *Log
	logger  *logger.Logger

	mu    sync.Mutex
	state State
	busy  func(bool)
}

func NewSession(backend Backend, store *Store, log *Log) *Session {
	return &Session{
		backend: backend,
		store:   store,
		log:     log,
		logger:  logger.NewLogger("session"),
		state:   StateIdle,
	}
}

// OnBusyChanged registers the send-affordance hook. busy=true fires
// synchronously inside Send; busy=false fires from the exchange goroutine
// once the placeholder has resolved.
func (s *Session) OnBusyChanged(fn func(bool)) {
	s.mu.Lock()
	s.busy = fn
	s.mu.Unlock()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Send begins one exchange. The prompt and the pending attachment are
// captured by value before anything else happens, so later edits to the
// live input or store cannot leak into the outgoing request. On success the
// user turn and a placeholder model turn are already appended, the store is
// cleared, and the caller should clear the live input.
func (s *Session) Send(prompt string) error {
	trimmed := strings.TrimSpace(prompt)
	attachment, hasAttachment := s.store.Current()

	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return ErrBusy
	}
	if trimmed == "" && !hasAttachment {
		s.mu.Unlock()
		return ErrNothingToSend
	}
	s.state = StateSending
	busy := s.busy
	s.mu.Unlock()

	ex := &pendingExchange{
		prompt:      trimmed,
		attachment:  attachment,
		placeholder: NewPendingTurn(),
	}

	s.log.Append(NewUserTurn(trimmed, attachment.Name))
	s.log.Append(ex.placeholder)
	s.store.Clear()
	if busy != nil {
		busy(true)
	}

	s.logger.Info("exchange started (attachment: ", hasAttachment, ")")
	go s.run(ex)
	return nil
}

// run drives one exchange to resolution: issue the call, fold the chunk
// stream into the accumulated text, then hand the result to the parser.
// Every path, including failure, converges back to idle.
func (s *Session) run(ex *pendingExchange) {
	stream, err := s.backend.Generate(context.Background(), ex.request())
	if err != nil {
		s.logger.Error("backend call failed: ", err)
		s.resolve(ex, ErrorEnvelopeJSON(err.Error()))
		return
	}

	s.setState(StateStreaming)
	for chunk := range stream {
		if chunk.Err != nil {
			s.logger.Error("stream failed: ", chunk.Err)
			s.resolve(ex, ErrorEnvelopeJSON(chunk.Err.Error()))
			return
		}
		ex.accumulated.WriteString(chunk.Delta)
	}

	raw := ex.accumulated.String()
	if strings.TrimSpace(raw) == "" {
		s.logger.Warn("stream produced no text")
		s.resolve(ex, ErrorEnvelopeJSON(ErrEmptyStream.Error()))
		return
	}
	s.resolve(ex, raw)
}

// resolve parses the accumulated payload, replaces the placeholder in
// place and returns the session to idle with the send affordance enabled.
func (s *Session) resolve(ex *pendingExchange, raw string) {
	env := Parse(raw)
	s.log.Resolve(ex.placeholder, env.Response, env.Suggestions)

	s.mu.Lock()
	s.state = StateIdle
	busy := s.busy
	s.mu.Unlock()

	if busy != nil {
		busy(false)
	}
	s.logger.Info("exchange resolved (", len(env.Suggestions), " suggestions)")
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
