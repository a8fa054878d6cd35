package chat

import "sync"

// Log is the append-only, ordered record of conversation turns. Past turns
// are never removed or edited; the one allowed mutation is resolving a
// pending placeholder in place.
type Log struct {
	mu       sync.Mutex
	turns    []*Turn
	onChange func()
}

func NewLog() *Log {
	return &Log{}
}

// OnChange registers a callback fired after every append or resolve. It may
// be invoked from the exchange goroutine as well as the caller's.
func (l *Log) OnChange(fn func()) {
	l.mu.Lock()
	l.onChange = fn
	l.mu.Unlock()
}

// Append adds a turn to the end of the log.
func (l *Log) Append(t *Turn) {
	l.mu.Lock()
	l.turns = append(l.turns, t)
	fn := l.onChange
	l.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Resolve fills in a placeholder turn's content without reordering the log.
// Resolving a turn that is not pending is a no-op.
func (l *Log) Resolve(t *Turn, body string, suggestions []string) {
	l.mu.Lock()
	if !t.Pending {
		l.mu.Unlock()
		return
	}
	t.Body = body
	t.Suggestions = suggestions
	t.Pending = false
	fn := l.onChange
	l.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Turns returns a snapshot of the log in display order.
func (l *Log) Turns() []*Turn {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.turns)
}
