package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAppendKeepsOrder(t *testing.T) {
	l := NewLog()

	l.Append(NewUserTurn("one", ""))
	l.Append(NewPendingTurn())
	l.Append(NewUserTurn("two", ""))

	turns := l.Turns()
	require.Len(t, turns, 3)
	assert.Equal(t, "one", turns[0].Body)
	assert.True(t, turns[1].Pending)
	assert.Equal(t, "two", turns[2].Body)
}

func TestLogResolveReplacesInPlace(t *testing.T) {
	l := NewLog()
	l.Append(NewUserTurn("question", ""))
	placeholder := NewPendingTurn()
	l.Append(placeholder)

	l.Resolve(placeholder, "answer", []string{"more"})

	turns := l.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, placeholder.ID, turns[1].ID)
	assert.False(t, turns[1].Pending)
	assert.Equal(t, "answer", turns[1].Body)
	assert.Equal(t, []string{"more"}, turns[1].Suggestions)
}

func TestLogResolveIgnoresSettledTurns(t *testing.T) {
	l := NewLog()
	turn := NewModelTurn("final", nil)
	l.Append(turn)

	l.Resolve(turn, "changed", nil)

	assert.Equal(t, "final", l.Turns()[0].Body)
}

func TestLogOnChangeFires(t *testing.T) {
	l := NewLog()
	var events int
	l.OnChange(func() { events++ })

	placeholder := NewPendingTurn()
	l.Append(NewUserTurn("hi", ""))
	l.Append(placeholder)
	l.Resolve(placeholder, "done", nil)

	assert.Equal(t, 3, events)
}

func TestLogTurnsIsASnapshot(t *testing.T) {
	l := NewLog()
	l.Append(NewUserTurn("hi", ""))

	turns := l.Turns()
	l.Append(NewUserTurn("again", ""))

	assert.Len(t, turns, 1)
	assert.Equal(t, 2, l.Len())
}
