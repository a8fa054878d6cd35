package chat

import (
	"encoding/json"
	"strings"
)

// NoAnswerFallback is shown when the backend returns a well-formed envelope
// without a usable response field.
const NoAnswerFallback = "No answer was produced. Please try again."

// Parse interprets the accumulated stream as a reply envelope, degrading
// gracefully instead of failing:
//   - well-formed envelope with a response: used as-is
//   - well-formed envelope without a response: fixed fallback body,
//     suggestions still honored
//   - anything else: the raw text becomes the body, with no suggestions
func Parse(raw string) Envelope {
	var env Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return Envelope{Response: raw}
	}
	if strings.TrimSpace(env.Response) == "" {
		env.Response = NoAnswerFallback
	}
	return env
}

// ErrorEnvelopeJSON builds the JSON form of a synthetic error envelope, so
// backend failures travel the same parse/render path as successful replies.
// Marshalling keeps the message safely escaped inside the envelope.
func ErrorEnvelopeJSON(message string) string {
	b, _ := json.Marshal(Envelope{
		Response:    "**Error:** " + message,
		Suggestions: []string{},
	})
	return string(b)
}
