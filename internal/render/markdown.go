// Package render turns turn bodies into tview markup.
package render

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rivo/tview"
)

// Renderer renders model markdown for the conversation view.
type Renderer struct {
	term *glamour.TermRenderer
}

func New(wrap int) *Renderer {
	term, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return &Renderer{}
	}
	return &Renderer{term: term}
}

// Markdown renders model-authored markdown. The text goes through the
// terminal renderer first, and any region tag that survives it verbatim
// is escaped so the model cannot open clickable regions in its own turn.
// Render failures fall back to the escaped raw text.
func (r *Renderer) Markdown(md string) string {
	if r.term == nil {
		return Plain(md)
	}
	out, err := r.term.Render(md)
	if err != nil {
		return Plain(md)
	}
	return escapeRegions(tview.TranslateANSI(strings.Trim(out, "\n")))
}

// regionTags matches the region id syntax tview recognizes. ANSI
// translation only ever emits color tags, so any match here came from
// the model's own text.
var regionTags = regexp.MustCompile(`\["[a-zA-Z0-9_,;: \-\.]*"\]`)

// escapeRegions rewrites region tags so they display literally.
func escapeRegions(s string) string {
	return regionTags.ReplaceAllStringFunc(s, func(tag string) string {
		return tag[:len(tag)-1] + "[]"
	})
}

// Plain escapes text so tview prints it literally. User text and other
// untrusted literals go through here, never through the markdown path.
func Plain(text string) string {
	return tview.Escape(text)
}
