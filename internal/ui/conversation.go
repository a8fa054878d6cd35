package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bz888/banter/internal/chat"
	"github.com/bz888/banter/internal/render"
)

// chips maps a region id in the conversation view to the suggestion text
// behind it. Rebuilt on every redraw.
var (
	chipsMu sync.Mutex
	chips   = map[string]string{}
)

// redrawConversation rebuilds the whole conversation view from the log.
// Turns are few and short, so a full rebuild per change keeps the
// placeholder swap and chip regions trivial.
func redrawConversation() {
	turns := convoLog.Turns()

	var sb strings.Builder
	if meta != nil && meta.Description != "" {
		fmt.Fprintf(&sb, "[gray::d]%s[-:-:-]\n\n", render.Plain(meta.Description))
	}

	chipsMu.Lock()
	chips = map[string]string{}
	for _, turn := range turns {
		switch turn.Role {
		case chat.RoleUser:
			writeUserTurn(&sb, turn)
		case chat.RoleModel:
			writeModelTurn(&sb, turn)
		}
	}
	chipsMu.Unlock()

	textView.SetText(sb.String())
	textView.Highlight()
	textView.ScrollToEnd()
}

func writeUserTurn(sb *strings.Builder, turn *chat.Turn) {
	sb.WriteString("[red::b]You:[-:-:-]\n")
	if turn.Body != "" {
		sb.WriteString(render.Plain(turn.Body))
		sb.WriteString("\n")
	}
	if turn.ImageName != "" {
		fmt.Fprintf(sb, "[gray::d](image: %s)[-:-:-]\n", render.Plain(turn.ImageName))
	}
	sb.WriteString("\n")
}

func writeModelTurn(sb *strings.Builder, turn *chat.Turn) {
	fmt.Fprintf(sb, "[green::b]%s:[-:-:-]\n", render.Plain(botName()))
	if turn.Pending {
		sb.WriteString("[gray::d]thinking...[-:-:-]\n\n")
		return
	}

	sb.WriteString(rend.Markdown(turn.Body))
	sb.WriteString("\n")

	if len(turn.Suggestions) > 0 {
		for i, suggestion := range turn.Suggestions {
			id := fmt.Sprintf("%s-%d", turn.ID, i)
			chips[id] = suggestion
			fmt.Fprintf(sb, "[\"%s\"][yellow::u]%s[-:-:-][\"\"]  ", id, render.Plain(suggestion))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

// onChipSelected fires when a suggestion region is clicked. The tapped
// text goes into the compose box; nothing is sent and the attachment is
// left alone.
func onChipSelected(added, removed, remaining []string) {
	if len(added) == 0 {
		return
	}

	chipsMu.Lock()
	suggestion, ok := chips[added[0]]
	chipsMu.Unlock()
	if !ok {
		return
	}

	localLogger.Info("Suggestion tapped: ", suggestion)
	textView.Highlight()
	textArea.SetText(suggestion, true)
	app.SetFocus(textArea)
}

// appendNotice adds a local model turn, for command output and startup
// problems. It rides the same render path as real replies.
func appendNotice(text string) {
	convoLog.Append(chat.NewModelTurn(text, nil))
}

func botName() string {
	if meta != nil && meta.Name != "" {
		return meta.Name
	}
	return "Bot"
}
