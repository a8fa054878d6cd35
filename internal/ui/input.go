package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bz888/banter/internal/chat"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func setInputCapture(mainFlex *tview.Flex) {
	textArea.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {

		switch event.Key() {
		case tcell.KeyESC:
			if textView.GetText(false) != "" {
				app.SetFocus(textView)
			}
		case tcell.KeyEnter:
			// Shift+Enter and Alt+Enter insert a newline
			if event.Modifiers()&(tcell.ModShift|tcell.ModAlt) != 0 {
				return event
			}

			content := textArea.GetText()
			trimmed := strings.TrimSpace(content)
			if trimmed == "" && !hasAttachment() {
				return nil
			}
			if strings.HasPrefix(trimmed, "/") {
				runCommand(trimmed, mainFlex)
				return nil
			}

			submit(content)
			return nil
		}
		return event
	})
}

func runCommand(trimmed string, mainFlex *tview.Flex) {
	fields := strings.Fields(trimmed)

	switch fields[0] {
	case "/help":
		listHelp()
	case "/bye": // todo, /quit /exit should all work the same
		quitApp()
	case "/debug":
		toggleDebugConsole(mainFlex)
	case "/attach":
		if len(fields) < 2 {
			appendNotice("Usage: /attach <path-to-image>")
			break
		}
		attachImage(strings.TrimSpace(strings.TrimPrefix(trimmed, "/attach")))
	case "/detach":
		detachImage()
	default:
		appendNotice(fmt.Sprintf("Unknown command: %s. Try /help.", fields[0]))
	}

	textArea.SetText("", true)
}

func submit(content string) {
	if err := sess.Send(content); err != nil {
		switch {
		case errors.Is(err, chat.ErrBusy):
			localLogger.Warn("Send rejected, an exchange is already in flight")
		case errors.Is(err, chat.ErrNothingToSend):
			localLogger.Warn("Nothing to send")
		default:
			localLogger.Error("Send failed: ", err)
		}
		return
	}

	textArea.SetText("", true)
	updateComposerTitle()
}

func hasAttachment() bool {
	_, ok := store.Current()
	return ok
}

func attachImage(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		localLogger.Error("Failed to read image: ", err)
		appendNotice(fmt.Sprintf("**Error:** could not read %s", path))
		return
	}

	mimeType := detectImageMIME(path, data)
	if mimeType == "" {
		localLogger.Error("Unsupported image format: ", path)
		appendNotice(fmt.Sprintf("**Error:** unsupported image format: %s", filepath.Ext(path)))
		return
	}

	if _, err := store.Attach(data, mimeType, filepath.Base(path)); err != nil {
		localLogger.Error("Failed to attach image: ", err)
		appendNotice("**Error:** " + err.Error())
		return
	}

	localLogger.Info("Attached image: ", path)
	updateComposerTitle()
}

func detachImage() {
	store.Clear()
	updateComposerTitle()
}

// detectImageMIME resolves the media type from the file extension, then
// from magic bytes. Returns "" for anything that is not a known image.
func detectImageMIME(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".bmp":
		return "image/bmp"
	}

	if len(data) >= 4 {
		// PNG
		if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 {
			return "image/png"
		}
		// JPEG
		if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
			return "image/jpeg"
		}
		// GIF
		if data[0] == 0x47 && data[1] == 0x49 && data[2] == 0x46 {
			return "image/gif"
		}
		// BMP
		if data[0] == 0x42 && data[1] == 0x4D {
			return "image/bmp"
		}
	}
	// WebP
	if len(data) >= 12 &&
		data[0] == 0x52 && data[1] == 0x49 && data[2] == 0x46 && data[3] == 0x46 &&
		data[8] == 0x57 && data[9] == 0x45 && data[10] == 0x42 && data[11] == 0x50 {
		return "image/webp"
	}

	return ""
}
