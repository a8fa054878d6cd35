package ui

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/bz888/banter/internal/chat"
	"github.com/bz888/banter/internal/config"
	"github.com/bz888/banter/internal/logger"
	"github.com/bz888/banter/internal/render"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var app *tview.Application
var wg sync.WaitGroup

var (
	debugConsole *tview.TextView
	textView     *tview.TextView
	textArea     *tview.TextArea
	localLogger  *logger.Logger
)

var (
	sess     *chat.Session
	store    *chat.Store
	convoLog *chat.Log
	meta     *config.Metadata
	rend     *render.Renderer

	debugVisible bool
)

func Init() {
	app = tview.NewApplication()
	app.EnablePaste(true)
	app.EnableMouse(true)

	debugConsole = initDebugConsole()

	textView = initChatViewer()
	textArea = initChatInput()
}

func initChatViewer() *tview.TextView {
	textView := tview.NewTextView().
		SetChangedFunc(func() {
			app.Draw()
		}).
		SetDynamicColors(true).
		SetRegions(true).
		SetWordWrap(true)

	textView.SetTitle("Conversation").SetBorder(true)
	textView.SetScrollable(true)
	textView.ScrollToEnd()
	return textView
}

func initChatInput() *tview.TextArea {
	textArea := tview.NewTextArea()
	textArea.SetTitle("Question").SetBorder(true)
	return textArea
}

func initDebugConsole() *tview.TextView {
	console := tview.NewTextView().
		SetChangedFunc(func() {
			app.Draw()
		}).
		SetDynamicColors(true).
		SetRegions(true).
		SetWordWrap(true)

	console.SetTitle("Debugger").SetBorder(true)
	console.ScrollToEnd()
	return console
}

// Bind connects the widgets to the chat core. Init must have run first;
// call Bind once before Run.
func Bind(session *chat.Session, attachments *chat.Store, conversation *chat.Log, metadata *config.Metadata) {
	localLogger = logger.NewLogger("views")

	sess = session
	store = attachments
	convoLog = conversation
	meta = metadata
	rend = render.New(100)

	if meta != nil && meta.Name != "" {
		textView.SetTitle(meta.Name)
	}

	// The log changes from the event goroutine (Append on send, command
	// notices) and from the exchange goroutine (Resolve), so the redraw
	// always goes through the update queue. The extra goroutine keeps an
	// in-handler Append from blocking on a full queue.
	convoLog.OnChange(func() {
		go app.QueueUpdateDraw(redrawConversation)
	})

	// busy(true) fires inside Send on the event goroutine; busy(false)
	// fires from the exchange goroutine once the reply resolves.
	sess.OnBusyChanged(func(busy bool) {
		if busy {
			textArea.SetDisabled(true)
			return
		}
		app.QueueUpdateDraw(func() {
			textArea.SetDisabled(false)
			app.SetFocus(textArea)
		})
	})

	textView.SetHighlightedFunc(onChipSelected)

	redrawConversation()
}

func Run() {
	textView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter:
			app.SetFocus(textArea)
		}
		return event
	})

	subFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(textView, 0, 1, false).
		AddItem(textArea, 8, 2, true)
	mainFlex := tview.NewFlex().
		AddItem(subFlex, 0, 2, false)

	if config.Dev {
		mainFlex.AddItem(debugConsole, 0, 1, true)
		debugVisible = true
	}

	// setup input capture logic
	setInputCapture(mainFlex)

	if err := app.SetRoot(mainFlex, true).SetFocus(textArea).Run(); err != nil {
		panic(err)
	}
}

func toggleDebugConsole(mainFlex *tview.Flex) {
	if debugVisible {
		mainFlex.RemoveItem(debugConsole)
		debugVisible = false
		appendNotice("Debug console disabled")
		return
	}
	mainFlex.AddItem(debugConsole, 0, 1, false)
	debugVisible = true
	appendNotice("Debug console enabled")
}

func quitApp() {
	appendNotice("Bye bye")

	wg.Add(1)
	go func() {
		defer wg.Done()
		localLogger.Close()
		app.Stop()
		log.Println("Shutting down gracefully.")
	}()

	wg.Wait()
	os.Exit(0)
}

func listHelp() {
	appendNotice(`Here are some commands you can use:

- /help: Display this help message
- /bye: Exit the application
- /debug: Toggle the debug console
- /attach <path>: Attach an image to the next question
- /detach: Remove the attached image`)
}

func GetDebugConsole() (*tview.TextView, error) {
	if debugConsole == nil {
		return nil, errors.New("debug console not initialized")
	}
	return debugConsole, nil
}

func updateComposerTitle() {
	if current, ok := store.Current(); ok {
		textArea.SetTitle(fmt.Sprintf("Question [image: %s]", current.Name))
		return
	}
	textArea.SetTitle("Question")
}
