package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rivo/tview"
)

type Level int

const (
	Info Level = iota
	Error
	Warn
	Fatal
)

func (lv Level) String() string {
	switch lv {
	case Info:
		return "INFO"
	case Error:
		return "ERROR"
	case Warn:
		return "WARN"
	case Fatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

type Message struct {
	Timestamp time.Time
	Tag       string
	Text      string
	Level     Level
}

// Logger writes tagged log lines to the session log file and, in dev mode,
// mirrors them into the debug console view.
type Logger struct {
	view    *tview.TextView
	tag     string
	dev     bool
	logFile *os.File
	logChan chan Message
	done    chan struct{}
}

var (
	logManager *Logger
	once       sync.Once
)

// InitLogger sets up the shared sink. logPath names a directory for the
// session log file; empty disables file logging. view receives dev-mode
// lines and may be nil.
func InitLogger(dev bool, logPath string, view *tview.TextView) {
	once.Do(func() {
		logManager = &Logger{
			view:    view,
			dev:     dev,
			logChan: make(chan Message, 100),
			done:    make(chan struct{}),
		}
		if logPath != "" {
			fileName := fmt.Sprintf("banter_%s.log", time.Now().Format("20060102_150405"))
			file, err := os.OpenFile(filepath.Join(logPath, fileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				log.Fatalf("Failed to open log file: %s", err)
			}
			logManager.logFile = file
		}

		go logManager.processLogs()
	})
}

// NewLogger returns a tagged logger sharing the initialized sink. Before
// InitLogger runs it returns an inert logger, so packages can construct
// theirs in any order (and under test).
func NewLogger(tag string) *Logger {
	if logManager == nil {
		return &Logger{tag: tag}
	}
	return &Logger{
		view:    logManager.view,
		tag:     tag,
		dev:     logManager.dev,
		logFile: logManager.logFile,
		logChan: logManager.logChan,
		done:    logManager.done,
	}
}

func (l *Logger) processLogs() {
	for {
		select {
		case msg := <-l.logChan:
			l.write(msg)
		case <-l.done:
			for {
				select {
				case msg := <-l.logChan:
					l.write(msg)
				default:
					if l.logFile != nil {
						l.logFile.Close()
					}
					return
				}
			}
		}
	}
}

func (l *Logger) write(msg Message) {
	if l.logFile == nil {
		return
	}
	line := fmt.Sprintf("%s [%s] %s: %s\n",
		msg.Timestamp.Format("2006-01-02 15:04:05"), msg.Tag, msg.Level, msg.Text)
	l.logFile.WriteString(line)
}

func (l *Logger) log(level Level, v ...interface{}) {
	text := fmt.Sprint(v...)

	if l.dev && l.view != nil {
		var color string
		switch level {
		case Error, Fatal:
			color = "red"
		case Warn:
			color = "yellow"
		default:
			color = "green"
		}
		fmt.Fprintf(l.view, "[%s]%s (%s): %s[-]\n", color, level, l.tag, text)
	}

	if l.logChan != nil {
		select {
		case l.logChan <- Message{Timestamp: time.Now(), Tag: l.tag, Text: text, Level: level}:
		default:
			// drop rather than stall the UI when the sink backs up
		}
	}
}

func (l *Logger) Info(v ...interface{}) {
	l.log(Info, v...)
}

func (l *Logger) Error(v ...interface{}) {
	l.log(Error, v...)
}

func (l *Logger) Warn(v ...interface{}) {
	l.log(Warn, v...)
}

func (l *Logger) Fatal(v ...interface{}) {
	l.log(Fatal, v...)
	os.Exit(1)
}

// Close drains pending messages and closes the log file. Call once, on
// shutdown, from the logger that owns the session.
func (l *Logger) Close() {
	if l.done == nil {
		return
	}
	select {
	case <-l.done:
	default:
		close(l.done)
	}
}
