// Package log provides structured logging for masthead.
// Entries carry a level, a category and key=value fields, and are written to
// a file (optionally opened through tea.LogToFile) or any io.Writer.
// Logging is a no-op until one of the Init functions or SetOutput is called.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a case-insensitive level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Category groups related log messages.
type Category string

const (
	CatCatalog Category = "catalog" // Entity construction and queries
	CatConfig  Category = "config"  // Configuration loading/saving
)

// Logger provides structured logging.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	writer   io.Writer
	enabled  bool
	minLevel Level
}

var (
	loggerMu      sync.Mutex
	defaultLogger *Logger
)

// Init opens path for appending and installs it as the global log sink.
// Returns a cleanup function to close the log file.
func Init(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G304: path comes from configuration
	if err != nil {
		return nil, err
	}
	install(&Logger{file: f, writer: f, enabled: true, minLevel: LevelDebug})
	return closer(f), nil
}

// InitWithTeaLog uses tea.LogToFile for initialization.
func InitWithTeaLog(path string, prefix string) (func(), error) {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, err
	}
	install(&Logger{file: f, writer: f, enabled: true, minLevel: LevelDebug})
	return closer(f), nil
}

// SetOutput installs w as the global log sink. Passing nil disables logging.
func SetOutput(w io.Writer) {
	if w == nil {
		install(nil)
		return
	}
	install(&Logger{writer: w, enabled: true, minLevel: LevelDebug})
}

func install(l *Logger) {
	loggerMu.Lock()
	defaultLogger = l
	loggerMu.Unlock()
}

func current() *Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	return defaultLogger
}

func closer(f *os.File) func() {
	return func() {
		loggerMu.Lock()
		if defaultLogger != nil && defaultLogger.file == f {
			defaultLogger = nil
		}
		loggerMu.Unlock()
		_ = f.Close()
	}
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	log(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	log(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	log(LevelWarn, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	log(LevelError, cat, msg, fields...)
}

func log(level Level, cat Category, msg string, fields ...any) {
	l := current()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.minLevel || l.writer == nil {
		return
	}

	// Format: 2025-12-06T10:45:00 [DEBUG] [catalog] work created key=value key2=value2
	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02T15:04:05"))
	fmt.Fprintf(&b, " [%s] [%s] %s", level, cat, msg)

	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	// Odd field count: orphan key with no value
	if len(fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(l.writer, b.String())
}
