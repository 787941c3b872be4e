package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Fields map[string]any

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// Logger writes leveled lines to stdout and a rotated file. The zero
// instance logs to stderr until Initialize is called.
type Logger struct {
	mu    sync.RWMutex
	level LogLevel
	out   *log.Logger
}

var (
	instance *Logger
	once     sync.Once
)

func GetInstance() *Logger {
	once.Do(func() {
		instance = &Logger{
			level: INFO,
			out:   log.New(os.Stderr, "", log.LstdFlags),
		}
	})
	return instance
}

// Initialize points the logger at logDir/app.log with rotation and applies
// the level. An empty logDir keeps logging to stdout only.
func (l *Logger) Initialize(logDir, level string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var w io.Writer = os.Stdout
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		fileWriter := &lumberjack.Logger{
			Filename:   filepath.Join(logDir, "app.log"),
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		}
		w = io.MultiWriter(os.Stdout, fileWriter)
	}

	l.out = log.New(w, "", log.LstdFlags)
	l.level = parseLevel(level)
	return nil
}

func (l *Logger) write(level LogLevel, msg string, fields Fields) {
	l.mu.RLock()
	currentLevel := l.level
	out := l.out
	l.mu.RUnlock()

	if level < currentLevel {
		return
	}

	prefix := fmt.Sprintf("[%s]", levelNames[level])
	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
		}
		prefix = fmt.Sprintf("%s [%s]", prefix, strings.Join(parts, " "))
	}

	out.Printf("%s %s", prefix, msg)
}

func (l *Logger) Debug(msg string) { l.write(DEBUG, msg, nil) }
func (l *Logger) Info(msg string)  { l.write(INFO, msg, nil) }
func (l *Logger) Warn(msg string)  { l.write(WARN, msg, nil) }
func (l *Logger) Error(msg string) { l.write(ERROR, msg, nil) }

func (l *Logger) Debugf(format string, args ...any) {
	l.write(DEBUG, fmt.Sprintf(format, args...), nil)
}

func (l *Logger) Infof(format string, args ...any) {
	l.write(INFO, fmt.Sprintf(format, args...), nil)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.write(WARN, fmt.Sprintf(format, args...), nil)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.write(ERROR, fmt.Sprintf(format, args...), nil)
}

// WithFields returns an entry that adds key=value pairs to every line,
// sorted by key.
func (l *Logger) WithFields(fields Fields) *Entry {
	return &Entry{logger: l, fields: fields}
}

type Entry struct {
	logger *Logger
	fields Fields
}

func (e *Entry) Debug(msg string) { e.logger.write(DEBUG, msg, e.fields) }
func (e *Entry) Info(msg string)  { e.logger.write(INFO, msg, e.fields) }
func (e *Entry) Warn(msg string)  { e.logger.write(WARN, msg, e.fields) }
func (e *Entry) Error(msg string) { e.logger.write(ERROR, msg, e.fields) }

func (e *Entry) Debugf(format string, args ...any) {
	e.logger.write(DEBUG, fmt.Sprintf(format, args...), e.fields)
}

func (e *Entry) Infof(format string, args ...any) {
	e.logger.write(INFO, fmt.Sprintf(format, args...), e.fields)
}

func (e *Entry) Warnf(format string, args ...any) {
	e.logger.write(WARN, fmt.Sprintf(format, args...), e.fields)
}

func (e *Entry) Errorf(format string, args ...any) {
	e.logger.write(ERROR, fmt.Sprintf(format, args...), e.fields)
}

func parseLevel(value string) LogLevel {
	switch strings.TrimSpace(strings.ToUpper(value)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARNING", "WARN":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}
