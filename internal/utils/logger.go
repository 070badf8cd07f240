package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// DefaultLogPath is where logs go when no path is configured.
// The TUI owns the terminal, so logs never go to stdout.
var DefaultLogPath = filepath.Join(os.TempDir(), "regexninja.log")

// Logger provides a centralized logging mechanism for RegexNinja
type Logger struct {
	log  *logrus.Logger
	file *os.File
	mu   sync.Mutex
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// GetLogger returns the default logger instance (singleton pattern)
func GetLogger() *Logger {
	once.Do(func() {
		var err error
		defaultLogger, err = NewLogger(DefaultLogPath, logrus.InfoLevel)
		if err != nil {
			// Fallback to stderr if we can't create the log file
			defaultLogger = newStderrLogger(logrus.InfoLevel)
			defaultLogger.Warning("failed to create log file, falling back to stderr: %v", err)
		}
	})
	return defaultLogger
}

// Init replaces the default logger with one writing to logPath at the given level.
// An empty logPath uses DefaultLogPath.
func Init(logPath, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if logPath == "" {
		logPath = DefaultLogPath
	}

	logger, err := NewLogger(logPath, lvl)
	if err != nil {
		return err
	}

	// Make sure GetLogger does not overwrite the configured instance later
	once.Do(func() {})
	if defaultLogger != nil {
		defaultLogger.Close()
	}
	defaultLogger = logger
	return nil
}

// NewLogger creates a new logger that writes to the specified file
func NewLogger(logPath string, level logrus.Level) (*Logger, error) {
	// Ensure the directory exists
	dir := filepath.Dir(logPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Open or create the log file
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := newLogrus(level)
	l.SetOutput(file)

	return &Logger{
		log:  l,
		file: file,
	}, nil
}

func newStderrLogger(level logrus.Level) *Logger {
	l := newLogrus(level)
	l.SetOutput(os.Stderr)
	return &Logger{log: l}
}

func newLogrus(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// Entry returns a logrus entry carrying fields, for structured call sites
func (l *Logger) Entry(fields logrus.Fields) *logrus.Entry {
	return l.log.WithFields(fields)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Warnf(format, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Debugf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Errorf(format, args...)
}

// Close closes the log file (if any)
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		// Entries handed out earlier must not write to the closed descriptor
		l.log.SetOutput(io.Discard)
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Convenience functions for the default logger
func Warning(format string, args ...interface{}) {
	GetLogger().Warning(format, args...)
}

func Debug(format string, args ...interface{}) {
	GetLogger().Debug(format, args...)
}

func Error(format string, args ...interface{}) {
	GetLogger().Error(format, args...)
}
