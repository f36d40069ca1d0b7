package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/footprint-tools/dispatch/internal/domain"
)

// Level is the minimum severity a logger writes.
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

func (l Level) logrus() logrus.Level {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.WarnLevel
	}
}

// ParseLevel converts a string to a Level.
// Valid values: "debug", "info", "warn", "error" (case insensitive).
// Returns LevelWarn if the string is not recognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

const tagsField = "tags"

// Logger writes diagnostic entries through logrus. Derived loggers from WithError and
// WithTags share the root's output; only the root closes it.
type Logger struct {
	base   *logrus.Logger
	entry  *logrus.Entry
	tags   []string
	out    io.Writer
	closer io.Closer
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
)

// Init creates a logger for logPath and installs it as the package default.
func Init(logPath string, minLevel Level) (*Logger, error) {
	l, err := New(logPath, minLevel)
	if err != nil {
		return nil, err
	}
	SetDefault(l)
	return l, nil
}

// SetDefault replaces the package default logger. A nil l restores the no-op default.
func SetDefault(l *Logger) {
	defaultLoggerMu.Lock()
	defaultLogger = l
	defaultLoggerMu.Unlock()
}

// New creates a logger appending to logPath. The file and its directory are created
// owner-only.
func New(logPath string, minLevel Level) (*Logger, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	// Fix permissions of an existing file before opening it.
	if info, err := os.Stat(logPath); err == nil {
		if info.Mode().Perm() != 0600 {
			if err := os.Chmod(logPath, 0600); err != nil {
				return nil, fmt.Errorf("chmod existing log file: %w", err)
			}
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := NewWithWriter(file, minLevel)
	l.closer = file
	return l, nil
}

// NewWithWriter creates a logger writing to w. Closing it does not close w.
func NewWithWriter(w io.Writer, minLevel Level) *Logger {
	base := logrus.New()
	base.SetOutput(w)
	base.SetFormatter(&lineFormatter{})
	base.SetLevel(minLevel.logrus())

	return &Logger{
		base:  base,
		entry: logrus.NewEntry(base),
		out:   w,
	}
}

// Close closes the log file if this logger owns one.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	c := l.closer
	l.closer = nil
	return c.Close()
}

// SetLevel changes the minimum level for this logger and every logger derived from it.
func (l *Logger) SetLevel(level Level) {
	if l == nil {
		return
	}
	l.base.SetLevel(level.logrus())
}

// SetEnabled enables or disables logging.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil {
		return
	}
	if enabled {
		l.base.SetOutput(l.out)
		return
	}
	l.base.SetOutput(io.Discard)
}

// WithError returns a logger that attaches err to every entry.
func (l *Logger) WithError(err error) domain.Logger {
	if l == nil {
		return NopLogger{}
	}
	return &Logger{
		base:  l.base,
		entry: l.entry.WithError(err),
		tags:  l.tags,
		out:   l.out,
	}
}

// WithTags returns a logger that appends tags to every entry.
func (l *Logger) WithTags(tags ...string) domain.Logger {
	if l == nil {
		return NopLogger{}
	}
	merged := make([]string, 0, len(l.tags)+len(tags))
	merged = append(merged, l.tags...)
	merged = append(merged, tags...)
	return &Logger{
		base:  l.base,
		entry: l.entry.WithField(tagsField, merged),
		tags:  merged,
		out:   l.out,
	}
}

// Debug writes a debug message.
func (l *Logger) Debug(format string, args ...any) {
	if l != nil {
		l.entry.Debugf(format, args...)
	}
}

// Info writes an informational message.
func (l *Logger) Info(format string, args ...any) {
	if l != nil {
		l.entry.Infof(format, args...)
	}
}

// Warn writes a warning.
func (l *Logger) Warn(format string, args ...any) {
	if l != nil {
		l.entry.Warnf(format, args...)
	}
}

// Error writes an error.
func (l *Logger) Error(format string, args ...any) {
	if l != nil {
		l.entry.Errorf(format, args...)
	}
}

// lineFormatter renders one entry per line:
//
//	[2006-01-02 15:04:05] LEVEL: message error=... tags=a,b key=value
type lineFormatter struct{}

func (f *lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s: %s", e.Time.Format("2006-01-02 15:04:05"), levelName(e.Level), e.Message)

	if err, ok := e.Data[logrus.ErrorKey]; ok {
		fmt.Fprintf(&b, " error=%v", err)
	}
	if tags, ok := e.Data[tagsField].([]string); ok && len(tags) > 0 {
		fmt.Fprintf(&b, " tags=%s", strings.Join(tags, ","))
	}

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		if k != logrus.ErrorKey && k != tagsField {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func levelName(l logrus.Level) string {
	switch l {
	case logrus.TraceLevel, logrus.DebugLevel:
		return LevelDebug.String()
	case logrus.InfoLevel:
		return LevelInfo.String()
	case logrus.WarnLevel:
		return LevelWarn.String()
	default:
		return LevelError.String()
	}
}

// Convenience functions over the global logger.

// Debug writes a debug message to the global logger.
func Debug(format string, args ...any) {
	if l := GetLogger(); l != nil {
		l.Debug(format, args...)
	}
}

// Info writes an informational message to the global logger.
func Info(format string, args ...any) {
	if l := GetLogger(); l != nil {
		l.Info(format, args...)
	}
}

// Warn writes a warning to the global logger.
func Warn(format string, args ...any) {
	if l := GetLogger(); l != nil {
		l.Warn(format, args...)
	}
}

// Error writes an error to the global logger.
func Error(format string, args ...any) {
	if l := GetLogger(); l != nil {
		l.Error(format, args...)
	}
}

// Close closes the global logger.
func Close() error {
	if l := GetLogger(); l != nil {
		return l.Close()
	}
	return nil
}

// GetLogger returns the global logger, nil before Init.
func GetLogger() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// Default returns the global logger, or a NopLogger before Init.
func Default() domain.Logger {
	if l := GetLogger(); l != nil {
		return l
	}
	return NopLogger{}
}

// NopLogger is a logger that discards all messages.
// Useful for testing or when logging is disabled.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any)             {}
func (NopLogger) Info(_ string, _ ...any)              {}
func (NopLogger) Warn(_ string, _ ...any)              {}
func (NopLogger) Error(_ string, _ ...any)             {}
func (n NopLogger) WithError(_ error) domain.Logger    { return n }
func (n NopLogger) WithTags(_ ...string) domain.Logger { return n }
func (NopLogger) Close() error                         { return nil }

// Verify Logger implements domain.Logger
var _ domain.Logger = (*Logger)(nil)
var _ domain.Logger = NopLogger{}
