package domain

import (
	"context"
	"errors"
	"io"
)

// ErrInputAborted is returned by a LineReader when the operator interrupts input (Ctrl-C).
var ErrInputAborted = errors.New("input aborted")

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// WithError returns a logger that attaches err to every entry.
	WithError(err error) Logger

	// WithTags returns a logger that attaches free-form tags to every entry.
	WithTags(tags ...string) Logger

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// LineReader supplies interactive input one line at a time.
// It returns io.EOF when input ends and ErrInputAborted when the operator interrupts.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// UserStore defines the user operations available to command handlers.
type UserStore interface {
	// CreateUser inserts a user. Returns ErrUserExists if the name is taken.
	CreateUser(ctx context.Context, user User) error

	// RemoveUser deletes a user by name. Returns ErrUserNotFound if absent.
	RemoveUser(ctx context.Context, name string) error

	// RenameUser changes a user's name. Returns ErrUserNotFound or ErrUserExists.
	RenameUser(ctx context.Context, from, to string) error

	// ListUsers returns users matching the filter, ordered by name.
	ListUsers(ctx context.Context, filter UserFilter) ([]User, error)
}
