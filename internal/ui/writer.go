// Package ui provides terminal output with pager support.
//
// The pager runs whatever command the user configured (config, --pager or $PAGER),
// the same way git and man do.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
	"golang.org/x/term"

	"github.com/footprint-tools/dispatch/internal/domain"
)

const defaultPager = "less -FRSX"

// Writer implements domain.OutputWriter.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	pagerCommand  string
	envGetter     func(string) string
	isTerminal    func(fd int) bool
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithPagerCommand sets the pager command, taking precedence over $PAGER.
func WithPagerCommand(cmd string) WriterOption {
	return func(w *Writer) {
		w.pagerCommand = cmd
	}
}

// WithEnvGetter sets the environment variable getter function.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// NewWriter creates a new Writer that writes to stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a new Writer that writes to the specified writer.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:        out,
		envGetter:  os.Getenv,
		isTerminal: term.IsTerminal,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager displays content through a pager if appropriate.
func (w *Writer) Pager(content string) {
	// 1. Pager disabled
	if w.pagerDisabled {
		fmt.Fprint(w.out, content)
		return
	}

	// 2. Not a TTY; non-file outputs such as bytes.Buffer never page
	f, ok := w.out.(*os.File)
	if !ok || !w.isTerminal(int(f.Fd())) {
		fmt.Fprint(w.out, content)
		return
	}

	// 3. Configured pager, then $PAGER, then less
	pager := w.pagerCommand
	if pager == "" && w.envGetter != nil {
		pager = w.envGetter("PAGER")
	}
	if pager == "" {
		pager = defaultPager
	}

	if isBypassPager(pager) {
		fmt.Fprint(w.out, content)
		return
	}
	w.runPagerCmd(f, pager, content)
}

func isBypassPager(cmd string) bool {
	return strings.TrimSpace(cmd) == "cat"
}

func (w *Writer) runPagerCmd(out *os.File, pagerCmd string, content string) {
	parts, err := shellwords.Parse(pagerCmd)
	if err != nil || len(parts) == 0 {
		fmt.Fprint(w.out, content)
		return
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = out
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Fprint(w.out, content)
	}
}

// Verify Writer implements domain.OutputWriter
var _ domain.OutputWriter = (*Writer)(nil)
