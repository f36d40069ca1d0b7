// Package prompt reads interactive command lines.
package prompt

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/footprint-tools/dispatch/internal/domain"
	"github.com/footprint-tools/dispatch/internal/log"
)

// Completer returns completions for the current input line.
type Completer func(line string) []string

// LinerReader is a line-editing reader with persistent history.
type LinerReader struct {
	line        *liner.State
	historyFile string
}

// NewLinerReader takes over the terminal. Close must be called to restore it.
// An empty historyFile disables history persistence.
func NewLinerReader(historyFile string, complete Completer) *LinerReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	if complete != nil {
		line.SetCompleter(liner.Completer(complete))
	}

	r := &LinerReader{line: line, historyFile: historyFile}
	r.loadHistory()
	return r
}

func (r *LinerReader) loadHistory() {
	if r.historyFile == "" {
		return
	}
	f, err := os.Open(r.historyFile)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	if _, err := r.line.ReadHistory(f); err != nil {
		log.Warn("prompt: read history: %v", err)
	}
}

// ReadLine implements domain.LineReader.
func (r *LinerReader) ReadLine(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", domain.ErrInputAborted
		}
		return "", err
	}

	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// Close saves history with owner-only permissions and restores the terminal.
func (r *LinerReader) Close() error {
	r.saveHistory()
	return r.line.Close()
}

func (r *LinerReader) saveHistory() {
	if r.historyFile == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(r.historyFile), 0700); err != nil {
		log.Warn("prompt: create history directory: %v", err)
		return
	}

	f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		log.Warn("prompt: open history: %v", err)
		return
	}
	defer func() { _ = f.Close() }()

	if _, err := r.line.WriteHistory(f); err != nil {
		log.Warn("prompt: write history: %v", err)
	}
}

var (
	_ domain.LineReader = (*LinerReader)(nil)
	_ io.Closer         = (*LinerReader)(nil)
)
