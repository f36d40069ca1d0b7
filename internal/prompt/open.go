package prompt

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/footprint-tools/dispatch/internal/domain"
)

// Reader is a LineReader that must be closed when the session ends.
type Reader interface {
	domain.LineReader
	io.Closer
}

// Open returns a line-editing reader when stdin is a terminal and a plain scanner
// over stdin otherwise.
func Open(historyFile string, complete Completer) Reader {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return NewLinerReader(historyFile, complete)
	}
	return NewScannerReader(os.Stdin, nil)
}
