package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/footprint-tools/dispatch/internal/domain"
)

// ScannerReader reads lines from a non-interactive source such as a pipe.
// Lines may be of any length.
type ScannerReader struct {
	in   *bufio.Reader
	echo io.Writer
}

// NewScannerReader reads from in. When echo is non-nil the prompt is written to it
// before each line.
func NewScannerReader(in io.Reader, echo io.Writer) *ScannerReader {
	return &ScannerReader{in: bufio.NewReader(in), echo: echo}
}

// ReadLine implements domain.LineReader. It returns io.EOF once input is exhausted.
func (r *ScannerReader) ReadLine(prompt string) (string, error) {
	if r.echo != nil {
		fmt.Fprint(r.echo, prompt)
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", io.EOF
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Close implements io.Closer.
func (r *ScannerReader) Close() error { return nil }

var _ domain.LineReader = (*ScannerReader)(nil)
