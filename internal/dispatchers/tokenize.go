package dispatchers

import (
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/footprint-tools/dispatch/internal/usage"
)

// shellSpecial holds the characters shellwords treats as operators outside quotes.
const shellSpecial = ";&|<>()`"

// Tokenize splits a raw input line on whitespace. Single- or double-quoted segments are
// kept whole and lose their quotes, so `--name="John Q Public"` becomes one token
// `--name=John Q Public`. Every other character, backslashes and shell operators
// included, is kept as typed.
func Tokenize(line string) ([]string, error) {
	tokens, err := shellwords.NewParser().Parse(escapeLiterals(line))
	if err != nil {
		return nil, usage.MalformedInput(line, "unbalanced quotes")
	}
	return tokens, nil
}

// escapeLiterals backslash-escapes what shellwords would otherwise interpret, leaving
// only whitespace and quotes meaningful. Single-quoted text is already literal.
func escapeLiterals(line string) string {
	var b strings.Builder
	b.Grow(len(line) + 8)

	var single, double bool
	for _, r := range line {
		switch {
		case r == '\'' && !double:
			single = !single
		case r == '"' && !single:
			double = !double
		case r == '\\' && !single:
			b.WriteByte('\\')
		case !single && !double && strings.ContainsRune(shellSpecial, r):
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
