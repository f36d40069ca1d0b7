package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_PrintsToTarget(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf)

	_, err := w.Printf("%s=%d\n", "a", 1)
	require.NoError(t, err)
	_, err = w.Println("b", 2)
	require.NoError(t, err)
	_, err = w.Write([]byte("c"))
	require.NoError(t, err)

	require.Equal(t, "a=1\nb 2\nc", buf.String())
}

func TestWriter_PagerFallsBackForBuffers(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf, WithPagerCommand("definitely-not-a-pager"))

	w.Pager("help text\n")
	require.Equal(t, "help text\n", buf.String())
}

func TestWriter_PagerDisabled(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf, WithPagerDisabled())

	w.Pager("content")
	require.Equal(t, "content", buf.String())
}

func TestWriter_PagerSkipsNonTerminalFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	f, err := os.Create(path)
	require.NoError(t, err)

	w := NewWriterTo(f, WithEnvGetter(func(string) string { return "false" }))
	w.Pager("to file\n")
	require.NoError(t, f.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "to file\n", string(got))
}

func TestWriter_PagerRunsConfiguredCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	f, err := os.Create(path)
	require.NoError(t, err)

	w := NewWriterTo(f, WithPagerCommand("cat"))
	w.isTerminal = func(int) bool { return true }
	w.Pager("bypassed\n")
	require.NoError(t, f.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "bypassed\n", string(got))
}

func TestIsBypassPager(t *testing.T) {
	require.True(t, isBypassPager("cat"))
	require.True(t, isBypassPager(" cat "))
	require.False(t, isBypassPager("less -R"))
}
