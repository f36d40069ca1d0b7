package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScannerReader(t *testing.T) {
	r := NewScannerReader(strings.NewReader("user create --name=Ada\r\n\nexit\n"), nil)

	line, err := r.ReadLine("> ")
	require.NoError(t, err)
	require.Equal(t, "user create --name=Ada", line)

	line, err = r.ReadLine("> ")
	require.NoError(t, err)
	require.Equal(t, "", line)

	line, err = r.ReadLine("> ")
	require.NoError(t, err)
	require.Equal(t, "exit", line)

	_, err = r.ReadLine("> ")
	require.ErrorIs(t, err, io.EOF)
	require.NoError(t, r.Close())
}

func TestScannerReader_EchoesPrompt(t *testing.T) {
	var echo bytes.Buffer
	r := NewScannerReader(strings.NewReader("list\n"), &echo)

	_, err := r.ReadLine("dsp> ")
	require.NoError(t, err)
	require.Equal(t, "dsp> ", echo.String())
}

func TestScannerReader_NoTrailingNewline(t *testing.T) {
	r := NewScannerReader(strings.NewReader("version"), nil)

	line, err := r.ReadLine("")
	require.NoError(t, err)
	require.Equal(t, "version", line)

	_, err = r.ReadLine("")
	require.ErrorIs(t, err, io.EOF)
}

func TestScannerReader_LongLine(t *testing.T) {
	long := "list --limit=" + strings.Repeat("9", 70000)
	r := NewScannerReader(strings.NewReader(long+"\nlist\n"), nil)

	line, err := r.ReadLine("")
	require.NoError(t, err)
	require.Equal(t, long, line)

	line, err = r.ReadLine("")
	require.NoError(t, err)
	require.Equal(t, "list", line)

	_, err = r.ReadLine("")
	require.ErrorIs(t, err, io.EOF)
}
