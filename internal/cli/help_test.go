package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/dispatch/internal/dispatchers"
)

// Parsing the flag column of a command's help back through ParseArgumentToken yields
// exactly the external names the command declares.
func TestComposeHelp_ArgumentNamesRoundTrip(t *testing.T) {
	reg, err := BuildRegistry()
	require.NoError(t, err)

	visited := 0
	reg.Walk(func(id dispatchers.NodeID, _ int) bool {
		visited++
		cmd, ok := reg.Node(id)
		require.True(t, ok)

		help, err := reg.ComposeHelp(id)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSuffix(help, "\n"), "\n")
		require.False(t, strings.HasPrefix(lines[0], "\t"), "header of %s", cmd.ID)

		var parsed []string
		for _, line := range lines[1:] {
			require.True(t, strings.HasPrefix(line, "\t"), "argument line of %s: %q", cmd.ID, line)
			flags, _, ok := strings.Cut(strings.TrimPrefix(line, "\t"), "\t")
			require.True(t, ok, "argument line of %s has no help column: %q", cmd.ID, line)

			for _, flag := range strings.Fields(flags) {
				tok := dispatchers.ParseArgumentToken(flag)
				require.False(t, tok.HasValue)
				parsed = append(parsed, tok.Name)
			}
		}

		declared := make([]string, 0, len(cmd.Args))
		for _, arg := range cmd.Args {
			declared = append(declared, arg.Name)
		}
		require.ElementsMatch(t, declared, parsed, "command %s", cmd.ID)
		return true
	})
	require.Equal(t, reg.Len(), visited)
}
