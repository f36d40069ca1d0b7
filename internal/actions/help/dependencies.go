package help

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/footprint-tools/dispatch/internal/dispatchers"
	"github.com/footprint-tools/dispatch/internal/domain"
)

type Deps struct {
	Registry   *dispatchers.Registry
	Out        domain.OutputWriter
	IsTerminal func() bool
	RunProgram func(m tea.Model) error
}

func DefaultDeps(reg *dispatchers.Registry, out domain.OutputWriter) Deps {
	return Deps{
		Registry: reg,
		Out:      out,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		RunProgram: func(m tea.Model) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
			return err
		},
	}
}
