package completions

import (
	"context"
	"fmt"
	"os"

	"github.com/footprint-tools/dispatch/internal/completions"
	"github.com/footprint-tools/dispatch/internal/dispatchers"
	"github.com/footprint-tools/dispatch/internal/domain"
)

// Binding targets of the completion command.
const (
	ArgShell  = "shell"
	ArgScript = "script"
)

type Deps struct {
	Registry *dispatchers.Registry
	Out      domain.OutputWriter
	Getenv   func(string) string
	Binary   func() (path, name string)
}

func DefaultDeps(reg *dispatchers.Registry, out domain.OutputWriter) Deps {
	return Deps{
		Registry: reg,
		Out:      out,
		Getenv:   os.Getenv,
		Binary:   completions.Binary,
	}
}

// Completions prints a shell completion script, or instructions for installing one.
func Completions(deps Deps) dispatchers.HandlerFunc {
	return func(ctx context.Context, args *dispatchers.Arguments) error {
		return completionsCmd(ctx, args, deps)
	}
}

func completionsCmd(_ context.Context, args *dispatchers.Arguments, deps Deps) error {
	var shell completions.Shell

	if name := args.String(ArgShell); name != "" {
		sh, err := completions.ParseShell(name)
		if err != nil {
			return err
		}
		shell = sh
	} else {
		shell = completions.DetectShell(deps.Getenv)
		if shell == "" {
			return fmt.Errorf("could not detect shell, specify one: completion --shell=<bash|zsh|fish>")
		}
	}

	binPath, bin := deps.Binary()

	if args.Bool(ArgScript) {
		return completions.PrintCompletions(deps.Out, shell, bin, deps.Registry)
	}

	printInstructions(shell, binPath, bin, deps)
	return nil
}

func printInstructions(shell completions.Shell, binPath, bin string, deps Deps) {
	out := deps.Out
	_, _ = out.Println("To enable completions, choose one of the following:")
	_, _ = out.Println()

	optionNum := 1

	if autoPath := completions.AutoInstallPath(shell, bin); autoPath != "" {
		_, _ = out.Printf("%d. Write to auto-load directory:\n", optionNum)
		_, _ = out.Printf("   %s completion --shell=%s --script > %s\n", bin, shell, autoPath)
		_, _ = out.Println()
		optionNum++
	}

	_, _ = out.Printf("%d. Add to %s:\n", optionNum, completions.RcFile(shell))
	_, _ = out.Printf("   %s\n", completions.SourceInstructions(shell, binPath))
	_, _ = out.Println()

	_, _ = out.Println("Then restart your shell or run: exec $SHELL")
}
