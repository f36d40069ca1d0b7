package help

import (
	"context"
	"errors"
	"strings"

	"github.com/footprint-tools/dispatch/internal/dispatchers"
	"github.com/footprint-tools/dispatch/internal/usage"
)

// Binding targets of the help command.
const (
	ArgInteractive = "interactive"
	ArgCommand     = "command"
)

// Handler prints the command reference, one command's subtree, or opens the browser.
func Handler(deps Deps) dispatchers.HandlerFunc {
	return func(ctx context.Context, args *dispatchers.Arguments) error {
		return show(ctx, args, deps)
	}
}

func show(_ context.Context, args *dispatchers.Arguments, deps Deps) error {
	if args.Bool(ArgInteractive) {
		return browse(deps)
	}

	reg := deps.Registry

	if path := args.String(ArgCommand); path != "" {
		id, err := lookup(reg, path)
		if err != nil {
			return err
		}
		text, err := reg.ComposeTreeHelp(id)
		if err != nil {
			return err
		}
		deps.Out.Pager(text)
		return nil
	}

	text, err := reg.ComposeAllHelp()
	if err != nil {
		return err
	}
	deps.Out.Pager(text)
	return nil
}

// lookup finds a command by its space- or dot-separated path.
func lookup(reg *dispatchers.Registry, path string) (dispatchers.NodeID, error) {
	tokens := strings.Fields(strings.ReplaceAll(path, ".", " "))

	res, ok := reg.Resolve(tokens)
	if !ok {
		first := ""
		if len(tokens) > 0 {
			first = tokens[0]
		}
		return dispatchers.NoParent, usage.UnknownCommand(path, reg.Suggest(first, 3)...)
	}
	if len(res.Remaining) > 0 {
		return dispatchers.NoParent, usage.UnknownCommand(path, reg.SuggestChild(res.Node, res.Remaining[0], 3)...)
	}
	return res.Node, nil
}

func browse(deps Deps) error {
	if !deps.IsTerminal() {
		return errors.New("help browser requires an interactive terminal")
	}
	return deps.RunProgram(newModel(deps.Registry))
}
