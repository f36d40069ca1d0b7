package actions

import (
	"context"

	"github.com/footprint-tools/dispatch/internal/dispatchers"
)

func ShowVersion(deps Deps) dispatchers.HandlerFunc {
	return func(ctx context.Context, args *dispatchers.Arguments) error {
		return showVersion(ctx, args, deps)
	}
}

func showVersion(_ context.Context, _ *dispatchers.Arguments, deps Deps) error {
	_, _ = deps.Out.Printf("dsp version %v\n", deps.Version())
	return nil
}
