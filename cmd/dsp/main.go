package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/footprint-tools/dispatch/internal/app"
	"github.com/footprint-tools/dispatch/internal/cli"
	"github.com/footprint-tools/dispatch/internal/config"
	"github.com/footprint-tools/dispatch/internal/paths"
	"github.com/footprint-tools/dispatch/internal/prompt"
)

// runner carries the process streams so tests can drive the root command.
type runner struct {
	flags    cli.ProcessFlags
	stdin    io.Reader
	stdout   io.Writer
	exitCode int
}

func main() {
	code, err := execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dsp:", err)
	}
	os.Exit(code)
}

func (r *runner) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dsp [flags] [command [args...]]",
		Short: "Run user management commands",
		Long: `dsp runs one command given on the command line, or reads commands
interactively when none is given. Type "help" for the command list and
"exit" to leave interactive mode.

Examples:
  dsp user create --name=alice --admin
  dsp list --admin
  dsp help --command=user`,
		Args:          cobra.ArbitraryArgs,
		RunE:          r.run,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	// Everything from the first command token on belongs to the dispatcher.
	cmd.Flags().SetInterspersed(false)
	r.flags.Register(cmd.Flags())
	return cmd
}

func (r *runner) run(cmd *cobra.Command, args []string) error {
	configPath := r.flags.ConfigPath
	if configPath == "" {
		configPath = paths.ConfigFilePath()
	}
	envFile := r.flags.EnvFile
	if envFile == "" {
		if _, err := os.Stat(paths.EnvFilePath()); err == nil {
			envFile = paths.EnvFilePath()
		}
	}

	cfg, err := config.Resolve(configPath, envFile)
	if err != nil {
		return err
	}

	opts := app.DefaultOptions(cfg, r.flags)
	if f, ok := r.stdout.(*os.File); ok {
		opts.StyleEnabled = opts.StyleEnabled && term.IsTerminal(int(f.Fd()))
	} else {
		opts.Out = r.stdout
		opts.StyleEnabled = false
	}

	a, err := app.New(opts)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(a) }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if len(args) > 0 {
		rep := a.Dispatcher.Execute(ctx, args)
		r.exitCode = rep.ExitCode()
		return nil
	}

	if err := config.Watch(ctx, configPath, func(next config.Config) {
		if err := a.Reload(next); err != nil {
			fmt.Fprintln(os.Stderr, "dsp:", err)
		}
	}); err != nil {
		a.Logger.WithError(err).Warn("config reload disabled")
	}

	reader := r.openReader(a)
	defer func() { _ = reader.Close() }()

	return a.Dispatcher.Interact(ctx, reader)
}

func (r *runner) openReader(a *app.Application) prompt.Reader {
	if r.stdin == os.Stdin {
		return prompt.Open(a.Config.HistoryFile, a.Registry.Complete)
	}
	return prompt.NewScannerReader(r.stdin, nil)
}

// execute runs the root command and returns the process exit code.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) (int, error) {
	r := &runner{stdin: stdin, stdout: stdout}
	cmd := r.rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	if err := cmd.ExecuteContext(ctx); err != nil {
		return 1, err
	}
	return r.exitCode, nil
}
