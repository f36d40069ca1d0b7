package app

import (
	"fmt"
	"io"
	"sync"

	"github.com/footprint-tools/dispatch/internal/cli"
	"github.com/footprint-tools/dispatch/internal/config"
	"github.com/footprint-tools/dispatch/internal/dispatchers"
	"github.com/footprint-tools/dispatch/internal/domain"
	"github.com/footprint-tools/dispatch/internal/log"
	"github.com/footprint-tools/dispatch/internal/store"
	"github.com/footprint-tools/dispatch/internal/ui"
	"github.com/footprint-tools/dispatch/internal/ui/style"
)

// Version is set at build time with -ldflags "-X .../internal/app.Version=...".
var Version = "dev"

// Application holds the wired components of one dsp process.
type Application struct {
	mu sync.Mutex

	Config     config.Config
	Registry   *dispatchers.Registry
	Dispatcher *dispatchers.Dispatcher
	Store      *store.Store
	Logger     domain.Logger
	Output     domain.OutputWriter
	Styler     domain.Styler
}

// Options configures the application factory.
type Options struct {
	Config config.Config

	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Style options
	StyleEnabled bool

	// Out replaces stdout; the pager is never used for it.
	Out io.Writer
}

// DefaultOptions returns options for cfg with the process flags applied.
func DefaultOptions(cfg config.Config, flags cli.ProcessFlags) Options {
	pager := cfg.Pager
	if flags.Pager != "" {
		pager = flags.Pager
	}
	return Options{
		Config:        cfg,
		PagerDisabled: flags.NoPager,
		PagerOverride: pager,
		StyleEnabled:  cfg.Color && !flags.NoColor,
	}
}

// New creates an Application with all dependencies wired up.
func New(opts Options) (*Application, error) {
	cfg := opts.Config

	var logger domain.Logger = log.NopLogger{}
	if cfg.EnableLog {
		l, err := log.Init(cfg.LogFile, log.ParseLevel(cfg.LogLevel))
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		logger = l
	}

	st, err := store.New(cfg.Database)
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	style.Init(opts.StyleEnabled)

	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerCommand(opts.PagerOverride))
	}
	var out *ui.Writer
	if opts.Out != nil {
		out = ui.NewWriterTo(opts.Out, writerOpts...)
	} else {
		out = ui.NewWriter(writerOpts...)
	}

	a := &Application{
		Config: cfg,
		Store:  st,
		Logger: logger,
		Output: out,
		Styler: style.NewStyler(),
	}
	if err := a.wire(); err != nil {
		_ = Close(a)
		return nil, err
	}
	return a, nil
}

// NewForTesting creates an Application over an in-memory store writing to out,
// with no logging, styling or pager.
func NewForTesting(out io.Writer) (*Application, error) {
	st, err := store.New(store.MemoryPath)
	if err != nil {
		return nil, err
	}
	a := &Application{
		Config: config.Defaults(),
		Store:  st,
		Logger: log.NopLogger{},
		Output: ui.NewWriterTo(out, ui.WithPagerDisabled()),
		Styler: style.NopStyler{},
	}
	if err := a.wire(); err != nil {
		_ = Close(a)
		return nil, err
	}
	return a, nil
}

func (a *Application) wire() error {
	reg, err := cli.BuildRegistry()
	if err != nil {
		return err
	}
	resolver, err := NewResolver(reg, a.Store, a.Output, a.Styler)
	if err != nil {
		return err
	}

	a.Registry = reg
	a.Dispatcher = dispatchers.NewDispatcher(reg, resolver,
		dispatchers.WithLogger(a.Logger),
		dispatchers.WithOutput(a.Output),
		dispatchers.WithStyler(a.Styler),
		dispatchers.WithPrompt(a.Config.Prompt),
	)
	return nil
}

// Reload applies the logging settings of a reloaded config. The first reload that
// enables logging in a process started without it opens the log file and hands the
// logger to the dispatcher.
func (a *Application) Reload(next config.Config) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if l, ok := a.Logger.(*log.Logger); ok {
		l.SetLevel(log.ParseLevel(next.LogLevel))
		l.SetEnabled(next.EnableLog)
		return nil
	}
	if !next.EnableLog {
		return nil
	}

	l, err := log.Init(next.LogFile, log.ParseLevel(next.LogLevel))
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	a.Logger = l
	if a.Dispatcher != nil {
		a.Dispatcher.SetLogger(l)
	}
	l.Info("logging enabled by config reload")
	return nil
}

// Close cleans up application resources.
func Close(app *Application) error {
	if app == nil {
		return nil
	}
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.Logger != nil {
		if l, ok := app.Logger.(*log.Logger); ok && log.GetLogger() == l {
			log.SetDefault(nil)
		}
		_ = app.Logger.Close()
	}
	if app.Store != nil {
		_ = app.Store.Close()
	}
	return nil
}
