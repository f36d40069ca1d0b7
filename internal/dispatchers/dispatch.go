package dispatchers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/footprint-tools/dispatch/internal/domain"
	"github.com/footprint-tools/dispatch/internal/log"
	"github.com/footprint-tools/dispatch/internal/ui"
	"github.com/footprint-tools/dispatch/internal/ui/style"
	"github.com/footprint-tools/dispatch/internal/usage"
)

const (
	// ExitSentinel ends interactive mode, compared case-insensitively.
	ExitSentinel = "exit"

	// Separator closes every report so successive commands stay scannable.
	Separator = "-----------------"

	defaultPrompt = "> "
)

// Dispatcher drives resolve, bind and execute cycles over a Registry.
// Cycles never overlap; the only state shared between them is the immutable Registry.
type Dispatcher struct {
	registry *Registry
	resolver HandlerResolver
	loggerMu sync.RWMutex
	logger   domain.Logger
	out      domain.OutputWriter
	styler   domain.Styler
	prompt   string
	newID    func() string
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the diagnostic logger.
func WithLogger(l domain.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// WithOutput sets where operator-facing reports are written.
func WithOutput(w domain.OutputWriter) Option {
	return func(d *Dispatcher) {
		d.out = w
	}
}

// WithStyler sets the styler for status lines.
func WithStyler(s domain.Styler) Option {
	return func(d *Dispatcher) {
		d.styler = s
	}
}

// WithPrompt sets the interactive prompt.
func WithPrompt(p string) Option {
	return func(d *Dispatcher) {
		d.prompt = p
	}
}

// WithInvocationIDs overrides invocation id generation.
func WithInvocationIDs(fn func() string) Option {
	return func(d *Dispatcher) {
		d.newID = fn
	}
}

// NewDispatcher creates a Dispatcher for reg whose handlers come from resolver.
func NewDispatcher(reg *Registry, resolver HandlerResolver, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: reg,
		resolver: resolver,
		logger:   log.NopLogger{},
		out:      ui.NewWriter(ui.WithPagerDisabled()),
		styler:   style.NopStyler{},
		prompt:   defaultPrompt,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetLogger replaces the diagnostic logger. Cycles already running keep the logger they
// started with.
func (d *Dispatcher) SetLogger(l domain.Logger) {
	d.loggerMu.Lock()
	d.logger = l
	d.loggerMu.Unlock()
}

func (d *Dispatcher) currentLogger() domain.Logger {
	d.loggerMu.RLock()
	defer d.loggerMu.RUnlock()
	return d.logger
}

// Registry returns the dispatcher's command tree.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// ExecuteOnce tokenizes a raw line and runs one dispatch cycle.
// Failures are reported and returned in the Report, never as a panic or error.
func (d *Dispatcher) ExecuteOnce(ctx context.Context, line string) Report {
	rep := Report{InvocationID: d.newID(), State: StateResolving}
	logger := d.currentLogger().WithTags("invocation:" + rep.InvocationID)
	logger.Info("executing command: [%s]", line)

	tokens, err := Tokenize(line)
	if err != nil {
		rep.Err = err
		rep.Outcome = OutcomeInvalidArguments
		logger.WithError(err).Warn("tokenize failed")
		d.out.Println(d.styler.Error(err.Error()))
		d.displayAllHelp(logger)
		return rep
	}

	rep.Input = tokens
	return d.run(ctx, logger, rep)
}

// Execute runs one dispatch cycle over already tokenized input, as received from a
// process's argument vector.
func (d *Dispatcher) Execute(ctx context.Context, tokens []string) Report {
	rep := Report{
		InvocationID: d.newID(),
		Input:        append([]string(nil), tokens...),
		State:        StateResolving,
	}
	logger := d.currentLogger().WithTags("invocation:" + rep.InvocationID)
	logger.Info("executing command: [%s]", strings.Join(tokens, " "))

	return d.run(ctx, logger, rep)
}

func (d *Dispatcher) run(ctx context.Context, logger domain.Logger, rep Report) Report {
	res, ok := d.registry.Resolve(rep.Input)
	if !ok {
		return d.reportUnknown(logger, rep)
	}

	cmd, _ := d.registry.Node(res.Node)
	rep.Command = cmd.ID
	logger = logger.WithTags("command:" + string(cmd.ID))

	rep.State = StateBinding
	args, err := Bind(cmd, res.Remaining)
	if err != nil {
		return d.reportInvalid(logger, rep, res.Node, err)
	}

	rep.State = StateExecuting
	err = d.invoke(ctx, logger, cmd, args)

	rep.State = StateReporting
	switch {
	case err == nil:
		rep.Outcome = OutcomeSucceeded
		logger.Info("command executed successfully")
		d.out.Println(d.styler.Success("Command executed successfully."))
		d.separator()

	case usage.IsValidation(err):
		return d.reportInvalid(logger, rep, res.Node, err)

	case usage.ClassFor(err) == usage.ClassResolution:
		rep.Err = err
		rep.Outcome = OutcomeUnknownCommand
		logger.WithError(err).Warn("handler reported an unknown command")
		d.out.Println(d.styler.Error(err.Error()))
		d.displayAllHelp(logger)

	case usage.KindOf(err) == usage.ErrHandlerNotFound && len(d.registry.Children(res.Node)) > 0:
		rep.Err = err
		rep.Outcome = OutcomeIncomplete
		logger.Info("command group invoked without a subcommand")
		d.out.Println(d.styler.Warning("Command requires a subcommand."))
		d.displayTreeHelp(logger, res.Node)

	default:
		rep.Err = err
		rep.Outcome = OutcomeFailed
		logger.WithError(err).Error("command finished with error")
		d.out.Println(d.styler.Error("Command finished with error."))
		d.out.Println(d.styler.Muted(err.Error()))
		d.separator()
	}
	return rep
}

// invoke runs the handler inside a fresh scope. The scope is closed on every path,
// including handler panics, and its close error surfaces if nothing else failed.
func (d *Dispatcher) invoke(ctx context.Context, logger domain.Logger, cmd Command, args *Arguments) (err error) {
	scope, err := d.resolver.BeginScope(ctx)
	if err != nil {
		return usage.HandlerExecution(cmd.PathString(), fmt.Errorf("begin scope: %w", err))
	}
	defer func() {
		if cerr := scope.Close(err); cerr != nil {
			logger.WithError(cerr).Warn("release scope")
			if err == nil {
				err = usage.HandlerExecution(cmd.PathString(), fmt.Errorf("release scope: %w", cerr))
			}
		}
	}()

	h, ok := scope.Handler(cmd.ID)
	if !ok {
		return usage.HandlerNotFound(cmd.PathString())
	}

	logger.Debug("invoking handler")
	return runHandler(ctx, h, args)
}

func runHandler(ctx context.Context, h Handler, args *Arguments) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h.Handle(ctx, args)
}

func (d *Dispatcher) reportUnknown(logger domain.Logger, rep Report) Report {
	var suggestions []string
	input := ""
	if len(rep.Input) > 0 {
		input = rep.Input[0]
		suggestions = d.registry.Suggest(input, defaultSuggestionsCount)
	}

	rep.Err = usage.UnknownCommand(input, suggestions...)
	rep.Outcome = OutcomeUnknownCommand
	logger.Error("unknown command")

	d.out.Println(d.styler.Error("Unknown command."))
	if len(suggestions) > 0 {
		d.out.Println("Did you mean?")
		for _, s := range suggestions {
			d.out.Println("\t" + d.styler.Info(s))
		}
	}
	d.displayAllHelp(logger)
	return rep
}

func (d *Dispatcher) reportInvalid(logger domain.Logger, rep Report, id NodeID, err error) Report {
	rep.Err = err
	rep.Outcome = OutcomeInvalidArguments
	logger.WithError(err).Warn("invalid arguments")

	d.out.Println(d.styler.Error(err.Error()))
	d.displayHelp(logger, id)
	return rep
}

func (d *Dispatcher) displayAllHelp(logger domain.Logger) {
	help, err := d.registry.ComposeAllHelp()
	d.writeHelp(logger, "List of commands (help):", help, err)
}

func (d *Dispatcher) displayHelp(logger domain.Logger, id NodeID) {
	help, err := d.registry.ComposeHelp(id)
	d.writeHelp(logger, "Command help:", help, err)
}

func (d *Dispatcher) displayTreeHelp(logger domain.Logger, id NodeID) {
	help, err := d.registry.ComposeTreeHelp(id)
	d.writeHelp(logger, "Command help:", help, err)
}

func (d *Dispatcher) writeHelp(logger domain.Logger, title, help string, err error) {
	if err != nil {
		logger.WithError(err).Error("unable to compose help information")
		d.out.Println(d.styler.Warning("Unable to compose help information."))
		d.separator()
		return
	}
	d.out.Println(d.styler.Header(title))
	d.out.Printf("%s", help)
	d.separator()
}

func (d *Dispatcher) separator() {
	d.out.Println(d.styler.Muted(Separator))
}

// Interact reads lines until the exit sentinel, end of input, an operator abort or ctx
// cancellation. Blank lines are skipped; every other line runs through ExecuteOnce and
// no command failure ends the loop.
func (d *Dispatcher) Interact(ctx context.Context, in domain.LineReader) error {
	d.currentLogger().Info("interactive mode started")
	d.out.Println("Type a command...")

	for {
		if ctx.Err() != nil {
			d.currentLogger().Info("interactive mode cancelled")
			return nil
		}

		line, err := in.ReadLine(d.prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, domain.ErrInputAborted) {
				d.currentLogger().Info("interactive input closed")
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.EqualFold(trimmed, ExitSentinel) {
			d.currentLogger().Info("exit requested")
			return nil
		}

		d.ExecuteOnce(ctx, line)
	}
}
