package dispatchers

// State is the dispatch cycle phase an invocation ended in.
type State int

const (
	StateIdle State = iota
	StateResolving
	StateBinding
	StateExecuting
	StateReporting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResolving:
		return "resolving"
	case StateBinding:
		return "binding"
	case StateExecuting:
		return "executing"
	case StateReporting:
		return "reporting"
	default:
		return "unknown"
	}
}

// Outcome classifies how an invocation finished.
type Outcome int

const (
	OutcomeSucceeded Outcome = iota
	OutcomeUnknownCommand
	OutcomeInvalidArguments
	OutcomeIncomplete
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeUnknownCommand:
		return "unknown command"
	case OutcomeInvalidArguments:
		return "invalid arguments"
	case OutcomeIncomplete:
		return "incomplete command"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Report describes one completed dispatch cycle.
type Report struct {
	InvocationID string
	Input        []string
	Command      CommandID // empty when resolution failed
	State        State     // phase in which the cycle ended
	Outcome      Outcome
	Err          error
}

// OK reports whether the command ran successfully.
func (r Report) OK() bool {
	return r.Outcome == OutcomeSucceeded
}

// ExitCode maps the outcome to a process exit code for one-shot mode.
//
//	0: success
//	1: unknown command, handler failure
//	2: invalid arguments, incomplete command
func (r Report) ExitCode() int {
	switch r.Outcome {
	case OutcomeSucceeded:
		return 0
	case OutcomeInvalidArguments, OutcomeIncomplete:
		return 2
	default:
		return 1
	}
}
