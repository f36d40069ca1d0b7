package usage

import "fmt"

// HelpComposition is returned when help cannot be rendered for a command.
func HelpComposition(ref string, cause error) *Error {
	return &Error{
		Kind:    ErrHelpComposition,
		Message: fmt.Sprintf("dsp: unable to compose help for %s", ref),
		Err:     cause,
	}
}

// HandlerNotFound is returned when no handler is bound to a resolved command.
func HandlerNotFound(path string) *Error {
	return &Error{
		Kind:    ErrHandlerNotFound,
		Message: fmt.Sprintf("dsp: no handler registered for command '%s'", path),
		Command: path,
	}
}

// HandlerExecution wraps a failure raised while running a command's handler.
func HandlerExecution(path string, cause error) *Error {
	return &Error{
		Kind:    ErrHandlerExecution,
		Message: fmt.Sprintf("dsp: command '%s' failed: %v", path, cause),
		Command: path,
		Err:     cause,
	}
}
