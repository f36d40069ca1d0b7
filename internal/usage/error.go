package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota

	// registration
	ErrDuplicateCommandName
	ErrMissingCommandMetadata
	ErrDuplicateArgumentName
	ErrConflictingArgumentType

	// resolution
	ErrUnknownCommand

	// validation
	ErrUnknownArgument
	ErrMissingValue
	ErrInvalidBooleanValue
	ErrInvalidIntegerValue
	ErrDuplicateArgumentBinding
	ErrMalformedInput

	// help
	ErrHelpComposition

	// execution
	ErrHandlerNotFound
	ErrHandlerExecution
)

// Class groups error kinds by how the dispatcher treats them.
type Class int

const (
	ClassUnknown Class = iota
	ClassRegistration
	ClassResolution
	ClassValidation
	ClassHelp
	ClassExecution
)

var classes = map[ErrorKind]Class{
	ErrDuplicateCommandName:     ClassRegistration,
	ErrMissingCommandMetadata:   ClassRegistration,
	ErrDuplicateArgumentName:    ClassRegistration,
	ErrConflictingArgumentType:  ClassRegistration,
	ErrUnknownCommand:           ClassResolution,
	ErrUnknownArgument:          ClassValidation,
	ErrMissingValue:             ClassValidation,
	ErrInvalidBooleanValue:      ClassValidation,
	ErrInvalidIntegerValue:      ClassValidation,
	ErrDuplicateArgumentBinding: ClassValidation,
	ErrMalformedInput:           ClassValidation,
	ErrHelpComposition:          ClassHelp,
	ErrHandlerNotFound:          ClassExecution,
	ErrHandlerExecution:         ClassExecution,
}

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Registration errors
//	  - Unknown command
//	  - Help composition
//	  - Handler not found / handler failure
//
//	Exit 2: User input errors
//	  - Every validation kind
var exitCodes = map[Class]int{
	ClassUnknown:      1,
	ClassRegistration: 1,
	ClassResolution:   1,
	ClassValidation:   2,
	ClassHelp:         1,
	ClassExecution:    1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	Command  string // space-separated command path, when known
	Argument string // external argument name, when relevant
	Err      error  // underlying cause, if any
	ExitCode int    // computed from Kind if zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Class returns the class of the error's kind.
func (e *Error) Class() Class {
	return classes[e.Kind]
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Class()]; ok {
		return code
	}
	return 1
}

// As extracts a *Error from err's chain.
func As(err error) (*Error, bool) {
	var ue *Error
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// KindOf returns the kind of err, or ErrUnknown when err is not a usage error.
func KindOf(err error) ErrorKind {
	if ue, ok := As(err); ok {
		return ue.Kind
	}
	return ErrUnknown
}

// ClassFor returns the class of err, or ClassUnknown when err is not a usage error.
func ClassFor(err error) Class {
	if ue, ok := As(err); ok {
		return ue.Class()
	}
	return ClassUnknown
}

// IsValidation reports whether err is a recoverable argument validation failure.
func IsValidation(err error) bool {
	return ClassFor(err) == ClassValidation
}

// IsRegistration reports whether err came from building the command registry.
func IsRegistration(err error) bool {
	return ClassFor(err) == ClassRegistration
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
