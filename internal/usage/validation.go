package usage

import "fmt"

// UnknownArgument is returned when a token names no argument of the command.
func UnknownArgument(path, name, value string) *Error {
	return &Error{
		Kind:     ErrUnknownArgument,
		Message:  fmt.Sprintf("dsp: unknown argument '%s' for command '%s' with value '%s'", name, path, value),
		Command:  path,
		Argument: name,
	}
}

// MissingValue is returned when an argument that needs a value was given none.
func MissingValue(path, name string) *Error {
	return &Error{
		Kind:     ErrMissingValue,
		Message:  fmt.Sprintf("dsp: argument '%s' for command '%s' requires a value", name, path),
		Command:  path,
		Argument: name,
	}
}

// InvalidBooleanValue is returned when a bool argument's value is not a boolean literal.
func InvalidBooleanValue(path, name, value string) *Error {
	return &Error{
		Kind:     ErrInvalidBooleanValue,
		Message:  fmt.Sprintf("dsp: argument '%s' for command '%s' expects true or false, got '%s'", name, path, value),
		Command:  path,
		Argument: name,
	}
}

// InvalidIntegerValue is returned when an int argument's value is not a base-10 integer.
func InvalidIntegerValue(path, name, value string) *Error {
	return &Error{
		Kind:     ErrInvalidIntegerValue,
		Message:  fmt.Sprintf("dsp: argument '%s' for command '%s' expects an integer, got '%s'", name, path, value),
		Command:  path,
		Argument: name,
	}
}

// DuplicateArgumentBinding is returned when two tokens write the same binding target.
func DuplicateArgumentBinding(path, name string) *Error {
	return &Error{
		Kind:     ErrDuplicateArgumentBinding,
		Message:  fmt.Sprintf("dsp: argument '%s' duplicates another argument for command '%s'. Use only one of them", name, path),
		Command:  path,
		Argument: name,
	}
}

// MalformedInput is returned when a line cannot be split into tokens.
func MalformedInput(line, reason string) *Error {
	return &Error{
		Kind:    ErrMalformedInput,
		Message: fmt.Sprintf("dsp: cannot read [%s]: %s", line, reason),
	}
}
