package usage

import "fmt"

// DuplicateCommandName is returned when a sibling with the same name is already registered.
func DuplicateCommandName(path string) *Error {
	return &Error{
		Kind:    ErrDuplicateCommandName,
		Message: fmt.Sprintf("dsp: duplicate command name '%s'", path),
		Command: path,
	}
}

// MissingCommandMetadata is returned when a descriptor lacks its name, or one of its
// arguments lacks a name or binding target.
func MissingCommandMetadata(path, what string) *Error {
	where := "top-level command"
	if path != "" {
		where = fmt.Sprintf("command '%s'", path)
	}
	return &Error{
		Kind:    ErrMissingCommandMetadata,
		Message: fmt.Sprintf("dsp: %s is missing %s", where, what),
		Command: path,
	}
}

// DuplicateArgumentName is returned when one command declares the same external name twice.
func DuplicateArgumentName(path, name string) *Error {
	return &Error{
		Kind:     ErrDuplicateArgumentName,
		Message:  fmt.Sprintf("dsp: command '%s' declares argument '%s' more than once", path, name),
		Command:  path,
		Argument: name,
	}
}

// ConflictingArgumentType is returned when aliases of one binding target disagree on type.
func ConflictingArgumentType(path, target string) *Error {
	return &Error{
		Kind:     ErrConflictingArgumentType,
		Message:  fmt.Sprintf("dsp: command '%s' binds '%s' with conflicting value types", path, target),
		Command:  path,
		Argument: target,
	}
}
