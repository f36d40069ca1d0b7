package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when input does not name a registered command.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("dsp: '%s' is not a dsp command.", command)
	if len(suggestions) > 0 {
		msg += "\n\nDid you mean?\n\t" + strings.Join(suggestions, "\n\t")
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
		Command: command,
	}
}
