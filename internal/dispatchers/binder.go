package dispatchers

import (
	"strconv"
	"strings"

	"github.com/footprint-tools/dispatch/internal/usage"
)

// ParsedToken is one `key[=value]` argument token with its dashes removed.
type ParsedToken struct {
	Name     string
	Value    string
	HasValue bool
}

// ParseArgumentToken applies the grammar `("-" | "--") key ["=" value]`.
// One or two leading dashes are equivalent. A value wrapped in one matching pair of
// double or single quotes loses that pair.
func ParseArgumentToken(token string) ParsedToken {
	key, value, hasValue := strings.Cut(token, "=")

	if strings.HasPrefix(key, "--") {
		key = key[2:]
	} else if strings.HasPrefix(key, "-") {
		key = key[1:]
	}

	return ParsedToken{
		Name:     key,
		Value:    unquote(value),
		HasValue: hasValue,
	}
}

func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if (first == '"' || first == '\'') && first == last {
		return value[1 : len(value)-1]
	}
	return value
}

type boundValue struct {
	typ   ValueType
	str   string
	flag  bool
	num   int
	isSet bool
}

// Arguments is the typed argument record of one invocation. Every binding target the
// command declares starts at its type's zero value.
type Arguments struct {
	command CommandID
	values  map[string]*boundValue
}

// NewArguments creates the default record for a command's schema.
func NewArguments(cmd Command) *Arguments {
	args := &Arguments{
		command: cmd.ID,
		values:  make(map[string]*boundValue, len(cmd.Args)),
	}
	for _, spec := range cmd.Args {
		if _, ok := args.values[spec.Target]; !ok {
			args.values[spec.Target] = &boundValue{typ: spec.Type}
		}
	}
	return args
}

// Command returns the command the record was bound for.
func (a *Arguments) Command() CommandID {
	return a.command
}

// String returns a string target, or "" when unset or not a string target.
func (a *Arguments) String(target string) string {
	if v, ok := a.values[target]; ok && v.typ == ValueString {
		return v.str
	}
	return ""
}

// Bool returns a bool target, or false when unset or not a bool target.
func (a *Arguments) Bool(target string) bool {
	if v, ok := a.values[target]; ok && v.typ == ValueBool {
		return v.flag
	}
	return false
}

// Int returns an int target, or 0 when unset or not an int target.
func (a *Arguments) Int(target string) int {
	if v, ok := a.values[target]; ok && v.typ == ValueInt {
		return v.num
	}
	return 0
}

// Has reports whether the target was supplied on the command line.
func (a *Arguments) Has(target string) bool {
	v, ok := a.values[target]
	return ok && v.isSet
}

// Bind parses the argument tokens of a resolved command into a fresh Arguments record.
func Bind(cmd Command, tokens []string) (*Arguments, error) {
	schema := make(map[string]ArgSpec, len(cmd.Args))
	for _, spec := range cmd.Args {
		schema[spec.Name] = spec
	}

	path := cmd.PathString()
	args := NewArguments(cmd)

	for _, tok := range tokens {
		parsed := ParseArgumentToken(tok)

		spec, ok := schema[parsed.Name]
		if !ok {
			return nil, usage.UnknownArgument(path, parsed.Name, parsed.Value)
		}

		slot := args.values[spec.Target]
		if err := coerce(path, spec, parsed, slot); err != nil {
			return nil, err
		}

		if slot.isSet {
			return nil, usage.DuplicateArgumentBinding(path, parsed.Name)
		}
		slot.isSet = true
	}

	for _, group := range groupByTarget(cmd.Args) {
		if group.required() && !args.values[group.target].isSet {
			return nil, usage.MissingValue(path, group.specs[0].Name)
		}
	}

	return args, nil
}

// coerce converts the token's value into slot according to the argument's declared type.
func coerce(path string, spec ArgSpec, tok ParsedToken, slot *boundValue) error {
	switch spec.Type {
	case ValueString:
		if tok.Value == "" {
			return usage.MissingValue(path, tok.Name)
		}
		slot.str = tok.Value

	case ValueBool:
		switch {
		case tok.Value == "" || strings.EqualFold(tok.Value, "true"):
			slot.flag = true
		case strings.EqualFold(tok.Value, "false"):
			slot.flag = false
		default:
			return usage.InvalidBooleanValue(path, tok.Name, tok.Value)
		}

	case ValueInt:
		if tok.Value == "" {
			return usage.MissingValue(path, tok.Name)
		}
		n, err := strconv.Atoi(tok.Value)
		if err != nil {
			return usage.InvalidIntegerValue(path, tok.Name, tok.Value)
		}
		slot.num = n
	}
	return nil
}
