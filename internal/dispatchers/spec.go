package dispatchers

// ValueType is the closed set of argument value types the binder can coerce.
type ValueType int

const (
	ValueString ValueType = iota
	ValueBool
	ValueInt
)

func (t ValueType) String() string {
	switch t {
	case ValueString:
		return "string"
	case ValueBool:
		return "bool"
	case ValueInt:
		return "int"
	default:
		return "unknown"
	}
}

// ArgSpec declares one external argument name and the binding target it writes.
// Several ArgSpecs may share a Target to act as aliases.
type ArgSpec struct {
	Name     string // external name without leading dashes
	Target   string // binding target on the command's Arguments
	Type     ValueType
	Help     string
	Required bool
}

// CommandSpec is the declarative descriptor a command is registered from.
type CommandSpec struct {
	Name     string
	Summary  string
	Args     []ArgSpec
	Commands []CommandSpec
}
