package dispatchers

import "strings"

// NodeID addresses a command in a Registry's node table.
type NodeID int

// NoParent marks a root command.
const NoParent NodeID = -1

// CommandID is the stable dotted path of a command, e.g. "user.create".
// Handlers are bound to commands by CommandID.
type CommandID string

type node struct {
	name       string
	summary    string
	args       []ArgSpec
	parent     NodeID
	children   []NodeID
	childIndex map[string]NodeID
}

// Command is a read-only view of a registered command.
type Command struct {
	Node    NodeID
	ID      CommandID
	Name    string
	Path    []string
	Summary string
	Args    []ArgSpec
}

// PathString returns the space-separated command path, e.g. "user create".
func (c Command) PathString() string {
	return strings.Join(c.Path, " ")
}

func newCommandID(path []string) CommandID {
	return CommandID(strings.Join(path, "."))
}

// Segments splits a CommandID back into its path.
func (id CommandID) Segments() []string {
	if id == "" {
		return nil
	}
	return strings.Split(string(id), ".")
}
