package dispatchers

// Registry is the immutable command tree produced by Builder.Build.
// It is safe for concurrent reads.
type Registry struct {
	nodes     []node
	roots     []NodeID
	rootIndex map[string]NodeID
}

// Resolution is the result of matching leading tokens to a command path.
type Resolution struct {
	Node      NodeID
	Remaining []string
}

// Resolve matches tokens greedily against the tree: the first token must name a root,
// then each following token that names a child of the current node descends into it.
// The remaining tokens belong to the deepest matched command as arguments.
func (r *Registry) Resolve(tokens []string) (Resolution, bool) {
	if len(tokens) == 0 {
		return Resolution{}, false
	}

	current, ok := r.rootIndex[tokens[0]]
	if !ok {
		return Resolution{}, false
	}

	consumed := 1
	for _, tok := range tokens[1:] {
		child, ok := r.nodes[current].childIndex[tok]
		if !ok {
			break
		}
		current = child
		consumed++
	}

	return Resolution{
		Node:      current,
		Remaining: tokens[consumed:],
	}, true
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.nodes)
}

func (r *Registry) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(r.nodes)
}

// Node returns a read-only view of the command with the given id.
func (r *Registry) Node(id NodeID) (Command, bool) {
	if !r.valid(id) {
		return Command{}, false
	}
	n := r.nodes[id]
	path := r.Path(id)
	return Command{
		Node:    id,
		ID:      newCommandID(path),
		Name:    n.name,
		Path:    path,
		Summary: n.summary,
		Args:    append([]ArgSpec(nil), n.args...),
	}, true
}

// Path returns the names from the root down to id, following parent links.
func (r *Registry) Path(id NodeID) []string {
	if !r.valid(id) {
		return nil
	}
	var reversed []string
	for cur := id; cur != NoParent; cur = r.nodes[cur].parent {
		reversed = append(reversed, r.nodes[cur].name)
	}
	path := make([]string, len(reversed))
	for i, name := range reversed {
		path[len(reversed)-1-i] = name
	}
	return path
}

// ID returns the CommandID for a node.
func (r *Registry) ID(id NodeID) CommandID {
	return newCommandID(r.Path(id))
}

// Parent returns the parent of id, or NoParent for roots and unknown ids.
func (r *Registry) Parent(id NodeID) NodeID {
	if !r.valid(id) {
		return NoParent
	}
	return r.nodes[id].parent
}

// Roots returns top-level commands in registration order.
func (r *Registry) Roots() []NodeID {
	return append([]NodeID(nil), r.roots...)
}

// Children returns the subcommands of id in registration order.
func (r *Registry) Children(id NodeID) []NodeID {
	if !r.valid(id) {
		return nil
	}
	return append([]NodeID(nil), r.nodes[id].children...)
}

// Lookup finds a command by its CommandID.
func (r *Registry) Lookup(cid CommandID) (NodeID, bool) {
	segments := cid.Segments()
	if len(segments) == 0 {
		return NoParent, false
	}
	res, ok := r.Resolve(segments)
	if !ok || len(res.Remaining) > 0 {
		return NoParent, false
	}
	return res.Node, true
}

// Walk visits every command depth-first in registration order.
// Returning false from fn skips that command's subtree.
func (r *Registry) Walk(fn func(id NodeID, depth int) bool) {
	for _, root := range r.roots {
		r.walk(root, 0, fn)
	}
}

func (r *Registry) walk(id NodeID, depth int, fn func(NodeID, int) bool) {
	if !fn(id, depth) {
		return
	}
	for _, child := range r.nodes[id].children {
		r.walk(child, depth+1, fn)
	}
}

// Leaves returns the CommandIDs of every command without subcommands.
func (r *Registry) Leaves() []CommandID {
	var out []CommandID
	r.Walk(func(id NodeID, _ int) bool {
		if len(r.nodes[id].children) == 0 {
			out = append(out, r.ID(id))
		}
		return true
	})
	return out
}
