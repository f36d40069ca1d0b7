package dispatchers

import (
	"strings"

	"github.com/footprint-tools/dispatch/internal/usage"
)

// Builder collects command descriptors at startup and produces an immutable Registry.
type Builder struct {
	nodes     []node
	roots     []NodeID
	rootIndex map[string]NodeID
	err       error
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{rootIndex: make(map[string]NodeID)}
}

// Add registers spec and its nested commands as a new root.
// A rejected spec leaves the builder unchanged; the first error is also kept for Build.
func (b *Builder) Add(spec CommandSpec) error {
	if err := validateSpec(spec, nil); err != nil {
		return b.fail(err)
	}
	if _, exists := b.rootIndex[spec.Name]; exists {
		return b.fail(usage.DuplicateCommandName(spec.Name))
	}

	id := b.insert(spec, NoParent)
	b.roots = append(b.roots, id)
	b.rootIndex[spec.Name] = id
	return nil
}

// Build returns the registry, or the first error recorded by Add.
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}

	reg := &Registry{
		nodes:     make([]node, len(b.nodes)),
		roots:     append([]NodeID(nil), b.roots...),
		rootIndex: make(map[string]NodeID, len(b.rootIndex)),
	}
	copy(reg.nodes, b.nodes)
	for name, id := range b.rootIndex {
		reg.rootIndex[name] = id
	}
	return reg, nil
}

func (b *Builder) fail(err error) error {
	if b.err == nil {
		b.err = err
	}
	return err
}

func (b *Builder) insert(spec CommandSpec, parent NodeID) NodeID {
	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, node{
		name:       spec.Name,
		summary:    spec.Summary,
		args:       append([]ArgSpec(nil), spec.Args...),
		parent:     parent,
		childIndex: make(map[string]NodeID, len(spec.Commands)),
	})

	for _, sub := range spec.Commands {
		childID := b.insert(sub, id)
		b.nodes[id].children = append(b.nodes[id].children, childID)
		b.nodes[id].childIndex[sub.Name] = childID
	}
	return id
}

// validateSpec checks a descriptor subtree before anything is inserted.
func validateSpec(spec CommandSpec, parentPath []string) error {
	parent := strings.Join(parentPath, " ")
	if strings.TrimSpace(spec.Name) == "" {
		return usage.MissingCommandMetadata(parent, "a name")
	}
	if strings.ContainsAny(spec.Name, ". \t") {
		return usage.MissingCommandMetadata(parent, "a usable name (got '"+spec.Name+"')")
	}

	path := append(append([]string(nil), parentPath...), spec.Name)
	display := strings.Join(path, " ")

	if err := validateArgs(display, spec.Args); err != nil {
		return err
	}

	seen := make(map[string]bool, len(spec.Commands))
	for _, sub := range spec.Commands {
		if seen[sub.Name] {
			return usage.DuplicateCommandName(display + " " + sub.Name)
		}
		seen[sub.Name] = true

		if err := validateSpec(sub, path); err != nil {
			return err
		}
	}
	return nil
}

func validateArgs(path string, args []ArgSpec) error {
	names := make(map[string]bool, len(args))
	types := make(map[string]ValueType, len(args))

	for _, a := range args {
		if a.Name == "" {
			return usage.MissingCommandMetadata(path, "an argument name")
		}
		if a.Target == "" {
			return usage.MissingCommandMetadata(path, "a binding target for argument '"+a.Name+"'")
		}
		if names[a.Name] {
			return usage.DuplicateArgumentName(path, a.Name)
		}
		names[a.Name] = true

		if t, ok := types[a.Target]; ok && t != a.Type {
			return usage.ConflictingArgumentType(path, a.Target)
		}
		types[a.Target] = a.Type
	}
	return nil
}
