package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/dispatch/internal/usage"
)

func userSpec() CommandSpec {
	return CommandSpec{
		Name:    "user",
		Summary: "Manage users",
		Commands: []CommandSpec{
			{
				Name:    "create",
				Summary: "Create a user",
				Args: []ArgSpec{
					{Name: "name", Target: "name", Type: ValueString, Help: "User name", Required: true},
					{Name: "n", Target: "name", Type: ValueString},
					{Name: "admin", Target: "admin", Type: ValueBool, Help: "Grant admin rights"},
					{Name: "age", Target: "age", Type: ValueInt},
				},
			},
			{
				Name:    "remove",
				Summary: "Remove a user",
				Args: []ArgSpec{
					{Name: "name", Target: "name", Type: ValueString, Help: "User name", Required: true},
				},
			},
		},
	}
}

func listSpec() CommandSpec {
	return CommandSpec{
		Name:    "list",
		Summary: "List users",
		Args: []ArgSpec{
			{Name: "admin", Target: "admin", Type: ValueBool, Help: "Only admins"},
		},
	}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	b := NewBuilder()
	require.NoError(t, b.Add(userSpec()))
	require.NoError(t, b.Add(listSpec()))

	reg, err := b.Build()
	require.NoError(t, err)
	return reg
}

func mustLookup(t *testing.T, reg *Registry, id CommandID) NodeID {
	t.Helper()
	node, ok := reg.Lookup(id)
	require.True(t, ok, "command %s not registered", id)
	return node
}

func TestBuilder_Build(t *testing.T) {
	reg := newTestRegistry(t)

	require.Equal(t, 4, reg.Len())
	require.Len(t, reg.Roots(), 2)

	user := mustLookup(t, reg, "user")
	require.Equal(t, NoParent, reg.Parent(user))

	children := reg.Children(user)
	require.Len(t, children, 2)

	create, ok := reg.Node(children[0])
	require.True(t, ok)
	require.Equal(t, "create", create.Name)
	require.Equal(t, []string{"user", "create"}, create.Path)
	require.Equal(t, CommandID("user.create"), create.ID)
	require.Equal(t, "user create", create.PathString())
	require.Equal(t, user, reg.Parent(create.Node))
}

func TestBuilder_DuplicateRoot(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add(listSpec()))

	err := b.Add(listSpec())
	require.Error(t, err)
	require.Equal(t, usage.ErrDuplicateCommandName, usage.KindOf(err))

	_, err = b.Build()
	require.Error(t, err)
	require.True(t, usage.IsRegistration(err))
}

func TestBuilder_DuplicateSibling(t *testing.T) {
	spec := userSpec()
	spec.Commands = append(spec.Commands, CommandSpec{Name: "create"})

	err := NewBuilder().Add(spec)
	require.Equal(t, usage.ErrDuplicateCommandName, usage.KindOf(err))
	require.Contains(t, err.Error(), "user create")
}

func TestBuilder_SameNameUnderDifferentParents(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add(CommandSpec{Name: "a", Commands: []CommandSpec{{Name: "x"}}}))
	require.NoError(t, b.Add(CommandSpec{Name: "b", Commands: []CommandSpec{{Name: "x"}}}))

	reg, err := b.Build()
	require.NoError(t, err)
	mustLookup(t, reg, "a.x")
	mustLookup(t, reg, "b.x")
}

func TestBuilder_RejectsBadMetadata(t *testing.T) {
	tests := []struct {
		name string
		spec CommandSpec
		kind usage.ErrorKind
	}{
		{"empty name", CommandSpec{}, usage.ErrMissingCommandMetadata},
		{"name with space", CommandSpec{Name: "a b"}, usage.ErrMissingCommandMetadata},
		{"name with dot", CommandSpec{Name: "a.b"}, usage.ErrMissingCommandMetadata},
		{"nested empty name", CommandSpec{Name: "a", Commands: []CommandSpec{{}}}, usage.ErrMissingCommandMetadata},
		{"arg without target", CommandSpec{Name: "a", Args: []ArgSpec{{Name: "x"}}}, usage.ErrMissingCommandMetadata},
		{"arg without name", CommandSpec{Name: "a", Args: []ArgSpec{{Target: "x"}}}, usage.ErrMissingCommandMetadata},
		{
			"duplicate arg name",
			CommandSpec{Name: "a", Args: []ArgSpec{{Name: "x", Target: "x"}, {Name: "x", Target: "y"}}},
			usage.ErrDuplicateArgumentName,
		},
		{
			"conflicting alias types",
			CommandSpec{Name: "a", Args: []ArgSpec{
				{Name: "x", Target: "x", Type: ValueString},
				{Name: "y", Target: "x", Type: ValueBool},
			}},
			usage.ErrConflictingArgumentType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			err := b.Add(tt.spec)
			require.Error(t, err)
			require.Equal(t, tt.kind, usage.KindOf(err))

			ue, ok := usage.As(err)
			require.True(t, ok)
			require.Equal(t, 1, ue.GetExitCode())
		})
	}
}

func TestBuilder_RejectedSpecLeavesNoNodes(t *testing.T) {
	b := NewBuilder()
	spec := userSpec()
	spec.Commands = append(spec.Commands, CommandSpec{Name: "remove"})
	require.Error(t, b.Add(spec))
	require.Empty(t, b.nodes)
	require.Empty(t, b.roots)
}

func TestRegistry_Resolve(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		name      string
		tokens    []string
		want      CommandID
		remaining []string
		ok        bool
	}{
		{"root only", []string{"list"}, "list", []string{}, true},
		{"nested", []string{"user", "create", "--name=Ada"}, "user.create", []string{"--name=Ada"}, true},
		{"namespace", []string{"user"}, "user", []string{}, true},
		{"stops at first non-child", []string{"user", "--name=Ada", "create"}, "user", []string{"--name=Ada", "create"}, true},
		{"unknown root", []string{"delete"}, "", nil, false},
		{"nested name is not a root", []string{"create"}, "", nil, false},
		{"empty input", nil, "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := reg.Resolve(tt.tokens)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			require.Equal(t, tt.want, reg.ID(res.Node))
			require.Equal(t, tt.remaining, res.Remaining)
		})
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg := newTestRegistry(t)

	_, ok := reg.Lookup("user.create")
	require.True(t, ok)

	_, ok = reg.Lookup("user.create.extra")
	require.False(t, ok)

	_, ok = reg.Lookup("")
	require.False(t, ok)
}

func TestRegistry_WalkAndLeaves(t *testing.T) {
	reg := newTestRegistry(t)

	var visited []string
	reg.Walk(func(id NodeID, depth int) bool {
		cmd, _ := reg.Node(id)
		visited = append(visited, cmd.PathString())
		return true
	})
	require.Equal(t, []string{"user", "user create", "user remove", "list"}, visited)

	require.Equal(t, []CommandID{"user.create", "user.remove", "list"}, reg.Leaves())
}

func TestRegistry_InvalidNode(t *testing.T) {
	reg := newTestRegistry(t)

	_, ok := reg.Node(NodeID(99))
	require.False(t, ok)
	require.Nil(t, reg.Path(NodeID(-5)))
	require.Nil(t, reg.Children(NodeID(99)))
	require.Equal(t, NoParent, reg.Parent(NodeID(99)))
}
