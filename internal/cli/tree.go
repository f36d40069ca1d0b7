package cli

import "github.com/footprint-tools/dispatch/internal/dispatchers"

// Commands returns the descriptor table of every dsp command.
func Commands() []dispatchers.CommandSpec {
	return []dispatchers.CommandSpec{
		{
			Name:    "user",
			Summary: "Manage users",
			Commands: []dispatchers.CommandSpec{
				{
					Name:    "create",
					Summary: "Create a user",
					Args:    CreateArgs,
				},
				{
					Name:    "remove",
					Summary: "Remove a user",
					Args:    NameArgs,
				},
				{
					Name:    "rename",
					Summary: "Rename a user",
					Args:    RenameArgs,
				},
			},
		},
		{
			Name:    "list",
			Summary: "List users",
			Args:    ListArgs,
		},
		{
			Name:    "help",
			Summary: "Show help for all commands",
			Args:    HelpArgs,
		},
		{
			Name:    "completion",
			Summary: "Generate shell completions",
			Args:    CompletionArgs,
		},
		{
			Name:    "version",
			Summary: "Show dsp version",
		},
	}
}

// BuildRegistry registers Commands into a fresh registry.
func BuildRegistry() (*dispatchers.Registry, error) {
	b := dispatchers.NewBuilder()
	for _, spec := range Commands() {
		if err := b.Add(spec); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
