package cli

import "github.com/footprint-tools/dispatch/internal/dispatchers"

var (
	// NameArgs identifies one user by name; -n is the short alias.
	NameArgs = []dispatchers.ArgSpec{
		{
			Name:     "name",
			Target:   "name",
			Type:     dispatchers.ValueString,
			Help:     "User name",
			Required: true,
		},
		{
			Name:   "n",
			Target: "name",
			Type:   dispatchers.ValueString,
		},
	}

	CreateArgs = append(append([]dispatchers.ArgSpec(nil), NameArgs...),
		dispatchers.ArgSpec{
			Name:   "admin",
			Target: "admin",
			Type:   dispatchers.ValueBool,
			Help:   "Grant administrator rights",
		},
		dispatchers.ArgSpec{
			Name:   "age",
			Target: "age",
			Type:   dispatchers.ValueInt,
			Help:   "Age in years",
		},
	)

	RenameArgs = []dispatchers.ArgSpec{
		{
			Name:     "from",
			Target:   "from",
			Type:     dispatchers.ValueString,
			Help:     "Current user name",
			Required: true,
		},
		{
			Name:     "to",
			Target:   "to",
			Type:     dispatchers.ValueString,
			Help:     "New user name",
			Required: true,
		},
	}

	ListArgs = []dispatchers.ArgSpec{
		{
			Name:   "admin",
			Target: "admin",
			Type:   dispatchers.ValueBool,
			Help:   "Only list administrators",
		},
		{
			Name:   "limit",
			Target: "limit",
			Type:   dispatchers.ValueInt,
			Help:   "Maximum number of users to list",
		},
	}

	HelpArgs = []dispatchers.ArgSpec{
		{
			Name:   "interactive",
			Target: "interactive",
			Type:   dispatchers.ValueBool,
			Help:   "Browse help in a full-screen viewer",
		},
		{
			Name:   "i",
			Target: "interactive",
			Type:   dispatchers.ValueBool,
		},
		{
			Name:   "command",
			Target: "command",
			Type:   dispatchers.ValueString,
			Help:   "Show help for one command, e.g. --command=\"user create\"",
		},
	}

	CompletionArgs = []dispatchers.ArgSpec{
		{
			Name:   "shell",
			Target: "shell",
			Type:   dispatchers.ValueString,
			Help:   "Target shell: bash, zsh or fish (default: $SHELL)",
		},
		{
			Name:   "script",
			Target: "script",
			Type:   dispatchers.ValueBool,
			Help:   "Print the completion script instead of install instructions",
		},
	}
)
