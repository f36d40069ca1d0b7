package completions

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/dispatch/internal/dispatchers"
)

// Shell names a shell a completion script can be generated for.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells.
var Shells = []Shell{ShellBash, ShellZsh, ShellFish}

// ParseShell accepts a shell name or a path to a shell binary such as /bin/zsh.
func ParseShell(s string) (Shell, error) {
	name := strings.ToLower(filepath.Base(strings.TrimSpace(s)))
	for _, sh := range Shells {
		if name == string(sh) {
			return sh, nil
		}
	}
	return "", fmt.Errorf("unsupported shell %q (use bash, zsh or fish)", s)
}

// DetectShell returns the shell named by $SHELL, or "" when it is unset or unsupported.
func DetectShell(getenv func(string) string) Shell {
	sh, err := ParseShell(getenv("SHELL"))
	if err != nil {
		return ""
	}
	return sh
}

// CommandInfo represents a command extracted from the registry
type CommandInfo struct {
	Path        []string // e.g. ["user", "create"]; empty for the top level
	Summary     string
	Subcommands []SubcommandInfo
	Flags       []FlagInfo
}

// SubcommandInfo is a child command offered after CommandInfo.Path.
type SubcommandInfo struct {
	Name    string
	Summary string
}

// FlagInfo represents a flag for a command
type FlagInfo struct {
	Name     string // with leading dashes
	Help     string
	HasValue bool
}

// Word returns the text a script completes for the flag. Flags that take a value end
// in "=" since values are always attached to their flag.
func (f FlagInfo) Word() string {
	if f.HasValue {
		return f.Name + "="
	}
	return f.Name
}

// Key returns the dotted path used by the generated scripts, "" for the top level.
func (c CommandInfo) Key() string {
	return strings.Join(c.Path, ".")
}

// ExtractCommands walks reg and returns the top level followed by every command in
// registration order.
func ExtractCommands(reg *dispatchers.Registry) []CommandInfo {
	top := CommandInfo{}
	for _, id := range reg.Roots() {
		cmd, _ := reg.Node(id)
		top.Subcommands = append(top.Subcommands, SubcommandInfo{Name: cmd.Name, Summary: cmd.Summary})
	}
	commands := []CommandInfo{top}

	reg.Walk(func(id dispatchers.NodeID, _ int) bool {
		cmd, _ := reg.Node(id)
		info := CommandInfo{
			Path:    cmd.Path,
			Summary: cmd.Summary,
		}
		for _, child := range reg.Children(id) {
			c, _ := reg.Node(child)
			info.Subcommands = append(info.Subcommands, SubcommandInfo{Name: c.Name, Summary: c.Summary})
		}
		for _, arg := range cmd.Args {
			info.Flags = append(info.Flags, FlagInfo{
				Name:     dispatchers.FlagName(arg.Name),
				Help:     arg.Help,
				HasValue: arg.Type != dispatchers.ValueBool,
			})
		}
		commands = append(commands, info)
		return true
	})
	return commands
}

// FindCommand finds a command by its path
func FindCommand(commands []CommandInfo, path []string) *CommandInfo {
	key := strings.Join(path, ".")
	for i := range commands {
		if commands[i].Key() == key {
			return &commands[i]
		}
	}
	return nil
}

func words(c CommandInfo) []string {
	var out []string
	for _, s := range c.Subcommands {
		out = append(out, s.Name)
	}
	for _, f := range c.Flags {
		out = append(out, f.Word())
	}
	return out
}

// funcName turns a binary name into a shell identifier.
func funcName(bin string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, bin)
}
