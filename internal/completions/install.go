package completions

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/footprint-tools/dispatch/internal/dispatchers"
)

const defaultBinary = "dsp"

// PrintCompletions writes the completion script for shell to w.
func PrintCompletions(w io.Writer, shell Shell, bin string, reg *dispatchers.Registry) error {
	commands := ExtractCommands(reg)

	var script string
	switch shell {
	case ShellBash:
		script = GenerateBash(bin, commands)
	case ShellZsh:
		script = GenerateZsh(bin, commands)
	case ShellFish:
		script = GenerateFish(bin, commands)
	default:
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	_, err := fmt.Fprint(w, script)
	return err
}

// SourceInstructions returns the line that loads completions for binPath into shell.
func SourceInstructions(shell Shell, binPath string) string {
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completion --shell=%s --script)"`, binPath, shell)
	case ShellFish:
		return fmt.Sprintf(`%s completion --shell=fish --script | source`, binPath)
	default:
		return ""
	}
}

// RcFile returns the rc file path for the given shell
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

// AutoInstallPath returns where shell auto-loads completions for bin from, or "" when
// the shell has no such directory.
func AutoInstallPath(shell Shell, bin string) string {
	if shell != ShellFish {
		return ""
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "fish", "completions", bin+".fish")
}

// Binary returns the running executable's resolved path and base name.
func Binary() (path, name string) {
	exe, err := os.Executable()
	if err != nil {
		return defaultBinary, defaultBinary
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, filepath.Base(exe)
}
