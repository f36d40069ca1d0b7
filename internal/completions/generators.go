package completions

import (
	"fmt"
	"strings"
)

// GenerateBash returns a bash completion script for bin.
func GenerateBash(bin string, commands []CommandInfo) string {
	fn := funcName(bin)
	var b strings.Builder

	fmt.Fprintf(&b, "# %s bash completion script\n", bin)
	fmt.Fprintf(&b, "_%s_completions() {\n", fn)
	b.WriteString("    local cur word path=\"\" i\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    for ((i=1; i<COMP_CWORD; i++)); do\n")
	b.WriteString("        word=\"${COMP_WORDS[i]}\"\n")
	b.WriteString("        [[ \"$word\" == -* ]] || path=\"${path:+$path.}$word\"\n")
	b.WriteString("    done\n")
	b.WriteString("    case \"$path\" in\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        %q) COMPREPLY=($(compgen -W %q -- \"$cur\")) ;;\n", c.Key(), strings.Join(words(c), " "))
	}
	b.WriteString("    esac\n")
	b.WriteString("    [[ ${#COMPREPLY[@]} -eq 1 && ${COMPREPLY[0]} == *= ]] && compopt -o nospace\n")
	b.WriteString("    return 0\n")
	b.WriteString("}\n")
	fmt.Fprintf(&b, "complete -F _%s_completions %s\n", fn, bin)
	return b.String()
}

// GenerateZsh returns a zsh completion script for bin.
func GenerateZsh(bin string, commands []CommandInfo) string {
	fn := funcName(bin)
	var b strings.Builder

	fmt.Fprintf(&b, "#compdef %s\n", bin)
	fmt.Fprintf(&b, "# %s zsh completion script\n\n", bin)

	fmt.Fprintf(&b, "_%s_commands() {\n", fn)
	b.WriteString("    local -a items\n")
	b.WriteString("    case \"$1\" in\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        %s)\n", zshPattern(c.Key()))
		b.WriteString("            items=(\n")
		for _, s := range c.Subcommands {
			fmt.Fprintf(&b, "                %s\n", zshQuote(s.Name+":"+s.Summary))
		}
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "                %s\n", zshQuote(strings.ReplaceAll(f.Word(), ":", `\:`)+":"+f.Help))
		}
		b.WriteString("            )\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("    (( ${#items} )) && _describe 'command' items\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "_%s() {\n", fn)
	b.WriteString("    local word path=\"\" i\n")
	b.WriteString("    for ((i=2; i<CURRENT; i++)); do\n")
	b.WriteString("        word=\"${words[i]}\"\n")
	b.WriteString("        [[ \"$word\" == -* ]] || path=\"${path:+$path.}$word\"\n")
	b.WriteString("    done\n")
	fmt.Fprintf(&b, "    _%s_commands \"$path\"\n", fn)
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "compdef _%s %s\n", fn, bin)
	return b.String()
}

// GenerateFish returns a fish completion script for bin.
func GenerateFish(bin string, commands []CommandInfo) string {
	fn := funcName(bin)
	var b strings.Builder

	fmt.Fprintf(&b, "# %s fish completion script\n", bin)
	fmt.Fprintf(&b, "complete -c %s -f\n\n", bin)

	fmt.Fprintf(&b, "function __%s_path\n", fn)
	b.WriteString("    set -l tokens (commandline -opc)\n")
	b.WriteString("    set -e tokens[1]\n")
	b.WriteString("    set -l path\n")
	b.WriteString("    for t in $tokens\n")
	b.WriteString("        string match -q -- '-*' $t; or set -a path $t\n")
	b.WriteString("    end\n")
	b.WriteString("    set -l joined (string join . $path)\n")
	b.WriteString("    echo \"/$joined\"\n")
	b.WriteString("end\n\n")

	fmt.Fprintf(&b, "function __%s_at\n", fn)
	fmt.Fprintf(&b, "    test (__%s_path) = $argv[1]\n", fn)
	b.WriteString("end\n\n")

	for _, c := range commands {
		cond := fmt.Sprintf("__%s_at /%s", fn, c.Key())
		if len(c.Path) == 0 {
			cond = "__fish_use_subcommand"
		}
		for _, s := range c.Subcommands {
			fmt.Fprintf(&b, "complete -c %s -n '%s' -a %s -d %s\n", bin, cond, s.Name, fishQuote(s.Summary))
		}
		for _, f := range c.Flags {
			opt := "-l " + strings.TrimPrefix(f.Name, "--")
			if !strings.HasPrefix(f.Name, "--") {
				opt = "-s " + strings.TrimPrefix(f.Name, "-")
			}
			if f.HasValue {
				opt += " -r"
			}
			fmt.Fprintf(&b, "complete -c %s -n '%s' %s -d %s\n", bin, cond, opt, fishQuote(f.Help))
		}
	}
	return b.String()
}

func zshPattern(key string) string {
	if key == "" {
		return "''"
	}
	return key
}

func zshQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func fishQuote(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s) + "'"
}
