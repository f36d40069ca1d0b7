package dispatchers

import (
	"sort"
	"strings"
)

// Complete returns whole-line completions for an interactive prompt: command names
// while the line is still naming a command, then the resolved command's flags. Flags
// that take a value complete with their "=".
func (r *Registry) Complete(line string) []string {
	fields := strings.Fields(line)
	// A line of only whitespace, whatever kind, completes like the empty line.
	trailingSpace := len(fields) == 0 || strings.HasSuffix(line, " ")

	var done []string
	partial := ""
	if trailingSpace {
		done = fields
	} else {
		done = fields[:len(fields)-1]
		partial = fields[len(fields)-1]
	}

	var candidates []string
	if len(done) == 0 {
		for _, id := range r.roots {
			candidates = append(candidates, r.nodes[id].name)
		}
	} else {
		res, ok := r.Resolve(done)
		if !ok {
			return nil
		}
		if len(res.Remaining) == 0 {
			for _, id := range r.nodes[res.Node].children {
				candidates = append(candidates, r.nodes[id].name)
			}
		}
		for _, spec := range r.nodes[res.Node].args {
			flag := FlagName(spec.Name)
			if spec.Type != ValueBool {
				flag += "="
			}
			candidates = append(candidates, flag)
		}
	}

	prefix := strings.Join(done, " ")
	if prefix != "" {
		prefix += " "
	}

	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, partial) {
			out = append(out, prefix+c)
		}
	}
	sort.Strings(out)
	return out
}
