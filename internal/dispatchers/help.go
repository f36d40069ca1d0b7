package dispatchers

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/dispatch/internal/usage"
)

// NoArgumentHelp is shown for arguments declared without help text.
const NoArgumentHelp = "No help available for this argument"

// ComposeHelp renders the help block of a single command: the ancestor breadcrumb and
// name with the summary, then one tab-indented line per binding target listing every
// external name that writes it.
func (r *Registry) ComposeHelp(id NodeID) (string, error) {
	if !r.valid(id) {
		return "", usage.HelpComposition(fmt.Sprintf("command #%d", id), nil)
	}

	var out strings.Builder
	n := r.nodes[id]

	out.WriteString(strings.Join(r.Path(id), " "))
	if n.summary != "" {
		fmt.Fprintf(&out, "\t[%s]", n.summary)
	}
	out.WriteString("\n")

	for _, group := range groupByTarget(n.args) {
		out.WriteString("\t")
		out.WriteString(strings.Join(group.flags(), " "))

		help := group.help()
		if help == "" {
			help = NoArgumentHelp
		}
		fmt.Fprintf(&out, "\t[%s]\n", help)
	}

	return out.String(), nil
}

// ComposeTreeHelp renders id's help followed by every descendant, depth-first in
// registration order.
func (r *Registry) ComposeTreeHelp(id NodeID) (string, error) {
	if !r.valid(id) {
		return "", usage.HelpComposition(fmt.Sprintf("command #%d", id), nil)
	}

	var out strings.Builder
	var failed error
	r.walk(id, 0, func(cur NodeID, _ int) bool {
		block, err := r.ComposeHelp(cur)
		if err != nil {
			failed = err
			return false
		}
		out.WriteString(block)
		return true
	})
	if failed != nil {
		return "", failed
	}
	return out.String(), nil
}

// ComposeAllHelp renders the help of the whole tree.
func (r *Registry) ComposeAllHelp() (string, error) {
	var out strings.Builder
	for _, root := range r.roots {
		block, err := r.ComposeTreeHelp(root)
		if err != nil {
			return "", err
		}
		out.WriteString(block)
	}
	return out.String(), nil
}

// FlagName renders an external argument name the way help shows it.
func FlagName(name string) string {
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}

type targetGroup struct {
	target string
	specs  []ArgSpec
}

func (g targetGroup) flags() []string {
	out := make([]string, len(g.specs))
	for i, s := range g.specs {
		out[i] = FlagName(s.Name)
	}
	return out
}

func (g targetGroup) help() string {
	for _, s := range g.specs {
		if s.Help != "" {
			return s.Help
		}
	}
	return ""
}

func (g targetGroup) required() bool {
	for _, s := range g.specs {
		if s.Required {
			return true
		}
	}
	return false
}

// groupByTarget groups specs by binding target, ordered by first declaration.
func groupByTarget(specs []ArgSpec) []targetGroup {
	var groups []targetGroup
	index := make(map[string]int)

	for _, s := range specs {
		i, ok := index[s.Target]
		if !ok {
			i = len(groups)
			index[s.Target] = i
			groups = append(groups, targetGroup{target: s.Target})
		}
		groups[i].specs = append(groups[i].specs, s)
	}
	return groups
}
