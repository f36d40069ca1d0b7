package dispatchers

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	defaultSuggestionsCount = 3
	maxSuggestionDistance   = 3
)

type suggestion struct {
	name     string
	distance int
}

// Suggest returns up to max top-level command names that resemble input.
func (r *Registry) Suggest(input string, max int) []string {
	names := make([]string, len(r.roots))
	for i, id := range r.roots {
		names[i] = r.nodes[id].name
	}
	return FindSimilar(input, names, max)
}

// SuggestChild returns up to max subcommand names of parent that resemble input.
func (r *Registry) SuggestChild(parent NodeID, input string, max int) []string {
	if !r.valid(parent) {
		return nil
	}
	children := r.nodes[parent].children
	names := make([]string, len(children))
	for i, id := range children {
		names[i] = r.nodes[id].name
	}
	return FindSimilar(input, names, max)
}

// FindSimilar ranks candidates that either contain input as a fuzzy subsequence or sit
// within a small edit distance of it. Closest first, then alphabetically.
func FindSimilar(input string, candidates []string, max int) []string {
	if input == "" || len(candidates) == 0 || max <= 0 {
		return nil
	}

	best := make(map[string]int)
	for _, rank := range fuzzy.RankFindFold(input, candidates) {
		best[rank.Target] = rank.Distance
	}

	lowered := strings.ToLower(input)
	for _, name := range candidates {
		dist := fuzzy.LevenshteinDistance(lowered, strings.ToLower(name))
		if dist == 0 || dist > maxSuggestionDistance {
			continue
		}
		if prev, ok := best[name]; !ok || dist < prev {
			best[name] = dist
		}
	}

	suggestions := make([]suggestion, 0, len(best))
	for name, dist := range best {
		suggestions = append(suggestions, suggestion{name: name, distance: dist})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}
