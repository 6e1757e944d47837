package dispatchers

import (
	"sort"
	"strings"
)

const (
	defaultSuggestionsCount = 3
	maxSuggestionDistance   = 3
)

// levenshtein calculates the case-insensitive edit distance between two
// strings, counting runes.
func levenshtein(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

type suggestion struct {
	name     string
	distance int
}

// FindSimilarScopes returns up to maxResults child names of scope within a
// small edit distance of input, closest first.
func FindSimilarScopes(input string, scope *Scope, maxResults int) []string {
	if scope == nil || scope.Scopes == nil {
		return nil
	}

	var suggestions []suggestion
	for name := range scope.Scopes {
		dist := levenshtein(input, name)
		if dist <= maxSuggestionDistance && dist > 0 {
			suggestions = append(suggestions, suggestion{name: name, distance: dist})
		}
	}

	// Sort by distance, then alphabetically for stability
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}
