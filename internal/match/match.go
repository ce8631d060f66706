// Package match resolves user-supplied names against a candidate set,
// accepting unique prefixes and suggesting near misses for typos.
package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestions caps the did-you-mean list attached to a NotFoundError.
const maxSuggestions = 3

// NotFoundError reports a name that matched no candidate, with the nearest
// candidates by edit distance when any are close enough.
type NotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("no match for %q (did you mean %s?)", e.Name, strings.Join(e.Suggestions, ", "))
	}
	return fmt.Sprintf("no match for %q", e.Name)
}

// AmbiguousError reports a prefix that matched more than one candidate.
type AmbiguousError struct {
	Name    string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%q is ambiguous: matches %s", e.Name, strings.Join(e.Matches, ", "))
}

// Resolve matches name against candidates: an exact match wins outright,
// otherwise a prefix shared with exactly one candidate resolves to it.
// A prefix shared with several candidates is an *AmbiguousError; no match
// at all is a *NotFoundError carrying nearby suggestions.
func Resolve(name string, candidates []string) (string, error) {
	var matches []string
	for _, candidate := range candidates {
		if candidate == name {
			return candidate, nil
		}
		if strings.HasPrefix(candidate, name) {
			matches = append(matches, candidate)
		}
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{Name: name, Suggestions: Closest(name, candidates, maxSuggestions)}
	case 1:
		return matches[0], nil
	default:
		sort.Strings(matches)
		return "", &AmbiguousError{Name: name, Matches: matches}
	}
}

// Closest returns up to max candidates within an acceptable edit distance
// of name, nearest first, ties broken lexicographically.
func Closest(name string, candidates []string, max int) []string {
	type scored struct {
		name string
		dist int
	}

	var near []scored
	for _, candidate := range candidates {
		dist := levenshtein.ComputeDistance(name, candidate)
		if dist <= distanceLimit(len(candidate)) {
			near = append(near, scored{name: candidate, dist: dist})
		}
	}

	sort.Slice(near, func(i, j int) bool {
		if near[i].dist == near[j].dist {
			return near[i].name < near[j].name
		}
		return near[i].dist < near[j].dist
	})

	if len(near) > max {
		near = near[:max]
	}
	out := make([]string, len(near))
	for i, s := range near {
		out[i] = s.name
	}
	return out
}

// distanceLimit scales the tolerated edit distance with candidate length,
// so short names only match near-exact typos.
func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
