package widget

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// fuzzyMatch reports whether every character of input occurs in label in
// order, case-folded. A contiguous substring is the degenerate case of a
// subsequence, so "script" matches both "JavaScript" and "TypeScript".
// An empty input matches everything.
func fuzzyMatch(input, label string) bool {
	if input == "" {
		return true
	}
	in := strings.ToLower(input)
	lb := strings.ToLower(label)

	if strings.Contains(lb, in) {
		return true
	}

	i := 0
	target := []rune(in)
	for _, r := range lb {
		if i < len(target) && r == target[i] {
			i++
		}
	}
	return i == len(target)
}

// rankMatches orders matched option indexes for display: substring matches
// before pure subsequence matches, then by edit distance between input and
// label, then by original declaration order for stability.
func rankMatches[V comparable](input string, opts []Option[V], matched []int) []int {
	if input == "" {
		return matched
	}
	in := strings.ToLower(input)

	type scored struct {
		index     int
		substring bool
		distance  int
		order     int
	}
	ss := make([]scored, len(matched))
	for i, idx := range matched {
		lb := strings.ToLower(opts[idx].Label)
		ss[i] = scored{
			index:     idx,
			substring: strings.Contains(lb, in),
			distance:  levenshtein.ComputeDistance(in, lb),
			order:     i,
		}
	}
	sort.SliceStable(ss, func(a, b int) bool {
		if ss[a].substring != ss[b].substring {
			return ss[a].substring
		}
		if ss[a].distance != ss[b].distance {
			return ss[a].distance < ss[b].distance
		}
		return ss[a].order < ss[b].order
	})

	out := make([]int, len(ss))
	for i, s := range ss {
		out[i] = s.index
	}
	return out
}
