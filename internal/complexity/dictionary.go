package complexity

import (
	"sort"
	"strings"
)

// StripWords removes every occurrence of the given words from password and
// reports what is left alongside the number of occurrences removed.
//
// Longer words are stripped first so a short word never consumes characters a
// longer match needs ("cat" must not break up "category"); equal-length words
// match in lexicographic order so results are deterministic. Single-character
// words are ignored. Each matched word removes all of its non-overlapping
// occurrences, and matching continues against the already-reduced string.
//
// After all removals, runs of a repeated character collapse to one instance:
// "password111" is barely stronger than "password1" and should not look
// longer than it is.
//
// Both password and words are expected to be lower case already; the result
// is for length accounting only, never for use as the actual password.
func StripWords(password string, words []string) (string, int) {
	return stripSorted(password, sortForMatching(words))
}

// stripSorted is StripWords without the sort, for callers that already hold
// a length-sorted word list.
func stripSorted(password string, words []string) (string, int) {
	remaining := password
	matches := 0
	for _, word := range words {
		if len(word) <= 1 {
			continue
		}
		if n := strings.Count(remaining, word); n > 0 {
			remaining = strings.ReplaceAll(remaining, word, "")
			matches += n
		}
	}
	return collapseRuns(remaining), matches
}

// sortForMatching returns a copy of words ordered longest first, ties broken
// lexicographically.
func sortForMatching(words []string) []string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}

// collapseRuns reduces each run of a repeated character to a single instance.
func collapseRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prev := rune(-1)
	for _, r := range s {
		if r != prev {
			b.WriteRune(r)
			prev = r
		}
	}
	return b.String()
}
