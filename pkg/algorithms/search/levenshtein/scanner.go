// Package levenshtein implements a fixed-window fuzzy string scanner: it
// slides a window the length of the pattern across the text and reports
// every window whose edit distance to the pattern is within a threshold.
package levenshtein

import "github.com/agnivade/levenshtein"

// Match is one accepting window.
type Match struct {
	Index    int
	Distance int
}

// Search returns every window of len(pattern) in text whose Levenshtein
// distance to pattern is at most maxDistance, in left-to-right order.
// Overlapping accepting windows are not deduplicated or merged: a pattern
// that fuzzy-matches three consecutive windows is reported three times.
// An empty pattern, empty text, or a pattern longer than text yields no
// matches.
func Search(text, pattern string, maxDistance int) []Match {
	var matches []Match

	n, m := len(text), len(pattern)
	if m == 0 || n == 0 || m > n {
		return matches
	}

	for i := 0; i <= n-m; i++ {
		window := text[i : i+m]
		if d := levenshtein.ComputeDistance(window, pattern); d <= maxDistance {
			matches = append(matches, Match{Index: i, Distance: d})
		}
	}
	return matches
}
