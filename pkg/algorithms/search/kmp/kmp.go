// Package kmp implements the Knuth-Morris-Pratt exact string matching
// algorithm.
package kmp

// LPS computes the longest-proper-prefix-which-is-also-suffix array for
// pattern: lps[i] is the length of the longest proper prefix of
// pattern[0:i+1] that is also a suffix of pattern[0:i+1]. Exported so other
// matchers (Boyer-Moore's post-match shift) can derive a pattern's period
// without duplicating the computation.
func LPS(pattern string) []int {
	m := len(pattern)
	lps := make([]int, m)

	length := 0
	i := 1
	for i < m {
		if pattern[i] == pattern[length] {
			length++
			lps[i] = length
			i++
			continue
		}
		if length != 0 {
			length = lps[length-1]
			continue
		}
		lps[i] = 0
		i++
	}
	return lps
}

// Search returns every start index at which pattern occurs in text,
// including overlapping occurrences. An empty pattern or empty text yields
// no occurrences.
func Search(text, pattern string) []int {
	var found []int
	if len(pattern) == 0 || len(text) == 0 {
		return found
	}

	lps := LPS(pattern)
	n, m := len(text), len(pattern)

	i, j := 0, 0
	for i < n {
		if pattern[j] == text[i] {
			i++
			j++
		}

		if j == m {
			found = append(found, i-j)
			j = lps[j-1]
			continue
		}

		if i < n && pattern[j] != text[i] {
			if j != 0 {
				j = lps[j-1]
			} else {
				i++
			}
		}
	}
	return found
}
