// Package boyermoore implements the bad-character variant of the
// Boyer-Moore exact string matching algorithm (no good-suffix rule).
package boyermoore

import "github.com/fareltaza35/atscore/pkg/algorithms/search/kmp"

// badCharacterTable maps each byte in pattern to its rightmost index.
func badCharacterTable(pattern string) map[byte]int {
	table := make(map[byte]int, len(pattern))
	for i := 0; i < len(pattern); i++ {
		table[pattern[i]] = i
	}
	return table
}

// matchPeriod returns the shift to apply after a full match so that
// self-overlapping occurrences are not skipped. It is the pattern's
// smallest period (m - lps[m-1]), which degrades to m for patterns with
// no self-overlap — the same non-overlapping advance the unmodified
// source uses — and to a smaller shift otherwise, so the exact phase
// reports every occurrence KMP and Aho-Corasick report.
func matchPeriod(pattern string) int {
	m := len(pattern)
	lps := kmp.LPS(pattern)
	return m - lps[m-1]
}

// Search returns every start index at which pattern occurs in text. An
// empty pattern, empty text, or a pattern longer than text yields no
// occurrences.
func Search(text, pattern string) []int {
	var found []int

	n, m := len(text), len(pattern)
	if m == 0 || n == 0 || m > n {
		return found
	}

	badChar := badCharacterTable(pattern)
	period := matchPeriod(pattern)

	i := 0
	for i <= n-m {
		j := m - 1
		for j >= 0 && pattern[j] == text[i+j] {
			j--
		}

		if j < 0 {
			found = append(found, i)
			i += period
			continue
		}

		mismatch := text[i+j]
		shift := j + 1
		if last, ok := badChar[mismatch]; ok {
			if s := j - last; s > 1 {
				shift = s
			} else {
				shift = 1
			}
		}
		i += shift
	}
	return found
}
