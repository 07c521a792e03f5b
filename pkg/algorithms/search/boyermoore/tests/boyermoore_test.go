package boyermoore_test

import (
	"reflect"
	"testing"

	"github.com/fareltaza35/atscore/pkg/algorithms/search/boyermoore"
	"github.com/fareltaza35/atscore/pkg/algorithms/search/kmp"
)

func TestSearch(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		pattern string
		want    []int
	}{
		{"no match", "abcdef", "xyz", nil},
		{"single match", "hello world", "world", []int{6}},
		{"overlapping matches", "aaaa", "aa", []int{0, 1, 2}},
		{"repeated pattern", "ababab", "ab", []int{0, 2, 4}},
		{"whole text is pattern", "abc", "abc", []int{0}},
		{"empty pattern", "abc", "", nil},
		{"empty text", "", "abc", nil},
		{"pattern longer than text", "ab", "abc", nil},
		{"overlap with internal period", "abababa", "aba", []int{0, 2, 4}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := boyermoore.Search(c.text, c.pattern)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("Search(%q, %q) = %v, want %v", c.text, c.pattern, got, c.want)
			}
		})
	}
}

// TestAgreesWithKMP checks that Boyer-Moore reports exactly the same
// occurrence set as KMP, including overlaps, across a range of patterns
// with internal self-overlap (the case the post-match period advance
// exists to handle).
func TestAgreesWithKMP(t *testing.T) {
	texts := []string{"aaaaaaaa", "abababab", "mississippi", "aba ababa abababa"}
	patterns := []string{"aa", "ab", "issi", "aba", "abababa"}

	for _, text := range texts {
		for _, pattern := range patterns {
			want := kmp.Search(text, pattern)
			got := boyermoore.Search(text, pattern)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("boyermoore.Search(%q, %q) = %v, want %v (from kmp)", text, pattern, got, want)
			}
		}
	}
}
