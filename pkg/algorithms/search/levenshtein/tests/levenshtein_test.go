package levenshtein_test

import (
	"reflect"
	"testing"

	"github.com/fareltaza35/atscore/pkg/algorithms/search/kmp"
	"github.com/fareltaza35/atscore/pkg/algorithms/search/levenshtein"
)

func TestSearch(t *testing.T) {
	cases := []struct {
		name        string
		text        string
		pattern     string
		maxDistance int
		want        []levenshtein.Match
	}{
		{"exact match only", "the quick fox", "quick", 0, []levenshtein.Match{{Index: 4, Distance: 0}}},
		{
			name: "transposed window tolerated at distance two",
			text: "golang golnag gocode", pattern: "golang", maxDistance: 2,
			want: []levenshtein.Match{{Index: 0, Distance: 0}, {Index: 7, Distance: 2}},
		},
		{"empty pattern", "abc", "", 2, nil},
		{"empty text", "", "abc", 2, nil},
		{"pattern longer than text", "ab", "abc", 2, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := levenshtein.Search(c.text, c.pattern, c.maxDistance)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("Search(%q, %q, %d) = %v, want %v", c.text, c.pattern, c.maxDistance, got, c.want)
			}
		})
	}
}

// TestAgreesWithKMPAtZeroDistance checks that a zero-distance fuzzy scan
// reports exactly the same start indices KMP reports for exact matches.
func TestAgreesWithKMPAtZeroDistance(t *testing.T) {
	texts := []string{"mississippi", "aaaaaaaa", "the quick brown fox"}
	patterns := []string{"issi", "aa", "quick"}

	for _, text := range texts {
		for _, pattern := range patterns {
			exact := kmp.Search(text, pattern)
			fuzzy := levenshtein.Search(text, pattern, 0)

			var fuzzyIndices []int
			for _, m := range fuzzy {
				fuzzyIndices = append(fuzzyIndices, m.Index)
			}
			if !reflect.DeepEqual(fuzzyIndices, exact) {
				t.Errorf("levenshtein.Search(%q, %q, 0) indices = %v, want %v (from kmp)", text, pattern, fuzzyIndices, exact)
			}
		}
	}
}

func TestOverlappingWindowsNotMerged(t *testing.T) {
	// "aaa" occurs at both windows "aaaa" offers (index 0 and index 1);
	// both are reported separately, not deduplicated into one hit.
	got := levenshtein.Search("aaaa", "aaa", 1)
	if len(got) != 2 {
		t.Fatalf("Search() returned %d matches, want 2: %v", len(got), got)
	}
}
