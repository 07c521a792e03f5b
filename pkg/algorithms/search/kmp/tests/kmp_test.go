package kmp_test

import (
	"reflect"
	"testing"

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
			got := kmp.Search(c.text, c.pattern)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("Search(%q, %q) = %v, want %v", c.text, c.pattern, got, c.want)
			}
		})
	}
}

func TestLPS(t *testing.T) {
	cases := []struct {
		pattern string
		want    []int
	}{
		{"aba", []int{0, 0, 1}},
		{"aaaa", []int{0, 1, 2, 3}},
		{"abcdef", []int{0, 0, 0, 0, 0, 0}},
		{"ababab", []int{0, 0, 1, 2, 3, 4}},
	}

	for _, c := range cases {
		got := kmp.LPS(c.pattern)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("LPS(%q) = %v, want %v", c.pattern, got, c.want)
		}
	}
}
