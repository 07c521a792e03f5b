// Package search exposes the exact-match algorithms under a single
// interface so the query executor can pick one per keyword without caring
// which implementation backs it.
package search

import (
	"github.com/fareltaza35/atscore/pkg/algorithms/search/ahocorasick"
	"github.com/fareltaza35/atscore/pkg/algorithms/search/boyermoore"
	"github.com/fareltaza35/atscore/pkg/algorithms/search/kmp"
)

// MatcherKind tags which exact-match algorithm a keyword should use.
type MatcherKind string

const (
	KMP MatcherKind = "kmp"
	BM  MatcherKind = "bm"
	AC  MatcherKind = "ac"
)

// ExactMatcher finds every occurrence of a fixed set of keywords in a text.
type ExactMatcher interface {
	// Search returns, for each keyword with at least one occurrence, its
	// strictly increasing start indices in text.
	Search(text string) map[string][]int
}

// singleMatcher wraps one of the single-pattern algorithms (KMP,
// Boyer-Moore) behind the multi-pattern ExactMatcher interface by running
// it once per keyword.
type singleMatcher struct {
	kind     MatcherKind
	keywords []string
}

func (s singleMatcher) Search(text string) map[string][]int {
	result := make(map[string][]int)
	for _, kw := range s.keywords {
		var hits []int
		switch s.kind {
		case KMP:
			hits = kmp.Search(text, kw)
		case BM:
			hits = boyermoore.Search(text, kw)
		}
		if len(hits) > 0 {
			result[kw] = hits
		}
	}
	return result
}

// New builds an ExactMatcher over keywords using the given algorithm. AC
// builds a single automaton shared across all keywords; KMP and BM run
// independently per keyword, since neither is natively multi-pattern.
func New(kind MatcherKind, keywords []string) ExactMatcher {
	if kind == AC {
		return ahocorasick.New(keywords)
	}
	return singleMatcher{kind: kind, keywords: keywords}
}
