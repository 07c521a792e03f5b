// Package ats implements the applicant-tracking matching and ranking core:
// a corpus of résumé text scanned against a keyword query using one of
// several interchangeable exact-match algorithms, falling back to fuzzy
// matching for keywords that produce no exact hits anywhere in the corpus.
package ats

import "github.com/fareltaza35/atscore/pkg/algorithms/search"

// Resume is one immutable résumé record in the corpus.
type Resume struct {
	ApplicantID int64
	Name        string
	Phone       string
	Address     string
	BirthDate   string
	CVPath      string
	// Text is already case-folded to ASCII lowercase.
	Text string
}

// Query is a single ranking request.
type Query struct {
	// KeywordsRaw is the comma-separated, un-sanitized keyword field as
	// received from the caller.
	KeywordsRaw string
	Algorithm   search.MatcherKind
	TopN        int
	// FuzzyThreshold is the maximum edit distance accepted in the fuzzy
	// phase. Negative values are rejected as InvalidInput.
	FuzzyThreshold int
}

// DefaultFuzzyThreshold is used when a Query does not set one explicitly.
const DefaultFuzzyThreshold = 2

// fuzzyLabel marks a keyword that matched only approximately, so exact and
// fuzzy hits never collapse into the same matched-map entry.
func fuzzyLabel(keyword string) string {
	return keyword + " (fuzzy)"
}

// ApplicantResult is one ranked result row, frozen once returned.
type ApplicantResult struct {
	ApplicantID int64
	Name        string
	Phone       string
	Address     string
	BirthDate   string
	CVPath      string
	// Matched preserves insertion order: keywords as they were first hit,
	// exact labels before any fuzzy labels for the same underlying keyword.
	Matched []MatchedKeyword
	Total   int

	// corpusIndex is the résumé's position in the corpus at load time,
	// used only for stable tie-breaking; never exposed to callers.
	corpusIndex int
}

// MatchedKeyword is one entry of an ApplicantResult's matched keywords,
// kept as an ordered slice (rather than a map) so insertion order survives
// serialization.
type MatchedKeyword struct {
	Label string
	Count int
}

// Result is the shaped, ranked response to a Query.
type Result struct {
	Applicants []ApplicantResult
	ExactMS    float64
	// FuzzyMS is nil when every keyword had at least one exact hit and the
	// fuzzy phase never ran.
	FuzzyMS *float64
}
