package ats

import (
	"context"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/coregx/coregex"
	"github.com/fareltaza35/atscore/pkg/algorithms/search"
	"github.com/fareltaza35/atscore/pkg/algorithms/search/levenshtein"
	"github.com/fareltaza35/atscore/pkg/errors"
	"github.com/fareltaza35/atscore/pkg/logger"
	"github.com/fareltaza35/atscore/pkg/validator"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
)

// automatonCacheSize bounds how many distinct keyword sets keep a built
// Aho-Corasick automaton resident; construction is cheap enough relative to
// scan cost that eviction under pressure is harmless, just slower.
const automatonCacheSize = 64

var sanitizer = validator.NewSanitizer(validator.SanitizerConfig{
	StripHTML:  true,
	EscapeHTML: false,
})

// Executor runs queries against a fixed Corpus.
type Executor struct {
	corpus     *Corpus
	automatons *lru.Cache[string, search.ExactMatcher]
}

// NewExecutor builds an Executor over corpus. corpus must not be empty;
// callers should check Corpus.Len and return CorpusUnavailable themselves
// before constructing an Executor, per spec §7.
func NewExecutor(corpus *Corpus) *Executor {
	cache, err := lru.New[string, search.ExactMatcher](automatonCacheSize)
	if err != nil {
		// Only fails for a non-positive size, which automatonCacheSize never is.
		panic(err)
	}
	return &Executor{corpus: corpus, automatons: cache}
}

// parseKeywords sanitizes, splits, trims, and case-folds the raw keyword
// field, de-duplicating while preserving first-seen order.
func parseKeywords(raw string) ([]string, error) {
	clean := sanitizer.Sanitize(raw)

	seen := make(map[string]bool)
	var keywords []string
	for _, part := range strings.Split(clean, ",") {
		kw := strings.ToLower(strings.TrimSpace(part))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		keywords = append(keywords, kw)
	}

	if len(keywords) == 0 {
		return nil, errors.InvalidArgument("keywords required", nil)
	}
	return keywords, nil
}

// Run executes q against the executor's corpus and returns a ranked Result.
func (e *Executor) Run(ctx context.Context, q Query) (*Result, error) {
	if e.corpus.Len() == 0 {
		return nil, errors.CorpusUnavailable("no résumés loaded", nil)
	}
	if q.TopN <= 0 {
		return nil, errors.InvalidArgument("top_n must be positive", nil)
	}
	if q.FuzzyThreshold < 0 {
		return nil, errors.InvalidArgument("fuzzy threshold must be non-negative", nil)
	}
	switch q.Algorithm {
	case search.KMP, search.BM, search.AC:
	default:
		return nil, errors.InvalidArgument("unknown algorithm", nil)
	}

	keywords, err := parseKeywords(q.KeywordsRaw)
	if err != nil {
		return nil, err
	}

	exactStart := time.Now()
	partials, hitKeywords, err := e.exactPhase(ctx, keywords, q.Algorithm)
	if err != nil {
		return nil, errors.Internal("exact phase failed", err)
	}
	exactMS := msSince(exactStart)

	unmatched := unmatchedKeywords(keywords, hitKeywords)

	var fuzzyMS *float64
	if len(unmatched) > 0 {
		fuzzyStart := time.Now()
		if err := e.fuzzyPhase(ctx, unmatched, q.FuzzyThreshold, partials); err != nil {
			return nil, errors.Internal("fuzzy phase failed", err)
		}
		ms := msSince(fuzzyStart)
		fuzzyMS = &ms
	}

	flattened := flattenPartials(partials)
	ranked := rank(flattened, q.TopN)

	return &Result{Applicants: ranked, ExactMS: exactMS, FuzzyMS: fuzzyMS}, nil
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}

func unmatchedKeywords(keywords []string, hit map[string]bool) []string {
	var unmatched []string
	for _, kw := range keywords {
		if !hit[kw] {
			unmatched = append(unmatched, kw)
		}
	}
	return unmatched
}

// partial accumulates matched counts for one applicant during a query.
// Labels are kept as a slice to preserve first-hit order, mirroring
// ApplicantResult.Matched.
type partial struct {
	resume *Resume
	index  int
	order  []string
	counts map[string]int
}

func newPartial(r *Resume, index int) *partial {
	return &partial{resume: r, index: index, counts: make(map[string]int)}
}

func (p *partial) add(label string, n int) {
	if n <= 0 {
		return
	}
	if _, ok := p.counts[label]; !ok {
		p.order = append(p.order, label)
	}
	p.counts[label] += n
}

// exactPhase builds the matcher chosen by algorithm, scans every résumé in
// parallel, and returns per-applicant partials plus the set of keywords
// that hit at least once anywhere in the corpus.
func (e *Executor) exactPhase(ctx context.Context, keywords []string, kind search.MatcherKind) ([]*partial, map[string]bool, error) {
	matcher := e.matcherFor(kind, keywords)
	prefilter := prefilterFor(keywords)

	partials := make([]*partial, e.corpus.Len())
	hits := make([]map[string]bool, e.corpus.Len())

	workers := runtime.GOMAXPROCS(0)
	g, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, workers)

	for i := range e.corpus.resumes {
		i := i
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()

			r := &e.corpus.resumes[i]
			p := newPartial(r, i)
			localHits := make(map[string]bool)

			if r.Text != "" && (prefilter == nil || prefilter.MatchString(r.Text)) {
				for kw, positions := range matcher.Search(r.Text) {
					if len(positions) == 0 {
						continue
					}
					p.add(kw, len(positions))
					localHits[kw] = true
				}
			}

			partials[i] = p
			hits[i] = localHits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	hitKeywords := make(map[string]bool)
	for _, h := range hits {
		for kw := range h {
			hitKeywords[kw] = true
		}
	}

	logger.L().DebugContext(ctx, "exact phase complete",
		"keywords", len(keywords), "résumés", e.corpus.Len(), "hit_keywords", len(hitKeywords))

	return partials, hitKeywords, nil
}

// matcherFor returns a cached ExactMatcher for kind+keywords when kind is
// AC (construction is the expensive case worth memoizing); KMP/BM wrappers
// are cheap enough to build per call.
func (e *Executor) matcherFor(kind search.MatcherKind, keywords []string) search.ExactMatcher {
	if kind != search.AC {
		return search.New(kind, keywords)
	}

	key := cacheKey(kind, keywords)
	if m, ok := e.automatons.Get(key); ok {
		return m
	}
	m := search.New(kind, keywords)
	e.automatons.Add(key, m)
	return m
}

func cacheKey(kind search.MatcherKind, keywords []string) string {
	sorted := append([]string(nil), keywords...)
	sort.Strings(sorted)
	return string(kind) + "|" + strings.Join(sorted, "\x00")
}

// prefilterFor builds a boolean containment prefilter over keywords so the
// exact phase can skip résumés that cannot possibly contain any of them.
// Returns nil if no usable pattern could be compiled, in which case every
// résumé falls through to the real matcher unfiltered.
func prefilterFor(keywords []string) *coregex.Regex {
	escaped := make([]string, len(keywords))
	for i, kw := range keywords {
		escaped[i] = regexp.QuoteMeta(kw)
	}
	re, err := coregex.Compile(strings.Join(escaped, "|"))
	if err != nil {
		return nil
	}
	return re
}

// fuzzyPhase scans every résumé against every unmatched keyword with the
// Levenshtein scanner, folding hits into the same partials used by the
// exact phase under a distinguished fuzzy label.
func (e *Executor) fuzzyPhase(ctx context.Context, unmatched []string, threshold int, partials []*partial) error {
	workers := runtime.GOMAXPROCS(0)
	g, _ := errgroup.WithContext(ctx)
	sem := make(chan struct{}, workers)

	for i := range partials {
		i := i
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()

			r := partials[i].resume
			if r.Text == "" {
				return nil
			}
			for _, kw := range unmatched {
				matches := levenshtein.Search(r.Text, kw, threshold)
				if len(matches) > 0 {
					partials[i].add(fuzzyLabel(kw), len(matches))
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func flattenPartials(partials []*partial) []ApplicantResult {
	var results []ApplicantResult
	for _, p := range partials {
		if len(p.order) == 0 {
			continue
		}
		matched := make([]MatchedKeyword, 0, len(p.order))
		total := 0
		for _, label := range p.order {
			n := p.counts[label]
			matched = append(matched, MatchedKeyword{Label: label, Count: n})
			total += n
		}
		results = append(results, ApplicantResult{
			ApplicantID: p.resume.ApplicantID,
			Name:        p.resume.Name,
			Phone:       p.resume.Phone,
			Address:     p.resume.Address,
			BirthDate:   p.resume.BirthDate,
			CVPath:      p.resume.CVPath,
			Matched:     matched,
			Total:       total,
			corpusIndex: p.index,
		})
	}
	return results
}
