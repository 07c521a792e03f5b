package ats

import (
	"context"
	"strings"

	"github.com/fareltaza35/atscore/pkg/errors"
	"github.com/fareltaza35/atscore/pkg/logger"
)

// ApplicantRecord is one row of the joined applicant/application data as
// returned by the external applicant store.
type ApplicantRecord struct {
	ApplicantID int64
	FirstName   string
	LastName    string
	DateOfBirth string
	Address     string
	PhoneNumber string
	// CVPath is relative to a fixed resource root.
	CVPath string
}

// ApplicantStore is the external collaborator that owns applicant identity
// and résumé file locations. The core never writes to it.
type ApplicantStore interface {
	GetAllApplicantDataJoined(ctx context.Context) ([]ApplicantRecord, error)
}

// TextExtractor turns a résumé file path into its plain-text contents. On
// failure it returns the empty string and the core treats that résumé as
// having no matches, never as a query error.
type TextExtractor interface {
	ExtractText(ctx context.Context, cvPath string) string
}

// Corpus is the in-memory résumé cache. Built once at startup and never
// mutated afterward; safe to share across concurrent queries.
type Corpus struct {
	resumes []Resume
}

// Load builds a Corpus by pulling every applicant record from store and
// running extractor over each one's cv_path. A résumé whose text could not
// be extracted is still included in the corpus with an empty Text field,
// per the "empty text means no matches" rule; the failure itself is
// logged, not surfaced.
func Load(ctx context.Context, store ApplicantStore, extractor TextExtractor) (*Corpus, error) {
	records, err := store.GetAllApplicantDataJoined(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load applicant data")
	}

	resumes := make([]Resume, 0, len(records))
	for _, r := range records {
		text := extractor.ExtractText(ctx, r.CVPath)
		if text == "" {
			logger.L().WarnContext(ctx, "résumé text extraction produced no text",
				"applicant_id", r.ApplicantID, "cv_path", r.CVPath)
		}

		resumes = append(resumes, Resume{
			ApplicantID: r.ApplicantID,
			Name:        strings.TrimSpace(r.FirstName + " " + r.LastName),
			Phone:       r.PhoneNumber,
			Address:     r.Address,
			BirthDate:   r.DateOfBirth,
			CVPath:      r.CVPath,
			Text:        strings.ToLower(text),
		})
	}

	return &Corpus{resumes: resumes}, nil
}

// Len reports how many résumés are in the corpus.
func (c *Corpus) Len() int {
	return len(c.resumes)
}
