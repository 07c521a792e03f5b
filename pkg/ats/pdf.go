package ats

import (
	"bytes"
	"context"
	"io"

	"github.com/fareltaza35/atscore/pkg/logger"
	"github.com/fareltaza35/atscore/pkg/storage/blob"
	"github.com/ledongthuc/pdf"
)

// PDFTextExtractor implements TextExtractor over résumé PDFs held in a
// blob.Store, keyed by the cv_path recorded against each applicant.
type PDFTextExtractor struct {
	store blob.Store
}

// NewPDFTextExtractor wraps store as a TextExtractor.
func NewPDFTextExtractor(store blob.Store) *PDFTextExtractor {
	return &PDFTextExtractor{store: store}
}

// ExtractText downloads cvPath from the store and extracts its plain text.
// On any failure it logs and returns the empty string, per spec §6: the
// core treats empty text as "no matches," never as a query error.
func (e *PDFTextExtractor) ExtractText(ctx context.Context, cvPath string) string {
	rc, err := e.store.Download(ctx, cvPath)
	if err != nil {
		logger.L().WarnContext(ctx, "failed to download résumé", "cv_path", cvPath, "error", err)
		return ""
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		logger.L().WarnContext(ctx, "failed to read résumé bytes", "cv_path", cvPath, "error", err)
		return ""
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		logger.L().WarnContext(ctx, "failed to parse résumé pdf", "cv_path", cvPath, "error", err)
		return ""
	}

	textReader, err := reader.GetPlainText()
	if err != nil {
		logger.L().WarnContext(ctx, "failed to extract résumé text", "cv_path", cvPath, "error", err)
		return ""
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, textReader); err != nil {
		logger.L().WarnContext(ctx, "failed to read extracted résumé text", "cv_path", cvPath, "error", err)
		return ""
	}

	return buf.String()
}
