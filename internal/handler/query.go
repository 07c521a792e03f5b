// Package handler exposes the ats query executor over HTTP.
package handler

import (
	"net/http"

	"github.com/fareltaza35/atscore/pkg/algorithms/search"
	"github.com/fareltaza35/atscore/pkg/ats"
	"github.com/fareltaza35/atscore/pkg/errors"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Handler serves the applicant-ranking query surface.
type Handler struct {
	executor  *ats.Executor
	extractor *ats.CVFieldExtractor
	pdf       *ats.PDFTextExtractor
}

// New builds a Handler over a ready executor and PDF text extractor (used
// only by the detail route, never by the ranking path).
func New(executor *ats.Executor, pdf *ats.PDFTextExtractor) *Handler {
	return &Handler{executor: executor, extractor: ats.NewCVFieldExtractor(), pdf: pdf}
}

// Register mounts the handler's routes onto e.
func (h *Handler) Register(e *echo.Echo) {
	e.POST("/query", h.RunQuery)
	e.GET("/applicants/:cv_path/detail", h.Detail)
}

type queryRequest struct {
	KeywordsRaw string `json:"keywords_raw"`
	Algorithm   string `json:"algorithm"`
	TopN        int    `json:"top_n"`
}

type matchedKeywordResponse struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type applicantResponse struct {
	ApplicantID int64                    `json:"applicant_id"`
	Name        string                   `json:"name"`
	Phone       string                   `json:"phone"`
	Address     string                   `json:"address"`
	BirthDate   string                   `json:"birth_date"`
	CVPath      string                   `json:"cv_path"`
	Matched     []matchedKeywordResponse `json:"matched"`
	Total       int                      `json:"total"`
}

type queryResponse struct {
	QueryID    string              `json:"query_id"`
	Applicants []applicantResponse `json:"applicants"`
	ExactMS    float64             `json:"exact_ms"`
	FuzzyMS    *float64            `json:"fuzzy_ms"`
}

// RunQuery implements spec §6's run_query surface:
// run_query({keywords_raw, algorithm, top_n}) -> Result.
func (h *Handler) RunQuery(c echo.Context) error {
	var req queryRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errors.InvalidArgument("malformed request body", err))
	}

	queryID := uuid.NewString()
	ctx := c.Request().Context()

	result, err := h.executor.Run(ctx, ats.Query{
		KeywordsRaw:    req.KeywordsRaw,
		Algorithm:      search.MatcherKind(req.Algorithm),
		TopN:           req.TopN,
		FuzzyThreshold: ats.DefaultFuzzyThreshold,
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := queryResponse{
		QueryID:    queryID,
		Applicants: make([]applicantResponse, 0, len(result.Applicants)),
		ExactMS:    result.ExactMS,
		FuzzyMS:    result.FuzzyMS,
	}
	for _, a := range result.Applicants {
		matched := make([]matchedKeywordResponse, 0, len(a.Matched))
		for _, m := range a.Matched {
			matched = append(matched, matchedKeywordResponse{Label: m.Label, Count: m.Count})
		}
		resp.Applicants = append(resp.Applicants, applicantResponse{
			ApplicantID: a.ApplicantID,
			Name:        a.Name,
			Phone:       a.Phone,
			Address:     a.Address,
			BirthDate:   a.BirthDate,
			CVPath:      a.CVPath,
			Matched:     matched,
			Total:       a.Total,
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// Detail implements spec §6's extract_info_from_text surface, used only
// by the per-applicant detail view and never by the ranking path.
func (h *Handler) Detail(c echo.Context) error {
	cvPath := c.Param("cv_path")

	text := h.pdf.ExtractText(c.Request().Context(), cvPath)
	detail := h.extractor.Extract(text)

	return c.JSON(http.StatusOK, detail)
}

func writeError(c echo.Context, err error) error {
	return c.JSON(errors.HTTPStatus(err), map[string]string{"error": err.Error()})
}
