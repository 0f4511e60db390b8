package api

import (
	"errors"
	"net/http"

	"github.com/okian/cricanalytics/internal/adapters/matchfile"
	"github.com/okian/cricanalytics/internal/domain/analysis"
	"github.com/okian/cricanalytics/internal/domain/compare"
	"github.com/okian/cricanalytics/internal/domain/model"
)

// ReportHandler serves the tables of one analysis run per request.
type ReportHandler struct {
	analyzer Analyzer
}

// NewReportHandler creates a new report handler.
func NewReportHandler(analyzer Analyzer) *ReportHandler {
	return &ReportHandler{analyzer: analyzer}
}

type warningResponse struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

type summaryResponse struct {
	analysis.Summary
	Files    []matchfile.FileOutcome `json:"files"`
	Warnings []warningResponse       `json:"warning_details"`
}

type compareResponse struct {
	Comparison compare.Comparison `json:"comparison"`
	Impact     []model.Impact     `json:"impact"`
}

// HandleSummary handles GET /summary?dir= requests.
func (h *ReportHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	report, ok := h.analyze(w, r)
	if !ok {
		return
	}
	resp := summaryResponse{
		Summary:  report.Summary(),
		Files:    nonNil(report.Files),
		Warnings: make([]warningResponse, 0, len(report.Warnings)),
	}
	for _, wr := range report.Warnings {
		resp.Warnings = append(resp.Warnings, warningResponse{File: wr.File, Error: wr.Err.Error()})
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleDeliveries handles GET /deliveries?dir= requests.
func (h *ReportHandler) HandleDeliveries(w http.ResponseWriter, r *http.Request) {
	report, ok := h.analyze(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, nonNil([]model.Delivery(report.Deliveries)))
}

// HandleBatting handles GET /batting?dir= requests.
func (h *ReportHandler) HandleBatting(w http.ResponseWriter, r *http.Request) {
	report, ok := h.analyze(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, nonNil(report.Batting))
}

// HandleImpact handles GET /impact?dir=&player= requests. Without a player
// the whole table is returned. Names match exactly; an empty player value
// selects the batsman recorded without a name.
func (h *ReportHandler) HandleImpact(w http.ResponseWriter, r *http.Request) {
	report, ok := h.analyze(w, r)
	if !ok {
		return
	}
	players, ok := r.URL.Query()["player"]
	if !ok {
		writeJSON(w, http.StatusOK, nonNil(report.Impact))
		return
	}
	writeJSON(w, http.StatusOK, report.ImpactFor(players...))
}

// HandleCompare handles GET /compare?dir=&p1=&p2= requests. Without p1 and
// p2 the first two batsmen are compared. Names match exactly, so an empty
// value selects the batsman recorded without a name.
func (h *ReportHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	report, ok := h.analyze(w, r)
	if !ok {
		return
	}
	p1, p2, err := pairParams(r, report)
	if errors.Is(err, ErrBadRequest) {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, compareErrorCode(err), err)
		return
	}

	c, err := report.Compare(p1, p2)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, compareErrorCode(err), err)
		return
	}
	writeJSON(w, http.StatusOK, compareResponse{Comparison: c, Impact: report.ImpactFor(p1, p2)})
}

func (h *ReportHandler) analyze(w http.ResponseWriter, r *http.Request) (*analysis.Report, bool) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return nil, false
	}
	return h.analyzer.Analyze(r.Context(), r.URL.Query().Get("dir")), true
}

// pairParams reads p1 and p2 as given. When both are absent it falls back
// to the report's default pair.
func pairParams(r *http.Request, report *analysis.Report) (string, string, error) {
	const op = "api.compare"
	q := r.URL.Query()
	_, has1 := q["p1"]
	_, has2 := q["p2"]
	switch {
	case has1 && has2:
		return q.Get("p1"), q.Get("p2"), nil
	case has1 || has2:
		return "", "", badRequest(op, "p1 and p2 must be given together")
	default:
		return report.DefaultPair()
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
