package api

import (
	"bytes"
	"net/http"

	"github.com/okian/cricanalytics/internal/adapters/render"
	"github.com/okian/cricanalytics/internal/domain/compare"
	"github.com/okian/cricanalytics/pkg/logger"
)

// DashboardHandler serves the chart page.
type DashboardHandler struct {
	analyzer Analyzer
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(analyzer Analyzer) *DashboardHandler {
	return &DashboardHandler{analyzer: analyzer}
}

// HandleDashboard handles GET /dashboard?dir=&p1=&p2= requests. The
// comparison chart is left out when the pair cannot be compared.
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	report := h.analyzer.Analyze(r.Context(), r.URL.Query().Get("dir"))

	var cmp *compare.Comparison
	if p1, p2, err := pairParams(r, report); err == nil {
		if c, err := report.Compare(p1, p2); err == nil {
			cmp = &c
		}
	}

	var buf bytes.Buffer
	if err := render.Dashboard(&buf, report, cmp); err != nil {
		logger.Get().Error(r.Context(), "dashboard render failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
