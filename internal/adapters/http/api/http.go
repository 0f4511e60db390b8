// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/cricanalytics/internal/domain/analysis"
)

// Analyzer runs the pipeline over a directory. An empty dir means the
// configured default.
type Analyzer interface {
	Analyze(ctx context.Context, dir string) *analysis.Report
}

// Server wires HTTP routes for the analysis API.
type Server struct {
	healthHandler    *HealthHandler
	reportHandler    *ReportHandler
	dashboardHandler *DashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(analyzer Analyzer) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		reportHandler:    NewReportHandler(analyzer),
		dashboardHandler: NewDashboardHandler(analyzer),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", MetricsMiddleware(s.healthHandler.HandleMetrics, "metrics"))
	mux.HandleFunc("/summary", MetricsMiddleware(s.reportHandler.HandleSummary, "summary"))
	mux.HandleFunc("/deliveries", MetricsMiddleware(s.reportHandler.HandleDeliveries, "deliveries"))
	mux.HandleFunc("/batting", MetricsMiddleware(s.reportHandler.HandleBatting, "batting"))
	mux.HandleFunc("/impact", MetricsMiddleware(s.reportHandler.HandleImpact, "impact"))
	mux.HandleFunc("/compare", MetricsMiddleware(s.reportHandler.HandleCompare, "compare"))
	mux.HandleFunc("/dashboard", MetricsMiddleware(s.dashboardHandler.HandleDashboard, "dashboard"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
