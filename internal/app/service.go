// Package service runs the analysis pipeline: load a directory of match
// files, then compute the batting and impact views.
package service

import (
	"context"
	"time"

	"github.com/okian/cricanalytics/internal/adapters/matchfile"
	"github.com/okian/cricanalytics/internal/domain/analysis"
	"github.com/okian/cricanalytics/internal/domain/batting"
	"github.com/okian/cricanalytics/internal/domain/impact"
	"github.com/okian/cricanalytics/pkg/logger"
	"github.com/okian/cricanalytics/pkg/metrics"
)

// Loader reads one directory into a flat delivery table.
type Loader interface {
	Load(ctx context.Context, dir string) matchfile.Result
}

// Service is stateless: every Analyze call re-reads the directory.
type Service struct {
	loader  Loader
	dataDir string
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLoader replaces the match file loader.
func WithLoader(l Loader) Option {
	return func(s *Service) {
		if l != nil {
			s.loader = l
		}
	}
}

// WithDataDir sets the directory used when Analyze gets an empty path.
func WithDataDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.dataDir = dir
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dataDir: "./data",
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.loader == nil {
		s.loader = matchfile.NewLoader(matchfile.WithLogger(s.logger))
	}

	return s
}

// DataDir returns the default directory.
func (s *Service) DataDir() string { return s.dataDir }

// Analyze loads dir (or the default directory when dir is empty) and builds
// a report. Bad files surface as report warnings, never as errors.
func (s *Service) Analyze(ctx context.Context, dir string) *analysis.Report {
	if dir == "" {
		dir = s.dataDir
	}
	log := s.log()

	res := s.loader.Load(ctx, dir)
	if !res.DirectoryFound {
		log.Warn(ctx, "match directory not found", logger.String("dir", dir))
	}

	start := time.Now()
	stats := batting.Compute(res.Deliveries)
	metrics.RecordAggregationDuration(metrics.ViewBatting, sinceMillis(start))

	start = time.Now()
	rows := impact.Compute(res.Deliveries)
	metrics.RecordAggregationDuration(metrics.ViewImpact, sinceMillis(start))

	report := analysis.New(res, stats, rows)
	metrics.UpdateBatsmen(len(stats))

	sum := report.Summary()
	log.Info(ctx, "analysis complete",
		logger.String("run_id", sum.RunID),
		logger.String("dir", dir),
		logger.Int("deliveries", sum.Deliveries),
		logger.Int("matches", sum.Matches),
		logger.Int("batsmen", sum.Batsmen),
		logger.Int("warnings", sum.Warnings),
	)
	return report
}

func (s *Service) log() logger.Logger {
	if s.logger != nil {
		return s.logger
	}
	return logger.Named("service")
}

func sinceMillis(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000
}
