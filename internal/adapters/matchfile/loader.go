// Package matchfile turns a folder of ball-by-ball match files into one flat
// table of deliveries.
package matchfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/okian/cricanalytics/internal/domain/model"
	"github.com/okian/cricanalytics/pkg/logger"
	"github.com/okian/cricanalytics/pkg/metrics"
)

// Status is the outcome of one recognized file.
type Status string

const (
	StatusLoaded  Status = "loaded"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// FileOutcome records what happened to one recognized file.
type FileOutcome struct {
	File   string `json:"file"`
	Status Status `json:"status"`
	Rows   int    `json:"rows"`
}

// Warning is a non-fatal per-file failure.
type Warning struct {
	File string
	Err  error
}

func (w Warning) Error() string { return fmt.Sprintf("%s: %v", w.File, w.Err) }

func (w Warning) Unwrap() error { return w.Err }

// Result is the outcome of loading one directory.
type Result struct {
	Directory      string
	DirectoryFound bool
	Deliveries     model.Deliveries
	Files          []FileOutcome
	Warnings       []Warning
}

// Loader reads match files from a directory.
type Loader struct {
	extensions map[string]struct{}
	log        logger.Logger
	validate   *validator.Validate
}

// NewLoader constructs a Loader recognizing DefaultExtensions unless
// configured otherwise.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{validate: validator.New()}
	WithExtensions(DefaultExtensions...)(l)
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Recognizes reports whether name has a recognized extension.
func (l *Loader) Recognizes(name string) bool {
	_, ok := l.extensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Load flattens every recognized file in dir. It never fails: unreadable or
// malformed files become warnings and contribute no rows, and a missing
// directory yields an empty Result.
func (l *Loader) Load(ctx context.Context, dir string) Result {
	log := l.logger()
	start := time.Now()
	res := Result{Directory: dir}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Info(ctx, "match directory not readable", logger.String("dir", dir), logger.Error(err))
		return res
	}
	res.DirectoryFound = true

	for _, e := range entries {
		if ctx.Err() != nil {
			log.Warn(ctx, "load cancelled", logger.String("dir", dir), logger.Error(ctx.Err()))
			break
		}
		if e.IsDir() || !l.Recognizes(e.Name()) {
			continue
		}

		rows, skipped, err := l.loadFile(filepath.Join(dir, e.Name()), e.Name())
		outcome := FileOutcome{File: e.Name(), Rows: len(rows)}
		switch {
		case err != nil:
			outcome.Status = StatusFailed
			outcome.Rows = 0
			w := Warning{File: e.Name(), Err: err}
			res.Warnings = append(res.Warnings, w)
			log.Warn(ctx, "could not load match file", logger.String("file", e.Name()), logger.Error(err))
			metrics.RecordFile(metrics.OutcomeFailed)
		case skipped:
			outcome.Status = StatusSkipped
			log.Debug(ctx, "match file has no innings", logger.String("file", e.Name()))
			metrics.RecordFile(metrics.OutcomeSkipped)
		default:
			outcome.Status = StatusLoaded
			res.Deliveries = append(res.Deliveries, rows...)
			metrics.RecordFile(metrics.OutcomeLoaded)
		}
		res.Files = append(res.Files, outcome)
	}

	metrics.RecordDeliveries(res.Deliveries.Len())
	metrics.RecordIngestDuration(float64(time.Since(start).Microseconds()) / 1000)
	log.Debug(ctx, "match directory loaded",
		logger.String("dir", dir),
		logger.Int("files", len(res.Files)),
		logger.Int("deliveries", res.Deliveries.Len()),
		logger.Int("warnings", len(res.Warnings)),
	)
	return res
}

func (l *Loader) logger() logger.Logger {
	if l.log != nil {
		return l.log
	}
	return logger.Named("matchfile")
}

// loadFile decodes one file. skipped is true when the file has no innings.
func (l *Loader) loadFile(path, matchID string) (rows []model.Delivery, skipped bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	var doc matchDocument
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, true, nil
		}
		return nil, false, decodeError(err)
	}
	// A match file holds exactly one document.
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, false, decodeError(err)
		}
		return nil, false, fmt.Errorf("%w: %w", ErrDecodeFile, ErrMultipleDocuments)
	}
	if doc.Innings == nil {
		return nil, true, nil
	}
	if err := checkRuns(l.validate, &doc); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrDecodeFile, err)
	}

	for _, inn := range *doc.Innings {
		for _, d := range inn.Value.Deliveries {
			info := d.Value
			rows = append(rows, model.Delivery{
				MatchID:     matchID,
				Inning:      inn.Key,
				Ball:        d.Key,
				Batsman:     string(info.Batsman),
				Bowler:      string(info.Bowler),
				RunsBatsman: info.Runs.Batsman,
				Extras:      info.Runs.Extras,
				TotalRuns:   info.Runs.Total,
				IsWicket:    info.dismissed(),
			})
		}
	}
	return rows, false, nil
}

func decodeError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	return fmt.Errorf("%w: %w", ErrDecodeFile, err)
}
