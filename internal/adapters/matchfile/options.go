package matchfile

import (
	"strings"

	"github.com/okian/cricanalytics/pkg/logger"
)

// DefaultExtensions are recognized when no WithExtensions option is given.
var DefaultExtensions = []string{".yaml", ".yml"} //nolint:gochecknoglobals // read-only defaults

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithExtensions replaces the recognized extension set. Matching is
// case-insensitive and a missing leading dot is added.
func WithExtensions(exts ...string) Option {
	return func(l *Loader) {
		set := make(map[string]struct{}, len(exts))
		for _, e := range exts {
			e = strings.ToLower(strings.TrimSpace(e))
			if e == "" {
				continue
			}
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			set[e] = struct{}{}
		}
		if len(set) > 0 {
			l.extensions = set
		}
	}
}

// WithLogger sets the logger used for per-file warnings.
func WithLogger(log logger.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}
