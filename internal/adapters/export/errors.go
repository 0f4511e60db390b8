package export

import (
	"errors"
)

// Sentinel kinds for export failures.
var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrWriteExport   = errors.New("write export")
)
