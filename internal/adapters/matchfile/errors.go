package matchfile

import (
	"errors"
)

// Sentinel kinds carried by per-file warnings.
var (
	ErrReadFile   = errors.New("read match file")
	ErrDecodeFile = errors.New("decode match file")

	ErrMultipleDocuments = errors.New("expected a single document")
)
