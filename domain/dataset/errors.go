package dataset

import "errors"

// Ingestion failures. Each one is fatal to the attempt that produced it.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMalformedContent  = errors.New("malformed content")
	ErrEmptyDataset      = errors.New("dataset has no rows")
)
