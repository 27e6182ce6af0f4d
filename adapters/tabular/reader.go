// Package tabular turns uploaded file content into a uniform dataset.
//
// Two layouts are understood: comma-delimited text with a header line, and
// JSON holding either an array of flat records or a single flat record.
// Parsing is all-or-nothing; a failed parse never yields a partial dataset.
package tabular

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"tokpee/domain/core"
	"tokpee/domain/dataset"
	apperrors "tokpee/internal/errors"
)

// FormatForFilename maps a file name's extension to the layout it declares
func FormatForFilename(filename string) (dataset.Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return dataset.FormatDelimitedText, nil
	case ".json":
		return dataset.FormatStructuredRecord, nil
	default:
		return "", apperrors.UnsupportedFormat(
			fmt.Sprintf("file %q is not supported, use .csv or .json", filename),
			dataset.ErrUnsupportedFormat,
		)
	}
}

// ParseFile picks the layout from filename and parses content with it
func ParseFile(filename, content string) (*dataset.Dataset, error) {
	format, err := FormatForFilename(filename)
	if err != nil {
		return nil, err
	}
	return Parse(filename, content, format)
}

// Parse builds a dataset labelled name from content laid out as format
func Parse(name, content string, format dataset.Format) (*dataset.Dataset, error) {
	var (
		columns []string
		rows    []dataset.Row
		err     error
	)

	switch format {
	case dataset.FormatDelimitedText:
		columns, rows = parseDelimited(content)
	case dataset.FormatStructuredRecord:
		columns, rows, err = parseRecords(content)
		if err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.UnsupportedFormat(
			fmt.Sprintf("format %q is not supported", format),
			dataset.ErrUnsupportedFormat,
		)
	}

	if len(rows) == 0 {
		return nil, apperrors.EmptyDataset(
			fmt.Sprintf("%s contains no data rows", name),
			dataset.ErrEmptyDataset,
		)
	}

	return &dataset.Dataset{
		ID:       core.NewDatasetID(),
		Name:     name,
		Format:   format,
		Columns:  columns,
		Rows:     rows,
		LoadedAt: time.Now(),
	}, nil
}
