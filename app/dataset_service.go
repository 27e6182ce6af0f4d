package app

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"tokpee/adapters/excel"
	"tokpee/adapters/tabular"
	"tokpee/domain/dataset"
	"tokpee/internal/aggregation"
	apperrors "tokpee/internal/errors"
	"tokpee/internal/metrics"
	"tokpee/internal/profiling"
	"tokpee/internal/session"
)

// DatasetService ingests uploads and serves views over the current dataset
type DatasetService struct {
	state   *session.AppState
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewDatasetService creates a dataset service bound to state
func NewDatasetService(state *session.AppState, m *metrics.Metrics, logger *zap.Logger) *DatasetService {
	return &DatasetService{
		state:   state,
		metrics: m,
		logger:  logger.Named("ingest"),
	}
}

// Ingest parses an uploaded file and makes it the current dataset. A failed
// parse, or a request cancelled before the swap, leaves the previous dataset
// in place.
func (s *DatasetService) Ingest(ctx context.Context, filename, content string) (dataset.Summary, error) {
	start := time.Now()

	format, err := tabular.FormatForFilename(filename)
	if err != nil {
		s.metrics.ObserveIngest("unknown", metrics.ResultError, 0)
		s.logger.Info("upload rejected", zap.String("file", filename), zap.Error(err))
		return dataset.Summary{}, err
	}

	ds, err := tabular.Parse(filename, content, format)
	if err != nil {
		s.metrics.ObserveIngest(string(format), metrics.ResultError, 0)
		s.logger.Info("upload failed to parse",
			zap.String("file", filename),
			zap.String("code", apperrors.GetCode(err)),
			zap.Error(err))
		return dataset.Summary{}, err
	}

	if err := ctx.Err(); err != nil {
		s.metrics.ObserveIngest(string(format), metrics.ResultError, 0)
		s.logger.Info("upload abandoned", zap.String("file", filename), zap.Error(err))
		return dataset.Summary{}, err
	}

	s.state.ReplaceDataset(ds)
	s.metrics.ObserveIngest(string(format), metrics.ResultOK, ds.RowCount())
	s.logger.Info("dataset loaded",
		zap.String("dataset_id", ds.ID.String()),
		zap.String("file", filename),
		zap.Int("rows", ds.RowCount()),
		zap.Int("columns", len(ds.Columns)),
		zap.Duration("elapsed", time.Since(start)))
	return ds.Summarize(), nil
}

// Current returns the current dataset
func (s *DatasetService) Current() (*dataset.Dataset, error) {
	ds := s.state.Dataset()
	if ds == nil {
		return nil, apperrors.NotFound("dataset")
	}
	return ds, nil
}

// Rows returns one page of the rows matching term
func (s *DatasetService) Rows(term string, page int) (dataset.Page, error) {
	ds, err := s.Current()
	if err != nil {
		return dataset.Page{}, err
	}
	return dataset.Paginate(ds.Filter(term), page, dataset.DefaultPageSize), nil
}

// Aggregate computes the chart series. Empty column names fall back to the
// dataset's default axes.
func (s *DatasetService) Aggregate(categoryColumn, valueColumn string) (dataset.AggregationResult, error) {
	ds, err := s.Current()
	if err != nil {
		return dataset.AggregationResult{}, err
	}
	defCategory, defValue := ds.DefaultAxes()
	if categoryColumn == "" {
		categoryColumn = defCategory
	}
	if valueColumn == "" {
		valueColumn = defValue
	}

	result := aggregation.Aggregate(ds, categoryColumn, valueColumn)
	s.metrics.ObserveAggregation()
	return result, nil
}

// Profile summarizes every column of the current dataset
func (s *DatasetService) Profile() ([]profiling.ColumnProfile, error) {
	ds, err := s.Current()
	if err != nil {
		return nil, err
	}
	return profiling.ProfileDataset(ds), nil
}

// ExportWorkbook writes the current dataset as an xlsx workbook
func (s *DatasetService) ExportWorkbook(w io.Writer) error {
	ds, err := s.Current()
	if err != nil {
		return err
	}
	return excel.ExportDataset(w, ds)
}

// ExportDelimited writes the current dataset as comma-delimited text
func (s *DatasetService) ExportDelimited(w io.Writer) error {
	ds, err := s.Current()
	if err != nil {
		return err
	}
	skipped, err := tabular.WriteDelimited(w, ds)
	if skipped > 0 {
		s.logger.Warn("rows not representable in delimited export", zap.Int("skipped", skipped))
	}
	return err
}

// ExportChart writes the chart series and a column chart as an xlsx workbook
func (s *DatasetService) ExportChart(w io.Writer, categoryColumn, valueColumn string) error {
	result, err := s.Aggregate(categoryColumn, valueColumn)
	if err != nil {
		return err
	}
	return excel.ExportAggregation(w, result)
}
