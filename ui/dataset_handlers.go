package ui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "tokpee/internal/errors"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=utf-8"
)

// handleUploadDataset ingests a multipart "file" upload as the current dataset
func (s *Server) handleUploadDataset(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.deps.MaxUploadBytes)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, errorBody{
				Error: fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit),
				Code:  apperrors.CodeInvalidInput,
			})
			return
		}
		badRequest(c, fmt.Errorf("missing file field: %w", err))
		return
	}

	f, err := header.Open()
	if err != nil {
		respondError(c, apperrors.Wrap(err, "open upload"))
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		respondError(c, apperrors.Wrap(err, "read upload"))
		return
	}

	summary, err := s.deps.Datasets.Ingest(c.Request.Context(), header.Filename, string(content))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, summary)
}

func (s *Server) handleCurrentDataset(c *gin.Context) {
	ds, err := s.deps.Datasets.Current()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ds.Summarize())
}

func (s *Server) handleDatasetRows(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		badRequest(c, fmt.Errorf("page must be a number"))
		return
	}

	result, err := s.deps.Datasets.Rows(c.Query("q"), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleAggregate(c *gin.Context) {
	result, err := s.deps.Datasets.Aggregate(c.Query("category"), c.Query("value"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleProfile(c *gin.Context) {
	profiles, err := s.deps.Datasets.Profile()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"columns": profiles})
}

// handleExport downloads the current dataset as xlsx (default), csv, or the
// chart series workbook
func (s *Server) handleExport(c *gin.Context) {
	var (
		buf         bytes.Buffer
		err         error
		contentType string
		filename    string
	)

	switch format := c.DefaultQuery("format", "xlsx"); format {
	case "xlsx":
		err = s.deps.Datasets.ExportWorkbook(&buf)
		contentType, filename = contentTypeXLSX, "dataset.xlsx"
	case "csv":
		err = s.deps.Datasets.ExportDelimited(&buf)
		contentType, filename = contentTypeCSV, "dataset.csv"
	case "chart":
		err = s.deps.Datasets.ExportChart(&buf, c.Query("category"), c.Query("value"))
		contentType, filename = contentTypeXLSX, "chart.xlsx"
	default:
		badRequest(c, fmt.Errorf("unknown export format %q", format))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	s.logger.Debug("dataset exported", zap.String("file", filename), zap.Int("bytes", buf.Len()))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
