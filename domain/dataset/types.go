package dataset

import (
	"strings"
	"time"

	"tokpee/domain/core"
)

// Format identifies how raw content is laid out
type Format string

const (
	FormatDelimitedText    Format = "delimited-text"
	FormatStructuredRecord Format = "structured-record"
)

// Row maps column name to cell value. Absent keys read as Missing.
type Row map[string]Value

// Get returns the value stored under column, or Missing
func (r Row) Get(column string) Value {
	v, ok := r[column]
	if !ok {
		return Missing()
	}
	return v
}

// Dataset is the uniform in-memory table produced by ingestion.
// It is not mutated after construction; a new upload replaces it.
type Dataset struct {
	ID       core.DatasetID `json:"id"`
	Name     string         `json:"name"`
	Format   Format         `json:"format"`
	Columns  []string       `json:"columns"`
	Rows     []Row          `json:"rows"`
	LoadedAt time.Time      `json:"loaded_at"`
}

// RowCount returns the number of rows
func (d *Dataset) RowCount() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// HasColumn reports whether name is one of the dataset's columns
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// NumericColumns returns, in column order, every column holding at least one number
func (d *Dataset) NumericColumns() []string {
	var numeric []string
	for _, col := range d.Columns {
		for _, row := range d.Rows {
			if row.Get(col).IsNumber() {
				numeric = append(numeric, col)
				break
			}
		}
	}
	return numeric
}

// DefaultAxes picks the initial chart axes: the first column as category and
// the second as value, falling back to the first when there is only one.
func (d *Dataset) DefaultAxes() (category, value string) {
	switch len(d.Columns) {
	case 0:
		return "", ""
	case 1:
		return d.Columns[0], d.Columns[0]
	default:
		return d.Columns[0], d.Columns[1]
	}
}

// Filter keeps rows where any cell contains term, case-insensitively
func (d *Dataset) Filter(term string) []Row {
	if term == "" {
		return d.Rows
	}
	needle := strings.ToLower(term)
	var matched []Row
	for _, row := range d.Rows {
		for _, col := range d.Columns {
			if strings.Contains(strings.ToLower(row.Get(col).String()), needle) {
				matched = append(matched, row)
				break
			}
		}
	}
	return matched
}

// DefaultPageSize is the number of rows shown per table page
const DefaultPageSize = 10

// Page is one window over a row slice
type Page struct {
	Rows       []Row `json:"rows"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalRows  int   `json:"total_rows"`
	TotalPages int   `json:"total_pages"`
}

// Paginate returns zero-based page of rows. Out-of-range pages are empty.
func Paginate(rows []Row, page, perPage int) Page {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if page < 0 {
		page = 0
	}
	total := len(rows)
	p := Page{
		Rows:       []Row{},
		Page:       page,
		PerPage:    perPage,
		TotalRows:  total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	start := page * perPage
	if start >= total {
		return p
	}
	end := start + perPage
	if end > total {
		end = total
	}
	p.Rows = rows[start:end]
	return p
}

// Summary describes a dataset without its rows
type Summary struct {
	ID             core.DatasetID `json:"id"`
	Name           string         `json:"name"`
	Format         Format         `json:"format"`
	Columns        []string       `json:"columns"`
	NumericColumns []string       `json:"numeric_columns"`
	RowCount       int            `json:"row_count"`
	LoadedAt       time.Time      `json:"loaded_at"`
}

// Summarize returns the dataset's metadata
func (d *Dataset) Summarize() Summary {
	return Summary{
		ID:             d.ID,
		Name:           d.Name,
		Format:         d.Format,
		Columns:        append([]string(nil), d.Columns...),
		NumericColumns: d.NumericColumns(),
		RowCount:       len(d.Rows),
		LoadedAt:       d.LoadedAt,
	}
}
