package tabular

import (
	"io"
	"strings"

	"tokpee/adapters/coercer"
	"tokpee/domain/dataset"
)

const byteOrderMark = "\ufeff"

// parseDelimited reads a header line and comma-separated data lines.
// Quoting is not supported: every comma separates fields.
func parseDelimited(content string) ([]string, []dataset.Row) {
	content = strings.TrimPrefix(content, byteOrderMark)
	lines := strings.Split(content, "\n")

	header := strings.Split(lines[0], ",")
	positions := make([]string, len(header))
	columns := make([]string, 0, len(header))
	seen := make(map[string]bool, len(header))
	for i, token := range header {
		name := strings.TrimSpace(token)
		positions[i] = name
		// A repeated header name keeps its first position in the column list;
		// its later field overwrites the earlier one in each row.
		if !seen[name] {
			seen[name] = true
			columns = append(columns, name)
		}
	}

	var rows []dataset.Row
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ",")
		row := make(dataset.Row, len(columns))
		for i, name := range positions {
			if i >= len(fields) {
				break
			}
			row[name] = coercer.Infer(fields[i])
		}
		rows = append(rows, row)
	}
	return columns, rows
}

// WriteDelimited serializes ds in the same comma-delimited layout parseDelimited
// reads. Values containing commas cannot round-trip. Trailing missing cells are
// omitted so they reparse as missing; a missing cell before a present one is
// written empty and reparses as empty text. Rows that would render as a blank
// line are not written, since the parser skips them; their count is returned.
func WriteDelimited(w io.Writer, ds *dataset.Dataset) (skipped int, err error) {
	if _, err := io.WriteString(w, strings.Join(ds.Columns, ",")+"\n"); err != nil {
		return 0, err
	}
	fields := make([]string, len(ds.Columns))
	for _, row := range ds.Rows {
		last := -1
		for i, col := range ds.Columns {
			v := row.Get(col)
			fields[i] = v.String()
			if !v.IsMissing() {
				last = i
			}
		}
		line := strings.Join(fields[:last+1], ",")
		if strings.TrimSpace(line) == "" {
			skipped++
			continue
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return skipped, err
		}
	}
	return skipped, nil
}
