package tabular

import (
	"fmt"

	"github.com/tidwall/gjson"

	"tokpee/domain/dataset"
	apperrors "tokpee/internal/errors"
)

// parseRecords reads a JSON array of flat objects, or one flat object.
// The first record's keys, in document order, define the columns; keys that
// only later records carry are dropped.
func parseRecords(content string) ([]string, []dataset.Row, error) {
	if !gjson.Valid(content) {
		return nil, nil, apperrors.MalformedContent("content is not valid JSON", dataset.ErrMalformedContent)
	}

	root := gjson.Parse(content)
	var records []gjson.Result
	switch {
	case root.IsArray():
		records = root.Array()
	case root.IsObject():
		records = []gjson.Result{root}
	default:
		return nil, nil, apperrors.MalformedContent(
			"expected an array of records or a single record",
			dataset.ErrMalformedContent,
		)
	}

	for i, rec := range records {
		if !rec.IsObject() {
			return nil, nil, apperrors.MalformedContent(
				fmt.Sprintf("record %d is not an object", i),
				dataset.ErrMalformedContent,
			)
		}
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	var columns []string
	known := make(map[string]bool)
	records[0].ForEach(func(key, _ gjson.Result) bool {
		name := key.String()
		if !known[name] {
			known[name] = true
			columns = append(columns, name)
		}
		return true
	})

	rows := make([]dataset.Row, 0, len(records))
	for _, rec := range records {
		row := make(dataset.Row, len(columns))
		rec.ForEach(func(key, value gjson.Result) bool {
			if name := key.String(); known[name] {
				row[name] = recordValue(value)
			}
			return true
		})
		rows = append(rows, row)
	}
	return columns, rows, nil
}

// recordValue keeps the scalar kind the JSON carried. Nested arrays and
// objects are kept as their raw JSON text.
func recordValue(v gjson.Result) dataset.Value {
	switch v.Type {
	case gjson.Null:
		return dataset.Missing()
	case gjson.True:
		return dataset.Bool(true)
	case gjson.False:
		return dataset.Bool(false)
	case gjson.Number:
		return dataset.Number(v.Num)
	case gjson.String:
		return dataset.Text(v.Str)
	default:
		return dataset.Text(v.Raw)
	}
}
