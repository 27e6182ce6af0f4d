// Package profiling summarizes dataset columns for the data view.
package profiling

import (
	"tokpee/domain/dataset"
)

// ColumnProfile describes one column of a dataset
type ColumnProfile struct {
	Column       string          `json:"column"`
	Count        int             `json:"count"`
	Blank        int             `json:"blank"`
	Distinct     int             `json:"distinct"`
	NumericCount int             `json:"numeric_count"`
	Numeric      *NumericSummary `json:"numeric,omitempty"`
}

// NumericSummary holds the statistics of a column's numeric cells
type NumericSummary struct {
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
	Skewness float64 `json:"skewness"`
	Outliers int     `json:"outliers"`
	CILow    float64 `json:"ci_low"`
	CIHigh   float64 `json:"ci_high"`
}

// ProfileColumn profiles column across every row of ds. Missing cells and
// empty text count as blank; only Number cells feed the numeric summary.
func ProfileColumn(ds *dataset.Dataset, column string) ColumnProfile {
	profile := ColumnProfile{Column: column}
	if ds == nil {
		return profile
	}

	distinct := make(map[string]struct{})
	var numbers []float64
	for _, row := range ds.Rows {
		profile.Count++
		v := row.Get(column)
		s := v.String()
		if v.IsMissing() || s == "" {
			profile.Blank++
			continue
		}
		distinct[s] = struct{}{}
		if n, ok := v.Float(); ok {
			numbers = append(numbers, n)
		}
	}

	profile.Distinct = len(distinct)
	profile.NumericCount = len(numbers)
	if len(numbers) > 0 {
		profile.Numeric = summarize(numbers)
	}
	return profile
}

// ProfileDataset profiles every column in column order
func ProfileDataset(ds *dataset.Dataset) []ColumnProfile {
	if ds == nil {
		return nil
	}
	profiles := make([]ColumnProfile, 0, len(ds.Columns))
	for _, col := range ds.Columns {
		profiles = append(profiles, ProfileColumn(ds, col))
	}
	return profiles
}
