// Package aggregation groups dataset rows by a category column and averages a
// value column per group for charting.
package aggregation

import (
	"github.com/montanaflynn/stats"

	"tokpee/adapters/coercer"
	"tokpee/domain/dataset"
)

// MaxSeriesLength caps the number of groups a chart receives. Groups past it
// are dropped without error.
const MaxSeriesLength = 15

// Decimals is the precision of every emitted average
const Decimals = 2

type group struct {
	key   string
	count int
	sum   float64
}

// Aggregate averages valueColumn per distinct categoryColumn string, in the
// order categories first appear. Unknown columns read as missing, and values
// that are not numeric count as zero while still counting toward the mean.
func Aggregate(ds *dataset.Dataset, categoryColumn, valueColumn string) dataset.AggregationResult {
	result := dataset.AggregationResult{
		CategoryColumn: categoryColumn,
		ValueColumn:    valueColumn,
		Series:         []dataset.Point{},
	}
	if ds == nil || len(ds.Rows) == 0 {
		return result
	}

	var groups []*group
	index := make(map[string]*group)
	for _, row := range ds.Rows {
		key := row.Get(categoryColumn).String()
		g, ok := index[key]
		if !ok {
			g = &group{key: key}
			index[key] = g
			groups = append(groups, g)
		}
		g.count++
		g.sum += coercer.ToNumber(row.Get(valueColumn))
	}

	if len(groups) > MaxSeriesLength {
		groups = groups[:MaxSeriesLength]
	}
	for _, g := range groups {
		result.Series = append(result.Series, dataset.Point{
			Category: g.key,
			Value:    round(g.sum / float64(g.count)),
		})
	}
	return result
}

// round never sees NaN since every group has at least one row and ToNumber
// only yields finite values.
func round(x float64) float64 {
	rounded, err := stats.Round(x, Decimals)
	if err != nil {
		return 0
	}
	return rounded
}
