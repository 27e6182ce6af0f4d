package profiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokpee/domain/dataset"
)

func numberRows(column string, values ...float64) []dataset.Row {
	rows := make([]dataset.Row, 0, len(values))
	for _, v := range values {
		rows = append(rows, dataset.Row{column: dataset.Number(v)})
	}
	return rows
}

func TestProfileColumnNumeric(t *testing.T) {
	ds := &dataset.Dataset{
		Columns: []string{"qty"},
		Rows:    numberRows("qty", 2, 4, 4, 4, 5, 5, 7, 9),
	}

	p := ProfileColumn(ds, "qty")

	assert.Equal(t, 8, p.Count)
	assert.Equal(t, 0, p.Blank)
	assert.Equal(t, 5, p.Distinct)
	assert.Equal(t, 8, p.NumericCount)
	require.NotNil(t, p.Numeric)

	n := p.Numeric
	assert.InDelta(t, 5.0, n.Mean, 1e-9)
	assert.InDelta(t, 2.138, n.StdDev, 0.001)
	assert.Equal(t, 2.0, n.Min)
	assert.Equal(t, 9.0, n.Max)
	assert.Equal(t, 4.5, n.Median)
	assert.LessOrEqual(t, n.Q25, n.Median)
	assert.GreaterOrEqual(t, n.Q75, n.Median)
	assert.InDelta(t, 1.79, n.CIHigh-n.Mean, 0.01)
	assert.InDelta(t, n.Mean-n.CILow, n.CIHigh-n.Mean, 1e-9)
}

func TestProfileColumnMixedKinds(t *testing.T) {
	ds := &dataset.Dataset{
		Columns: []string{"price"},
		Rows: []dataset.Row{
			{"price": dataset.Number(10)},
			{"price": dataset.Text("n/a")},
			{"price": dataset.Text("")},
			{},
			{"price": dataset.Number(10)},
		},
	}

	p := ProfileColumn(ds, "price")

	assert.Equal(t, 5, p.Count)
	assert.Equal(t, 2, p.Blank)
	assert.Equal(t, 2, p.Distinct)
	assert.Equal(t, 2, p.NumericCount)
	require.NotNil(t, p.Numeric)
	assert.Equal(t, 0.0, p.Numeric.StdDev)
	assert.Equal(t, 10.0, p.Numeric.CILow)
	assert.Equal(t, 10.0, p.Numeric.CIHigh)
}

func TestProfileColumnTextOnly(t *testing.T) {
	ds := &dataset.Dataset{
		Columns: []string{"product"},
		Rows: []dataset.Row{
			{"product": dataset.Text("Kaos")},
			{"product": dataset.Text("Hoodie")},
		},
	}

	p := ProfileColumn(ds, "product")
	assert.Equal(t, 0, p.NumericCount)
	assert.Nil(t, p.Numeric)
}

func TestProfileColumnSingleValue(t *testing.T) {
	ds := &dataset.Dataset{Columns: []string{"x"}, Rows: numberRows("x", 3)}

	p := ProfileColumn(ds, "x")
	require.NotNil(t, p.Numeric)
	assert.Equal(t, 0.0, p.Numeric.StdDev)
	assert.Equal(t, 3.0, p.Numeric.CILow)
	assert.Equal(t, 3.0, p.Numeric.CIHigh)
}

func TestProfileColumnOutliers(t *testing.T) {
	ds := &dataset.Dataset{Columns: []string{"x"}, Rows: numberRows("x", 1, 2, 3, 4, 5, 100)}

	p := ProfileColumn(ds, "x")
	require.NotNil(t, p.Numeric)
	assert.Equal(t, 1, p.Numeric.Outliers)
	assert.Greater(t, p.Numeric.Skewness, 0.0)
}

func TestProfileDatasetFollowsColumnOrder(t *testing.T) {
	ds := &dataset.Dataset{
		Columns: []string{"b", "a"},
		Rows:    []dataset.Row{{"a": dataset.Number(1), "b": dataset.Text("x")}},
	}

	profiles := ProfileDataset(ds)
	require.Len(t, profiles, 2)
	assert.Equal(t, "b", profiles[0].Column)
	assert.Equal(t, "a", profiles[1].Column)
	assert.Nil(t, ProfileDataset(nil))
}
