package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"tokpee/domain/dataset"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseCommand(t *testing.T) {
	path := writeFile(t, "orders.csv", "category,revenue\nKaos,100\nHoodie,250\n")

	out, err := run(t, "parse", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Rows: 2")
	assert.Contains(t, out, "Numeric columns: revenue")
	assert.Contains(t, out, "Hoodie")

	out, err = run(t, "parse", path, "--json")
	require.NoError(t, err)
	var summary dataset.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 2, summary.RowCount)
}

func TestParseCommandRejectsUnknownFormat(t *testing.T) {
	_, err := run(t, "parse", writeFile(t, "orders.txt", "a\n1\n"))
	assert.Error(t, err)
}

func TestAggregateCommandDefaultsAxes(t *testing.T) {
	path := writeFile(t, "orders.json", `[{"category":"Kaos","revenue":100},{"category":"Kaos","revenue":"50"},{"category":"Topi","revenue":20}]`)

	out, err := run(t, "aggregate", path, "--json")
	require.NoError(t, err)
	var result dataset.AggregationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []dataset.Point{{Category: "Kaos", Value: 75}, {Category: "Topi", Value: 20}}, result.Series)
}

func TestProfileCommand(t *testing.T) {
	path := writeFile(t, "orders.csv", "product,qty\nA,1\nB,3\nC,\n")

	out, err := run(t, "profile", path)
	require.NoError(t, err)
	assert.Contains(t, out, "qty")
	assert.Contains(t, out, "2.00")
}

func TestReplenishCommand(t *testing.T) {
	out, err := run(t, "replenish", "--stock", "12", "--daily-sales", "4.5", "--lead-time", "3", "--safety-stock", "10", "--json")
	require.NoError(t, err)

	var results []productMetrics
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, 24, results[0].Metrics.ReorderPoint)
	assert.Equal(t, 133.0, results[0].Metrics.RecommendedOrderQty)

	out, err = run(t, "replenish")
	require.NoError(t, err)
	assert.Contains(t, out, "Kaos Polos Premium")
	assert.Contains(t, out, "YES")
}

func TestExportCommand(t *testing.T) {
	src := writeFile(t, "orders.csv", "category,revenue\nKaos,100\nHoodie,250\n")
	dst := filepath.Join(t.TempDir(), "orders.xlsx")

	_, err := run(t, "export", src, "--out", dst)
	require.NoError(t, err)

	f, err := excelize.OpenFile(dst)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("Data", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Hoodie", v)
}

func TestSampleCommandIsDeterministic(t *testing.T) {
	first, err := run(t, "sample", "--orders", "5", "--seed", "3")
	require.NoError(t, err)
	second, err := run(t, "sample", "--orders", "5", "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = run(t, "sample", "--format", "xml")
	assert.Error(t, err)
}
