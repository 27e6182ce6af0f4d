package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tokpee/adapters/excel"
	"tokpee/adapters/tabular"
	"tokpee/domain/dataset"
	"tokpee/internal/aggregation"
	"tokpee/internal/profiling"
)

func loadDataset(path string) (*dataset.Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return tabular.ParseFile(path, string(content))
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newParseCmd() *cobra.Command {
	var asJSON bool
	var limit int

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a CSV or JSON file and show its columns and first rows",
		Long: `Parse a sales export and print the detected columns, numeric columns and
the first rows with their inferred values.

Example: tokpee-cli parse orders.csv --limit 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, ds.Summarize())
			}

			fmt.Fprintf(out, "Dataset: %s (%s)\n", ds.Name, ds.Format)
			fmt.Fprintf(out, "Rows: %d\n", ds.RowCount())
			fmt.Fprintf(out, "Columns: %s\n", strings.Join(ds.Columns, ", "))
			fmt.Fprintf(out, "Numeric columns: %s\n\n", strings.Join(ds.NumericColumns(), ", "))

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, strings.Join(ds.Columns, "\t"))
			for i, row := range ds.Rows {
				if i >= limit {
					break
				}
				cells := make([]string, len(ds.Columns))
				for j, col := range ds.Columns {
					cells[j] = row.Get(col).String()
				}
				fmt.Fprintln(tw, strings.Join(cells, "\t"))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the dataset summary as JSON")
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of rows to show")
	return cmd
}

func newAggregateCmd() *cobra.Command {
	var category, value string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "aggregate [file]",
		Short: "Average a value column per category, as the dashboard chart does",
		Long: `Group rows by the category column and average the value column over the
first 15 categories. Omitted columns default to the first and second columns of the file.

Example: tokpee-cli aggregate orders.csv --category category --value revenue`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(args[0])
			if err != nil {
				return err
			}
			defCategory, defValue := ds.DefaultAxes()
			if category == "" {
				category = defCategory
			}
			if value == "" {
				value = defValue
			}

			result := aggregation.Aggregate(ds, category, value)
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, result)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "%s\t%s\n", result.CategoryColumn, result.ValueColumn)
			for _, p := range result.Series {
				fmt.Fprintf(tw, "%s\t%s\n", p.Category, dataset.FormatNumber(p.Value))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Category column (default: first column)")
	cmd.Flags().StringVar(&value, "value", "", "Value column (default: second column)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the series as JSON")
	return cmd
}

func newProfileCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "profile [file]",
		Short: "Summarize every column of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(args[0])
			if err != nil {
				return err
			}
			profiles := profiling.ProfileDataset(ds)
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, profiles)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "column\tcount\tblank\tdistinct\tnumeric\tmean\tmedian\tmin\tmax")
			for _, p := range profiles {
				if p.Numeric == nil {
					fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t-\t-\t-\t-\n",
						p.Column, p.Count, p.Blank, p.Distinct, p.NumericCount)
					continue
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.2f\t%.2f\t%.2f\t%.2f\n",
					p.Column, p.Count, p.Blank, p.Distinct, p.NumericCount,
					p.Numeric.Mean, p.Numeric.Median, p.Numeric.Min, p.Numeric.Max)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the profiles as JSON")
	return cmd
}

func newExportCmd() *cobra.Command {
	var out, category, value string
	var chart bool

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Convert a CSV or JSON file to an xlsx workbook",
		Long: `Write the parsed rows to an xlsx workbook, or with --chart the aggregated
series and a column chart.

Example: tokpee-cli export orders.json --out orders.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(args[0])
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			defer f.Close()

			if chart {
				defCategory, defValue := ds.DefaultAxes()
				if category == "" {
					category = defCategory
				}
				if value == "" {
					value = defValue
				}
				err = excel.ExportAggregation(f, aggregation.Aggregate(ds, category, value))
			} else {
				err = excel.ExportDataset(f, ds)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return f.Close()
		},
	}

	cmd.Flags().StringVar(&out, "out", "export.xlsx", "Output workbook path")
	cmd.Flags().BoolVar(&chart, "chart", false, "Export the aggregated series with a chart")
	cmd.Flags().StringVar(&category, "category", "", "Chart category column")
	cmd.Flags().StringVar(&value, "value", "", "Chart value column")
	return cmd
}
