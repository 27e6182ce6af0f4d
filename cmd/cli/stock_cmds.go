package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tokpee/domain/inventory"
	"tokpee/internal/catalog"
	"tokpee/internal/replenishment"
	"tokpee/internal/testkit"
)

type productMetrics struct {
	Product inventory.Record  `json:"product"`
	Metrics inventory.Metrics `json:"metrics"`
}

func newReplenishCmd() *cobra.Command {
	var catalogFile string
	var asJSON bool
	var single inventory.Record

	cmd := &cobra.Command{
		Use:   "replenish",
		Short: "Compute reorder points and order quantities",
		Long: `Compute replenishment figures for every product in a catalog seed file
(or the sample catalog), or for one product described by flags.

Examples:
  tokpee-cli replenish --catalog catalog.yaml
  tokpee-cli replenish --stock 12 --daily-sales 4.5 --lead-time 3 --safety-stock 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []inventory.Record
			switch {
			case cmd.Flags().Changed("stock") || cmd.Flags().Changed("daily-sales"):
				records = []inventory.Record{single}
			case catalogFile != "":
				var err error
				if records, err = catalog.LoadSeedFile(catalogFile); err != nil {
					return err
				}
			default:
				records = catalog.DefaultRecords()
			}

			results := make([]productMetrics, 0, len(records))
			for _, r := range records {
				results = append(results, productMetrics{Product: r, Metrics: replenishment.Compute(r)})
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, results)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "product\tstock\tltd\trop\tdays_left\torder_qty\trestock")
			for _, r := range results {
				daysLeft := "-"
				if r.Metrics.HasStockOutHorizon() {
					daysLeft = strconv.Itoa(*r.Metrics.DaysOfStockLeft)
				}
				restock := "no"
				if r.Metrics.NeedsRestock {
					restock = "YES"
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%.0f\t%s\n",
					r.Product.Name, r.Product.OnHandStock,
					r.Metrics.LeadTimeDemand, r.Metrics.ReorderPoint,
					daysLeft, r.Metrics.RecommendedOrderQty, restock)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&catalogFile, "catalog", "", "Catalog seed YAML file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the figures as JSON")
	cmd.Flags().StringVar(&single.Name, "name", "product", "Product name for a single computation")
	cmd.Flags().IntVar(&single.OnHandStock, "stock", 0, "On-hand stock")
	cmd.Flags().Float64Var(&single.AvgDailySales, "daily-sales", 0, "Average units sold per day")
	cmd.Flags().IntVar(&single.LeadTimeDays, "lead-time", 0, "Supplier lead time in days")
	cmd.Flags().IntVar(&single.SafetyStock, "safety-stock", 0, "Safety stock units")
	return cmd
}

func newSampleCmd() *cobra.Command {
	var orders int
	var seed int64
	var format string
	var dirtyRate float64
	var out string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate a deterministic synthetic sales export",
		Long: `Generate seeded order rows as CSV or JSON, for trying the dashboard
without a real marketplace export.

Example: tokpee-cli sample --orders 500 --seed 7 --format json --out orders.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := testkit.DefaultSalesConfig()
			cfg.OrderCount = orders
			cfg.Seed = seed
			cfg.DirtyRate = dirtyRate
			generated := testkit.NewSalesGenerator(cfg).GenerateOrders()

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			switch format {
			case "csv":
				return testkit.WriteCSV(w, generated)
			case "json":
				data, err := testkit.MarshalJSON(generated)
				if err != nil {
					return err
				}
				_, err = w.Write(append(data, '\n'))
				return err
			default:
				return fmt.Errorf("unknown format %q (use csv or json)", format)
			}
		},
	}

	cmd.Flags().IntVar(&orders, "orders", 200, "Number of orders")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed")
	cmd.Flags().StringVar(&format, "format", "csv", "Output format: csv|json")
	cmd.Flags().Float64Var(&dirtyRate, "dirty-rate", 0, "Fraction of rows with a non-numeric quantity")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default: stdout)")
	return cmd
}
