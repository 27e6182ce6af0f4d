// Package testkit generates deterministic marketplace sales fixtures.
package testkit

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// SalesGeneratorConfig configures the sales data generator
type SalesGeneratorConfig struct {
	OrderCount int       `json:"order_count"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Seed       int64     `json:"seed"`
	// DirtyRate is the share of orders whose quantity is exported as "n/a"
	DirtyRate float64 `json:"dirty_rate"`
}

// DefaultSalesConfig returns sensible defaults for sales data generation
func DefaultSalesConfig() SalesGeneratorConfig {
	return SalesGeneratorConfig{
		OrderCount: 200,
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
		Seed:       42,
		DirtyRate:  0,
	}
}

// SalesColumns is the header of every generated file, in order
var SalesColumns = []string{"order_id", "date", "category", "product", "quantity", "unit_price", "revenue"}

// Order is one generated marketplace order line
type Order struct {
	OrderID   string
	Date      time.Time
	Category  string
	Product   string
	Quantity  int
	UnitPrice float64
	Revenue   float64
	// Dirty orders export their quantity as unparseable text
	Dirty bool
}

type product struct {
	name     string
	category string
	minPrice float64
	maxPrice float64
	// popularity weights how often the product is ordered
	popularity float64
}

var products = []product{
	{"Kaos Polos Premium", "Fashion", 45000, 85000, 5},
	{"Hoodie Minimalist", "Fashion", 150000, 250000, 3},
	{"Celana Chino Slim", "Fashion", 120000, 200000, 3},
	{"Sepatu Sneakers Pro", "Fashion", 350000, 600000, 1},
	{"TWS Earbuds", "Elektronik", 180000, 450000, 2},
	{"Power Bank 10000mAh", "Elektronik", 120000, 250000, 2},
	{"Serum Vitamin C", "Kecantikan", 60000, 140000, 4},
	{"Sunscreen SPF 50", "Kecantikan", 50000, 110000, 4},
	{"Botol Minum 1L", "Rumah Tangga", 35000, 90000, 3},
	{"Matras Yoga", "Olahraga", 90000, 220000, 1},
}

// SalesGenerator generates realistic marketplace order lines
type SalesGenerator struct {
	config SalesGeneratorConfig
}

// NewSalesGenerator creates a new sales generator
func NewSalesGenerator(config SalesGeneratorConfig) *SalesGenerator {
	return &SalesGenerator{config: config}
}

// GenerateOrders produces the configured number of orders. The same config
// always yields the same orders.
func (g *SalesGenerator) GenerateOrders() []Order {
	rng := rand.New(rand.NewSource(g.config.Seed))

	totalWeight := 0.0
	for _, p := range products {
		totalWeight += p.popularity
	}

	orders := make([]Order, 0, g.config.OrderCount)
	for i := 0; i < g.config.OrderCount; i++ {
		p := pickProduct(rng, totalWeight)

		// Prices land on 500 rupiah steps
		price := p.minPrice + rng.Float64()*(p.maxPrice-p.minPrice)
		price = math.Round(price/500) * 500

		qty := 1 + int(math.Abs(rng.NormFloat64())*2)
		if qty > 12 {
			qty = 12
		}

		orders = append(orders, Order{
			OrderID:   fmt.Sprintf("INV-%05d", i+1),
			Date:      randomTimeInRange(rng, g.config.StartDate, g.config.EndDate),
			Category:  p.category,
			Product:   p.name,
			Quantity:  qty,
			UnitPrice: price,
			Revenue:   price * float64(qty),
			Dirty:     rng.Float64() < g.config.DirtyRate,
		})
	}
	return orders
}

// WriteCSV writes orders as comma-delimited text with a header line
func WriteCSV(w io.Writer, orders []Order) error {
	var b strings.Builder
	b.WriteString(strings.Join(SalesColumns, ","))
	b.WriteByte('\n')
	for _, o := range orders {
		qty := strconv.Itoa(o.Quantity)
		if o.Dirty {
			qty = "n/a"
		}
		fields := []string{
			o.OrderID,
			o.Date.Format("2006-01-02"),
			o.Category,
			o.Product,
			qty,
			strconv.FormatFloat(o.UnitPrice, 'f', -1, 64),
			strconv.FormatFloat(o.Revenue, 'f', -1, 64),
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// orderRecord fixes the JSON key order to SalesColumns
type orderRecord struct {
	OrderID   string      `json:"order_id"`
	Date      string      `json:"date"`
	Category  string      `json:"category"`
	Product   string      `json:"product"`
	Quantity  interface{} `json:"quantity"`
	UnitPrice float64     `json:"unit_price"`
	Revenue   float64     `json:"revenue"`
}

// MarshalJSON renders orders as an array of flat records
func MarshalJSON(orders []Order) ([]byte, error) {
	records := make([]orderRecord, 0, len(orders))
	for _, o := range orders {
		var qty interface{} = o.Quantity
		if o.Dirty {
			qty = "n/a"
		}
		records = append(records, orderRecord{
			OrderID:   o.OrderID,
			Date:      o.Date.Format("2006-01-02"),
			Category:  o.Category,
			Product:   o.Product,
			Quantity:  qty,
			UnitPrice: o.UnitPrice,
			Revenue:   o.Revenue,
		})
	}
	return json.MarshalIndent(records, "", "  ")
}

func pickProduct(rng *rand.Rand, totalWeight float64) product {
	r := rng.Float64() * totalWeight
	for _, p := range products {
		if r < p.popularity {
			return p
		}
		r -= p.popularity
	}
	return products[len(products)-1]
}

func randomTimeInRange(rng *rand.Rand, start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	delta := end.Sub(start)
	return start.Add(time.Duration(rng.Int63n(int64(delta))))
}
