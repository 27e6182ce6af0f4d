package testkit

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func smallConfig() SalesGeneratorConfig {
	return SalesGeneratorConfig{
		OrderCount: 25,
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
		Seed:       7,
	}
}

func TestSalesGenerator_Deterministic(t *testing.T) {
	a := NewSalesGenerator(smallConfig()).GenerateOrders()
	b := NewSalesGenerator(smallConfig()).GenerateOrders()

	if len(a) != 25 {
		t.Fatalf("expected 25 orders, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("order %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSalesGenerator_OrdersAreConsistent(t *testing.T) {
	cfg := smallConfig()
	for i, o := range NewSalesGenerator(cfg).GenerateOrders() {
		if o.Quantity < 1 || o.Quantity > 12 {
			t.Errorf("order %d has quantity %d", i, o.Quantity)
		}
		if o.Revenue != o.UnitPrice*float64(o.Quantity) {
			t.Errorf("order %d revenue %v != %v x %d", i, o.Revenue, o.UnitPrice, o.Quantity)
		}
		if o.Date.Before(cfg.StartDate) || o.Date.After(cfg.EndDate) {
			t.Errorf("order %d date %v outside range", i, o.Date)
		}
		if strings.Contains(o.Product, ",") || strings.Contains(o.Category, ",") {
			t.Errorf("order %d has a comma in a text field", i)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	cfg := smallConfig()
	cfg.DirtyRate = 1
	orders := NewSalesGenerator(cfg).GenerateOrders()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, orders); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != len(orders)+1 {
		t.Fatalf("expected %d lines, got %d", len(orders)+1, len(lines))
	}
	if lines[0] != strings.Join(SalesColumns, ",") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if fields := strings.Split(lines[1], ","); fields[4] != "n/a" {
		t.Errorf("expected dirty quantity, got %q", fields[4])
	}
}

func TestMarshalJSON(t *testing.T) {
	orders := NewSalesGenerator(smallConfig()).GenerateOrders()

	data, err := MarshalJSON(orders)
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != len(orders) {
		t.Fatalf("expected %d records, got %d", len(orders), len(decoded))
	}
	if decoded[0]["order_id"] != "INV-00001" {
		t.Errorf("unexpected first order id %v", decoded[0]["order_id"])
	}
	if _, ok := decoded[0]["quantity"].(float64); !ok {
		t.Errorf("expected numeric quantity, got %T", decoded[0]["quantity"])
	}
}
