// Package replenishment derives reorder figures from a product's stock
// position and sales velocity.
package replenishment

import (
	"math"

	"tokpee/domain/inventory"
)

// HorizonDays is the coverage window a recommended order should fill
const HorizonDays = 30

// Compute calculates the replenishment metrics for a record. It has no failure
// modes; negative velocity is outside its contract.
func Compute(r inventory.Record) inventory.Metrics {
	m := inventory.Metrics{}

	// 1. Lead-time demand = round(velocity × lead time), halves rounded up
	m.LeadTimeDemand = int(math.Round(r.AvgDailySales * float64(r.LeadTimeDays)))

	// 2. Reorder point = lead-time demand + safety stock
	m.ReorderPoint = m.LeadTimeDemand + r.SafetyStock

	// 3. Days of stock left; no velocity means no stock-out horizon
	if r.AvgDailySales > 0 {
		days := clampDays(math.Floor(float64(r.OnHandStock) / r.AvgDailySales))
		m.DaysOfStockLeft = &days
	}

	// 4. Recommended order covers the horizon plus safety stock, never negative
	m.RecommendedOrderQty = math.Max(0, r.AvgDailySales*HorizonDays-float64(r.OnHandStock)+float64(r.SafetyStock))

	// 5. Status figures for the stock and coverage bars
	m.NeedsRestock = r.OnHandStock <= m.ReorderPoint
	m.StockLevelPct = 100
	if m.ReorderPoint > 0 {
		m.StockLevelPct = math.Min(100, float64(r.OnHandStock)/float64(m.ReorderPoint)*100)
	}
	m.CoveragePct = 100
	if m.DaysOfStockLeft != nil {
		m.CoveragePct = math.Min(100, float64(*m.DaysOfStockLeft)/HorizonDays*100)
	}

	return m
}

// clampDays converts a floored day count to int, saturating at math.MaxInt
// for velocities so small the quotient is not representable.
func clampDays(days float64) int {
	if days >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(days)
}
