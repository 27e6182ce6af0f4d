package inventory

import "tokpee/domain/core"

// Record is one product's stock position and sales velocity
type Record struct {
	ProductID     core.ProductID `json:"product_id" yaml:"product_id" validate:"required"`
	Name          string         `json:"name" yaml:"name" validate:"required"`
	OnHandStock   int            `json:"on_hand_stock" yaml:"on_hand_stock" validate:"gte=0"`
	AvgDailySales float64        `json:"avg_daily_sales" yaml:"avg_daily_sales" validate:"gte=0"`
	LeadTimeDays  int            `json:"lead_time_days" yaml:"lead_time_days" validate:"gte=0"`
	SafetyStock   int            `json:"safety_stock" yaml:"safety_stock" validate:"gte=0"`
}

// Metrics are the replenishment figures derived from a Record
type Metrics struct {
	LeadTimeDemand int `json:"lead_time_demand"`
	ReorderPoint   int `json:"reorder_point"`
	// DaysOfStockLeft is nil when the product does not sell, so it never runs out.
	DaysOfStockLeft     *int    `json:"days_of_stock_left"`
	RecommendedOrderQty float64 `json:"recommended_order_qty"`

	NeedsRestock  bool    `json:"needs_restock"`
	StockLevelPct float64 `json:"stock_level_pct"`
	CoveragePct   float64 `json:"coverage_pct"`
}

// HasStockOutHorizon reports whether the stock will run out at the current velocity
func (m Metrics) HasStockOutHorizon() bool {
	return m.DaysOfStockLeft != nil
}
