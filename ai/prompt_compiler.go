package ai

import (
	"fmt"
	"strings"

	"tokpee/domain/dataset"
	"tokpee/domain/inventory"
)

// CompileRestockFacts turns computed replenishment metrics into prompt
// fragments that anchor the model to the exact figures.
func CompileRestockFacts(r inventory.Record, m inventory.Metrics) []string {
	var out []string

	out = append(out, fmt.Sprintf("Permintaan selama lead time: %d unit.", m.LeadTimeDemand))
	out = append(out, fmt.Sprintf("Titik pemesanan ulang (ROP): %d unit.", m.ReorderPoint))

	if m.DaysOfStockLeft != nil {
		out = append(out, fmt.Sprintf("Stok diperkirakan habis dalam %d hari.", *m.DaysOfStockLeft))
		if *m.DaysOfStockLeft < r.LeadTimeDays {
			out = append(out, "PERINGATAN: stok habis sebelum kiriman supplier tiba.")
		}
	} else {
		out = append(out, "Produk tidak terjual; tidak ada perkiraan stok habis.")
	}

	if m.RecommendedOrderQty > 0 {
		out = append(out, fmt.Sprintf("Rekomendasi pesanan: %s unit untuk 30 hari.", dataset.FormatNumber(m.RecommendedOrderQty)))
	}
	if m.NeedsRestock {
		out = append(out, "STATUS: stok sudah di bawah titik pemesanan ulang.")
	}

	// Deduplicate while preserving order
	seen := make(map[string]struct{}, len(out))
	dedup := out[:0]
	for _, s := range out {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		dedup = append(dedup, s)
	}
	return dedup
}
