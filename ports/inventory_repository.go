package ports

import (
	"context"

	"tokpee/domain/core"
	"tokpee/domain/inventory"
)

// InventoryRepository holds the product catalog the restock view reads from
type InventoryRepository interface {
	List(ctx context.Context) ([]inventory.Record, error)
	Get(ctx context.Context, id core.ProductID) (inventory.Record, error)
	Upsert(ctx context.Context, record inventory.Record) (inventory.Record, error)
	// AdjustStock adds delta to the on-hand stock, rejecting a negative result
	AdjustStock(ctx context.Context, id core.ProductID, delta int) (inventory.Record, error)
}
