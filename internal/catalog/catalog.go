// Package catalog keeps the seller's products in memory for the restock view.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"tokpee/domain/core"
	"tokpee/domain/inventory"
	apperrors "tokpee/internal/errors"
	"tokpee/ports"
)

var _ ports.InventoryRepository = (*Catalog)(nil)

// Catalog is a concurrency-safe product store that keeps insertion order
type Catalog struct {
	mu       sync.RWMutex
	order    []core.ProductID
	records  map[core.ProductID]inventory.Record
	validate *validator.Validate
	logger   *zap.Logger
}

// New creates a catalog holding seed. Every seed record must validate.
func New(logger *zap.Logger, seed []inventory.Record) (*Catalog, error) {
	v := validator.New()

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	c := &Catalog{
		records:  make(map[core.ProductID]inventory.Record, len(seed)),
		validate: v,
		logger:   logger.Named("catalog"),
	}
	for _, r := range seed {
		if _, err := c.Upsert(context.Background(), r); err != nil {
			return nil, apperrors.Wrapf(err, "seed product %q", r.ProductID)
		}
	}
	c.logger.Info("catalog ready", zap.Int("products", len(c.order)))
	return c, nil
}

// List returns every product in insertion order
func (c *Catalog) List(ctx context.Context) ([]inventory.Record, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]inventory.Record, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.records[id])
	}
	return out, nil
}

// Get returns the product with id
func (c *Catalog) Get(ctx context.Context, id core.ProductID) (inventory.Record, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.records[id]
	if !ok {
		return inventory.Record{}, apperrors.NotFound(fmt.Sprintf("product %s", id))
	}
	return r, nil
}

// Upsert validates record and stores it, replacing any product with the same
// ID in place.
func (c *Catalog) Upsert(ctx context.Context, record inventory.Record) (inventory.Record, error) {
	record.ProductID = core.ProductID(strings.TrimSpace(string(record.ProductID)))
	record.Name = strings.TrimSpace(record.Name)
	if err := c.validateRecord(record); err != nil {
		return inventory.Record{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.records[record.ProductID]; !exists {
		c.order = append(c.order, record.ProductID)
	}
	c.records[record.ProductID] = record
	return record, nil
}

// AdjustStock adds delta to a product's on-hand stock
func (c *Catalog) AdjustStock(ctx context.Context, id core.ProductID, delta int) (inventory.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.records[id]
	if !ok {
		return inventory.Record{}, apperrors.NotFound(fmt.Sprintf("product %s", id))
	}
	next := r.OnHandStock + delta
	if next < 0 {
		return inventory.Record{}, apperrors.InvalidInput(
			fmt.Sprintf("adjusting %s by %d would leave %d units", id, delta, next),
		)
	}
	r.OnHandStock = next
	c.records[id] = r

	c.logger.Debug("stock adjusted",
		zap.String("product_id", id.String()),
		zap.Int("delta", delta),
		zap.Int("on_hand", next))
	return r, nil
}

func (c *Catalog) validateRecord(r inventory.Record) error {
	err := c.validate.Struct(r)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.ValidationError("invalid product", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return apperrors.ValidationError(strings.Join(msgs, "; "), err)
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
