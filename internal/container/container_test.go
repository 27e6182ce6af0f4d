package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tokpee/adapters/llm"
	"tokpee/internal/config"
	apperrors "tokpee/internal/errors"
)

func testConfig() *config.Config {
	return &config.Config{
		AI: config.AIConfig{
			InsightModel:   "flash",
			AssistantModel: "pro",
			Timeout:        time.Second,
			MaxConcurrent:  1,
		},
	}
}

func TestNewRequiresConfig(t *testing.T) {
	_, err := New(context.Background(), nil, zap.NewNop(), nil)
	assert.Error(t, err)
}

func TestNewWiresServicesWithDefaultCatalog(t *testing.T) {
	c, err := New(context.Background(), testConfig(), zap.NewNop(), nil)
	require.NoError(t, err)

	assert.Nil(t, c.Generator)
	assert.NotNil(t, c.Datasets)
	assert.NotNil(t, c.Inventory)
	assert.NotNil(t, c.AssistantChats)

	products, err := c.Catalog.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 4)
	assert.NoError(t, c.Shutdown(context.Background()))
}

func TestNewUsesInjectedGenerator(t *testing.T) {
	gen := &llm.MockTextGenerator{Response: "ok"}
	c, err := New(context.Background(), testConfig(), zap.NewNop(), gen)
	require.NoError(t, err)

	insight, err := c.Inventory.Insight(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "ok", insight.Text)
	assert.Len(t, gen.Requests(), 1)
}

func TestNewSeedsCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`products:
  - product_id: "A1"
    name: Tas Kanvas
    on_hand_stock: 8
    avg_daily_sales: 1.5
    lead_time_days: 4
    safety_stock: 3
`), 0o600))

	cfg := testConfig()
	cfg.Data.CatalogFile = path
	c, err := New(context.Background(), cfg, zap.NewNop(), nil)
	require.NoError(t, err)

	products, err := c.Catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Tas Kanvas", products[0].Name)
}

func TestNewRejectsInvalidSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products: [oops"), 0o600))

	cfg := testConfig()
	cfg.Data.CatalogFile = path
	_, err := New(context.Background(), cfg, zap.NewNop(), nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeConfigInvalid, apperrors.GetCode(err))
}
