package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"tokpee/domain/inventory"
	apperrors "tokpee/internal/errors"
)

// seedFile is the layout of a catalog seed YAML file
type seedFile struct {
	Products []inventory.Record `yaml:"products"`
}

// LoadSeedFile reads products from a YAML seed file
func LoadSeedFile(path string) ([]inventory.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrapf(err, "read catalog seed %s", path)
	}
	return ParseSeed(data)
}

// ParseSeed decodes products from YAML seed content
func ParseSeed(data []byte) ([]inventory.Record, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, apperrors.WithCode(apperrors.CodeConfigInvalid, err)
	}
	return f.Products, nil
}

// DefaultRecords is the sample catalog used when no seed file is configured
func DefaultRecords() []inventory.Record {
	return []inventory.Record{
		{ProductID: "1", Name: "Kaos Polos Premium", OnHandStock: 12, AvgDailySales: 4.5, LeadTimeDays: 3, SafetyStock: 10},
		{ProductID: "2", Name: "Hoodie Minimalist", OnHandStock: 45, AvgDailySales: 2.1, LeadTimeDays: 5, SafetyStock: 15},
		{ProductID: "3", Name: "Celana Chino Slim", OnHandStock: 22, AvgDailySales: 3.2, LeadTimeDays: 4, SafetyStock: 12},
		{ProductID: "4", Name: "Sepatu Sneakers Pro", OnHandStock: 2, AvgDailySales: 0.8, LeadTimeDays: 7, SafetyStock: 5},
	}
}
