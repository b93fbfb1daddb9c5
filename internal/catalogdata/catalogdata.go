// Package catalogdata embeds the seed catalog used by the in-memory
// repositories and the postgres seeder.
package catalogdata

import (
	"embed"
	"encoding/json"
	"fmt"

	"marketflow/internal/domain"
)

//go:embed products.json categories.json
var dataFS embed.FS

// Products decodes the embedded product records.
func Products() ([]domain.Product, error) {
	data, err := dataFS.ReadFile("products.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded products: %w", err)
	}
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode embedded products: %w", err)
	}
	return products, nil
}

// Categories decodes the embedded category records.
func Categories() ([]domain.Category, error) {
	data, err := dataFS.ReadFile("categories.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded categories: %w", err)
	}
	var categories []domain.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("decode embedded categories: %w", err)
	}
	return categories, nil
}
