// Package cartstore persists the cart collection under the fixed
// "marketflow_cart" key, either as a JSON file on disk or as a redis value.
package cartstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"marketflow/internal/domain"
)

// Key is the fixed storage key for the persisted cart.
const Key = "marketflow_cart"

// FileStore keeps the serialized cart in a single JSON file. It is the
// durable local storage used when no redis is configured.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted collection. A missing file means an empty cart;
// unreadable or malformed content is an error the caller recovers from.
func (s *FileStore) Load(_ context.Context) ([]domain.LineItem, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart file: %w", err)
	}

	var items []domain.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode cart file: %w", err)
	}
	return items, nil
}

// Save writes the whole collection back. Best effort; last writer wins.
func (s *FileStore) Save(_ context.Context, items []domain.LineItem) error {
	if items == nil {
		items = []domain.LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write cart file: %w", err)
	}
	return nil
}
