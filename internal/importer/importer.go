// Package importer loads catalog records from a JSON export into the product
// repository.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"marketflow/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// JSONImporter reads a JSON array of product records and upserts them.
type JSONImporter struct {
	decoder     *json.Decoder
	productRepo ProductWriter
}

func NewJSONImporter(r io.Reader, repo ProductWriter) *JSONImporter {
	return &JSONImporter{
		decoder:     json.NewDecoder(r),
		productRepo: repo,
	}
}

// Run streams the array element by element so large exports never load whole
// into memory. Records missing an id or title are rejected with their
// position in the file.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	if err := i.expectDelim('['); err != nil {
		return 0, err
	}

	imported := 0
	for i.decoder.More() {
		var p domain.Product
		if err := i.decoder.Decode(&p); err != nil {
			return imported, fmt.Errorf("decode product %d: %w", imported+1, err)
		}
		if err := validate(p); err != nil {
			return imported, fmt.Errorf("product %d: %w", imported+1, err)
		}
		if _, err := i.productRepo.Upsert(ctx, p); err != nil {
			return imported, fmt.Errorf("upsert product %d (id=%d): %w", imported+1, p.ID, err)
		}
		imported++
	}

	if err := i.expectDelim(']'); err != nil {
		return imported, err
	}
	return imported, nil
}

func (i *JSONImporter) expectDelim(want json.Delim) error {
	tok, err := i.decoder.Token()
	if err != nil {
		return fmt.Errorf("read %q: %w", want, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func validate(p domain.Product) error {
	if p.ID <= 0 {
		return errors.New("id must be a positive integer")
	}
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("title required")
	}
	if p.Price.IsNegative() {
		return errors.New("price must not be negative")
	}
	if p.DiscountPrice != nil && p.DiscountPrice.IsNegative() {
		return errors.New("discount price must not be negative")
	}
	return nil
}
