package importer

import (
	"context"
	"strings"
	"testing"

	"marketflow/internal/domain"
)

type stubWriter struct {
	upserted []domain.Product
	err      error
}

func (s *stubWriter) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.upserted = append(s.upserted, p)
	return &p, nil
}

const sampleExport = `[
  {"id": 1, "title": "Aurora 4K TV", "price": 499.99, "discountPrice": 429.99, "category": "Electronics", "inStock": true},
  {"id": 2, "title": "ZenFlex Yoga Mat", "price": 24.99, "category": "Sports & Outdoors", "inStock": false}
]`

func TestRunImportsAllRecords(t *testing.T) {
	w := &stubWriter{}
	imp := NewJSONImporter(strings.NewReader(sampleExport), w)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 imported, got %d", count)
	}
	if w.upserted[0].ID != 1 || w.upserted[1].ID != 2 {
		t.Fatalf("unexpected upserts: %+v", w.upserted)
	}
	if w.upserted[0].DiscountPrice == nil {
		t.Fatal("expected discount price decoded")
	}
	if w.upserted[1].InStock {
		t.Fatal("expected out-of-stock flag preserved")
	}
}

func TestRunRejectsMissingTitle(t *testing.T) {
	imp := NewJSONImporter(strings.NewReader(`[{"id": 1, "price": 5}]`), &stubWriter{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("expected validation error for missing title")
	}
}

func TestRunRejectsNonArray(t *testing.T) {
	imp := NewJSONImporter(strings.NewReader(`{"id": 1}`), &stubWriter{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("expected error for non-array export")
	}
}

func TestRunStopsOnWriterError(t *testing.T) {
	w := &stubWriter{err: context.DeadlineExceeded}
	imp := NewJSONImporter(strings.NewReader(sampleExport), w)

	count, err := imp.Run(context.Background())
	if err == nil {
		t.Fatal("expected writer error to propagate")
	}
	if count != 0 {
		t.Fatalf("expected zero imported on first failure, got %d", count)
	}
}
