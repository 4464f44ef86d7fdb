package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/adega-tatuape/adega-storefront-service/internal/models"
)

func testProduct(id int64, name string, price float64) *models.Product {
	return &models.Product{
		ID:    id,
		Name:  name,
		Price: decimal.NewFromFloat(price),
		Stock: 100,
	}
}

func TestUpsert_NewLine(t *testing.T) {
	lines := Upsert(nil, testProduct(1, "Skol Lata 350ml", 4.50), 2)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Errorf("Expected quantity 2, got %d", lines[0].Quantity)
	}
	if lines[0].Subtotal != 9.00 {
		t.Errorf("Expected subtotal 9.00, got %.2f", lines[0].Subtotal)
	}
}

func TestUpsert_MergesExistingLine(t *testing.T) {
	p := testProduct(1, "Skol Lata 350ml", 4.50)

	lines := Upsert(nil, p, 1)
	lines = Upsert(lines, p, 2)

	if len(lines) != 1 {
		t.Fatalf("Expected a single merged line, got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Errorf("Expected merged quantity 3, got %d", lines[0].Quantity)
	}
	if lines[0].Subtotal != 13.50 {
		t.Errorf("Expected subtotal 13.50, got %.2f", lines[0].Subtotal)
	}
}

func TestUpsert_DistinctProducts(t *testing.T) {
	lines := Upsert(nil, testProduct(1, "Skol", 4.50), 1)
	lines = Upsert(lines, testProduct(2, "Coca-Cola", 4.50), 1)

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
}

func TestRemove(t *testing.T) {
	lines := Upsert(nil, testProduct(1, "Skol", 4.50), 1)
	lines = Upsert(lines, testProduct(2, "Coca-Cola", 4.50), 1)

	lines = Remove(lines, 1)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line after removal, got %d", len(lines))
	}
	if lines[0].ProductID != 2 {
		t.Errorf("Expected remaining product 2, got %d", lines[0].ProductID)
	}
}

func TestRemove_AbsentProductIsNoOp(t *testing.T) {
	lines := Upsert(nil, testProduct(1, "Skol", 4.50), 1)

	lines = Remove(lines, 99)

	if len(lines) != 1 {
		t.Errorf("Expected cart unchanged, got %d lines", len(lines))
	}
}

func TestSetQuantity(t *testing.T) {
	lines := Upsert(nil, testProduct(1, "Skol", 4.50), 1)

	if !SetQuantity(lines, 1, 5) {
		t.Fatal("Expected SetQuantity to report success")
	}
	if lines[0].Quantity != 5 {
		t.Errorf("Expected quantity 5, got %d", lines[0].Quantity)
	}
	if lines[0].Subtotal != 22.50 {
		t.Errorf("Expected subtotal 22.50, got %.2f", lines[0].Subtotal)
	}
}

func TestSetQuantity_AbsentProduct(t *testing.T) {
	lines := Upsert(nil, testProduct(1, "Skol", 4.50), 1)

	if SetQuantity(lines, 99, 5) {
		t.Error("Expected SetQuantity to report failure for absent product")
	}
	if lines[0].Quantity != 1 {
		t.Errorf("Expected cart unchanged, got quantity %d", lines[0].Quantity)
	}
}

func TestTotal(t *testing.T) {
	if total := Total(nil); total != 0 {
		t.Errorf("Expected empty cart total 0, got %.2f", total)
	}

	lines := Upsert(nil, testProduct(1, "Skol", 4.50), 2)
	lines = Upsert(lines, testProduct(2, "Vinho", 32.90), 1)

	if total := Total(lines); total != 41.90 {
		t.Errorf("Expected total 41.90, got %.2f", total)
	}
}

func TestItemCount(t *testing.T) {
	if count := ItemCount(nil); count != 0 {
		t.Errorf("Expected empty cart count 0, got %d", count)
	}

	lines := Upsert(nil, testProduct(1, "Skol", 4.50), 2)
	lines = Upsert(lines, testProduct(2, "Coca-Cola", 4.50), 3)

	if count := ItemCount(lines); count != 5 {
		t.Errorf("Expected item count 5, got %d", count)
	}
}
