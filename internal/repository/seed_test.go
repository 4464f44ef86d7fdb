package repository

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func writeTempSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "produtos.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp seed file: %v", err)
	}
	return path
}

func TestLoadSeedFile(t *testing.T) {
	path := writeTempSeed(t, `{
		"produtos": [
			{"nome": "Skol Lata 350ml", "preco": 4.50, "categoria": "cerveja", "estoque": 100},
			{"nome": "Coca-Cola 2L", "preco": 4.50, "categoria": "refrigerante", "estoque": 120}
		]
	}`)

	seeds := loadSeedFile(path, zap.NewNop())

	if len(seeds) != 2 {
		t.Fatalf("Expected 2 seed products, got %d", len(seeds))
	}
	if seeds[0].Name != "Skol Lata 350ml" {
		t.Errorf("Expected first product Skol Lata 350ml, got %q", seeds[0].Name)
	}
	if seeds[1].Category != "refrigerante" {
		t.Errorf("Expected second category refrigerante, got %q", seeds[1].Category)
	}
}

func TestLoadSeedFile_MissingFileUsesFallback(t *testing.T) {
	seeds := loadSeedFile(filepath.Join(t.TempDir(), "nope.json"), zap.NewNop())

	if len(seeds) != len(fallbackProducts) {
		t.Fatalf("Expected fallback set of %d, got %d", len(fallbackProducts), len(seeds))
	}
}

func TestLoadSeedFile_MalformedFileUsesFallback(t *testing.T) {
	path := writeTempSeed(t, `{"produtos": [`)

	seeds := loadSeedFile(path, zap.NewNop())

	if len(seeds) != len(fallbackProducts) {
		t.Fatalf("Expected fallback set of %d, got %d", len(fallbackProducts), len(seeds))
	}
}

func TestLoadSeedFile_EmptyDatasetUsesFallback(t *testing.T) {
	path := writeTempSeed(t, `{"produtos": []}`)

	seeds := loadSeedFile(path, zap.NewNop())

	if len(seeds) != len(fallbackProducts) {
		t.Fatalf("Expected fallback set of %d, got %d", len(fallbackProducts), len(seeds))
	}
}
