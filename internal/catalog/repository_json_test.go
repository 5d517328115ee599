package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestJSONRepository_CreateAssignsMaxPlusOne(t *testing.T) {
	repo := NewJSONRepository(t.TempDir())

	first, err := repo.Create(Product{Name: "Tangyuan"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.ID != 1 {
		t.Fatalf("first product in an empty file should get id 1, got %d", first.ID)
	}

	// a gap in ids must not be reused
	if _, err := repo.Create(Product{ID: 7, Name: "Qingtuan"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	third, err := repo.Create(Product{Name: "Seaweed Crisps"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if third.ID != 8 {
		t.Fatalf("expected id 8 after highest id 7, got %d", third.ID)
	}
}

func TestJSONRepository_UpdateAndDelete(t *testing.T) {
	repo := NewJSONRepository(t.TempDir())
	created, _ := repo.Create(Product{Name: "Mochi", Price: 3})

	updated, err := repo.Update(created.ID, Product{Name: "Mochi", Price: 3.50})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != created.ID || updated.Price != 3.50 {
		t.Fatalf("unexpected update result %+v", updated)
	}

	if err := repo.Delete(created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.Delete(created.ID); err != ErrNotFound {
		t.Fatalf("deleting twice should return ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByID(created.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestJSONRepository_MalformedFileTreatedAsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "products.json"), []byte("{oops"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	repo := NewJSONRepository(dir)
	if got := repo.List(); len(got) != 0 {
		t.Fatalf("malformed file should read as empty catalog, got %+v", got)
	}
	if created, err := repo.Create(Product{Name: "Rice Crackers"}); err != nil || created.ID != 1 {
		t.Fatalf("create over malformed file: %+v, %v", created, err)
	}
}

func TestJSONRepository_WritesProductsKey(t *testing.T) {
	dir := t.TempDir()
	repo := NewJSONRepository(dir)
	if _, err := repo.Create(Product{Name: "Taro Chips"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "products.json"))
	if err != nil {
		t.Fatalf("read data file: %v", err)
	}
	if !strings.Contains(string(b), `"products"`) {
		t.Fatalf("data file should keep the products wrapper, got %s", b)
	}
}
