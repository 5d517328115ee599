package order

import (
	"path/filepath"
	"time"

	"github.com/snackshop/snack-shop-backend/internal/storage"
)

// JSONRepository appends orders to {"orders":[...]} in orders.json.
type JSONRepository struct {
	path string
}

func NewJSONRepository(dataDir string) *JSONRepository {
	return &JSONRepository{path: filepath.Join(dataDir, "orders.json")}
}

func (r *JSONRepository) load() []Order {
	orders := make([]Order, 0)
	if err := storage.LoadRecords(r.path, "orders", &orders); err != nil {
		return []Order{}
	}
	return orders
}

func (r *JSONRepository) Save(ord Order) (Order, error) {
	orders := r.load()
	maxID := 0
	for _, existing := range orders {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	ord.ID = maxID + 1
	ord.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	orders = append(orders, ord)
	if err := storage.SaveRecords(r.path, "orders", orders); err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *JSONRepository) List() ([]Order, error) {
	return r.load(), nil
}

func (r *JSONRepository) Delete(id int) error {
	orders := r.load()
	kept := make([]Order, 0, len(orders))
	for _, ord := range orders {
		if ord.ID != id {
			kept = append(kept, ord)
		}
	}
	if len(kept) == len(orders) {
		return ErrNotFound
	}
	return storage.SaveRecords(r.path, "orders", kept)
}
