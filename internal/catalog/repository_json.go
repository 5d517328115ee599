package catalog

import (
	"path/filepath"

	"github.com/snackshop/snack-shop-backend/internal/storage"
)

// JSONRepository persists the catalog in a {"products":[...]} document. Every
// mutation is a whole-file read-modify-write; concurrent writers are not
// coordinated, matching how the storefront has always behaved.
type JSONRepository struct {
	path string
}

func NewJSONRepository(dataDir string) *JSONRepository {
	return &JSONRepository{path: filepath.Join(dataDir, "products.json")}
}

func (r *JSONRepository) load() []Product {
	products := make([]Product, 0)
	if err := storage.LoadRecords(r.path, "products", &products); err != nil {
		return []Product{}
	}
	return products
}

func (r *JSONRepository) save(products []Product) error {
	return storage.SaveRecords(r.path, "products", products)
}

func (r *JSONRepository) List() []Product {
	return r.load()
}

func (r *JSONRepository) GetByID(id int) (Product, error) {
	for _, p := range r.load() {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *JSONRepository) Create(p Product) (Product, error) {
	products := r.load()
	if p.ID == 0 {
		p.ID = nextProductID(products)
	}
	products = append(products, p)
	if err := r.save(products); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *JSONRepository) Update(id int, p Product) (Product, error) {
	products := r.load()
	for i := range products {
		if products[i].ID == id {
			p.ID = id
			products[i] = p
			if err := r.save(products); err != nil {
				return Product{}, err
			}
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *JSONRepository) Delete(id int) error {
	products := r.load()
	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			return r.save(products)
		}
	}
	return ErrNotFound
}
