package order

import "log"

// FallbackRepository tries the database first, falling back to the JSON store
// on failure; a list with zero rows also falls back. Stores can diverge.
type FallbackRepository struct {
	primary   Repository
	secondary Repository
}

func NewFallbackRepository(primary, secondary Repository) *FallbackRepository {
	return &FallbackRepository{primary: primary, secondary: secondary}
}

func (r *FallbackRepository) Save(ord Order) (Order, error) {
	saved, err := r.primary.Save(ord)
	if err != nil {
		log.Printf("order: save fell back to secondary store: %v", err)
		return r.secondary.Save(ord)
	}
	return saved, nil
}

func (r *FallbackRepository) List() ([]Order, error) {
	orders, err := r.primary.List()
	if err != nil || len(orders) == 0 {
		return r.secondary.List()
	}
	return orders, nil
}

func (r *FallbackRepository) Delete(id int) error {
	if err := r.primary.Delete(id); err != nil {
		return r.secondary.Delete(id)
	}
	return nil
}
