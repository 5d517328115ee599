package order

import "errors"

var (
	ErrNotFound = errors.New("order not found")
)

type Repository interface {
	Save(ord Order) (Order, error)
	List() ([]Order, error)
	Delete(id int) error
}
