package order

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/snackshop/snack-shop-backend/internal/cart"
)

var ErrEmptyCart = errors.New("cart is empty")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Checkout freezes the cart view into an order. Orders always start Pending.
func (s *Service) Checkout(view cart.View, customerEmail string) (Order, error) {
	if len(view.Items) == 0 {
		return Order{}, ErrEmptyCart
	}

	items := make([]Item, 0, len(view.Items))
	for _, line := range view.Items {
		items = append(items, Item{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			UnitPrice: decimal.NewFromFloat(line.Product.Price),
			LineTotal: line.LineTotal,
		})
	}

	ord := Order{
		OrderNumber:   "ord_" + uuid.NewString(),
		CustomerEmail: customerEmail,
		Items:         items,
		ItemsCount:    view.ItemsCount,
		Subtotal:      view.Subtotal,
		Shipping:      view.Shipping,
		Total:         view.Total,
		Status:        StatusPending,
	}

	return s.repo.Save(ord)
}

func (s *Service) List() ([]Order, error) {
	return s.repo.List()
}

func (s *Service) Delete(id int) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
