package order

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/snackshop/snack-shop-backend/internal/cart"
	"github.com/snackshop/snack-shop-backend/internal/catalog"
)

type memoryRepository struct {
	orders []Order
}

func (r *memoryRepository) Save(o Order) (Order, error) {
	o.ID = len(r.orders) + 1
	r.orders = append(r.orders, o)
	return o, nil
}

func (r *memoryRepository) List() ([]Order, error) { return r.orders, nil }

func (r *memoryRepository) Delete(id int) error {
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func viewFor(price float64, qty int) cart.View {
	products := []catalog.Product{{ID: 1, Name: "Tangyuan", Price: price}}
	c := cart.New()
	c.Add(1, qty)
	return cart.BuildView(products, c)
}

func TestCheckout_TotalsAndStatus(t *testing.T) {
	repo := &memoryRepository{}
	s := NewService(repo)

	ord, err := s.Checkout(viewFor(4.50, 3), "mei@example.com")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if ord.Status != StatusPending {
		t.Fatalf("orders always start Pending, got %q", ord.Status)
	}
	if !strings.HasPrefix(ord.OrderNumber, "ord_") {
		t.Fatalf("unexpected order number %q", ord.OrderNumber)
	}
	if !ord.Subtotal.Equal(decimal.RequireFromString("13.50")) {
		t.Fatalf("unexpected subtotal %s", ord.Subtotal)
	}
	if !ord.Shipping.Equal(decimal.RequireFromString("6.50")) {
		t.Fatalf("unexpected shipping %s", ord.Shipping)
	}
	if !ord.Total.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("unexpected total %s", ord.Total)
	}
	if ord.ItemsCount != 3 || len(ord.Items) != 1 {
		t.Fatalf("unexpected items %+v", ord)
	}
}

func TestCheckout_FreeShippingOverThreshold(t *testing.T) {
	s := NewService(&memoryRepository{})

	ord, err := s.Checkout(viewFor(30.25, 2), "mei@example.com")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if !ord.Shipping.IsZero() {
		t.Fatalf("expected free shipping above 60, got %s", ord.Shipping)
	}
	if !ord.Total.Equal(ord.Subtotal) {
		t.Fatalf("total should equal subtotal when shipping is free")
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	s := NewService(&memoryRepository{})
	if _, err := s.Checkout(cart.View{}, "mei@example.com"); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckout_OrderNumbersAreUnique(t *testing.T) {
	s := NewService(&memoryRepository{})
	a, _ := s.Checkout(viewFor(1, 1), "a@example.com")
	b, _ := s.Checkout(viewFor(1, 1), "b@example.com")
	if a.OrderNumber == b.OrderNumber {
		t.Fatalf("order numbers collided: %q", a.OrderNumber)
	}
}
