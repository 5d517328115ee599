package cart

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/snackshop/snack-shop-backend/internal/catalog"
)

var ErrUnknownAction = errors.New("unknown cart action")

// CatalogLister is the slice of the catalog service the cart needs.
type CatalogLister interface {
	List() []catalog.Product
}

// Service applies cart actions against the session-backed store and joins the
// result with the catalog.
type Service struct {
	store   *SessionStore
	catalog CatalogLister
}

func NewService(store *SessionStore, catalog CatalogLister) *Service {
	return &Service{store: store, catalog: catalog}
}

// Apply runs one cart action and persists the mutated cart back into the
// session before building the response view.
func (s *Service) Apply(c *fiber.Ctx, action string, productID, qty int) (View, error) {
	cart, err := s.store.Get(c)
	if err != nil {
		return View{}, err
	}

	switch action {
	case "add":
		if qty < 1 {
			qty = 1
		}
		cart.Add(productID, qty)
	case "set":
		if qty < 0 {
			qty = 0
		}
		cart.SetQuantity(productID, qty)
	case "increment":
		cart.Adjust(productID, 1)
	case "decrement":
		cart.Adjust(productID, -1)
	case "remove":
		cart.SetQuantity(productID, 0)
	default:
		return View{}, ErrUnknownAction
	}

	if err := s.store.Put(c, cart); err != nil {
		return View{}, err
	}
	return BuildView(s.catalog.List(), cart), nil
}

// View returns the current session cart joined against the catalog.
func (s *Service) View(c *fiber.Ctx) (View, error) {
	cart, err := s.store.Get(c)
	if err != nil {
		return View{}, err
	}
	return BuildView(s.catalog.List(), cart), nil
}

// Clear empties the session cart.
func (s *Service) Clear(c *fiber.Ctx) error {
	return s.store.Clear(c)
}
