package cart

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/snackshop/snack-shop-backend/internal/catalog"
)

// Cart maps product ids to quantities while remembering the order products
// were first added in. No entry ever holds a quantity <= 0: mutations that
// would drive a quantity to zero or below remove the entry instead.
type Cart struct {
	entries []Entry
}

// Entry is one cart line as stored in the session.
type Entry struct {
	ProductID int `json:"productID"`
	Quantity  int `json:"quantity"`
}

func New() *Cart {
	return &Cart{}
}

// Add increments the quantity for id by qty, inserting the entry when absent.
// Non-positive ids and quantities are ignored.
func (c *Cart) Add(id, qty int) {
	if id <= 0 || qty <= 0 {
		return
	}
	for i := range c.entries {
		if c.entries[i].ProductID == id {
			c.entries[i].Quantity += qty
			return
		}
	}
	c.entries = append(c.entries, Entry{ProductID: id, Quantity: qty})
}

// SetQuantity sets the quantity for id to exactly qty; qty <= 0 removes the
// entry entirely.
func (c *Cart) SetQuantity(id, qty int) {
	if id <= 0 {
		return
	}
	if qty <= 0 {
		c.remove(id)
		return
	}
	for i := range c.entries {
		if c.entries[i].ProductID == id {
			c.entries[i].Quantity = qty
			return
		}
	}
	c.entries = append(c.entries, Entry{ProductID: id, Quantity: qty})
}

// Adjust adds delta (possibly negative) to the current quantity, treating a
// missing entry as zero. A resulting quantity <= 0 removes the entry.
func (c *Cart) Adjust(id, delta int) {
	if id <= 0 || delta == 0 {
		return
	}
	current := c.Quantity(id)
	c.SetQuantity(id, current+delta)
}

// Remove drops the entry for id; equivalent to SetQuantity(id, 0).
func (c *Cart) Remove(id int) {
	c.SetQuantity(id, 0)
}

func (c *Cart) remove(id int) {
	for i := range c.entries {
		if c.entries[i].ProductID == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// Quantity returns the stored quantity for id, zero when absent.
func (c *Cart) Quantity(id int) int {
	for _, e := range c.entries {
		if e.ProductID == id {
			return e.Quantity
		}
	}
	return 0
}

func (c *Cart) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the cart lines in first-add order.
func (c *Cart) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.entries = nil
}

func (c *Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.entries)
}

func (c *Cart) UnmarshalJSON(b []byte) error {
	entries := make([]Entry, 0)
	if err := json.Unmarshal(b, &entries); err != nil {
		return err
	}
	// drop anything a stale session may have stored with a bad quantity
	c.entries = entries[:0:0]
	for _, e := range entries {
		if e.ProductID > 0 && e.Quantity > 0 {
			c.entries = append(c.entries, e)
		}
	}
	return nil
}

// Item is one displayable cart line joined against the catalog.
type Item struct {
	Product   catalog.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// View is the cart as rendered: lines in first-add order plus the order
// summary block.
type View struct {
	Items      []Item          `json:"items"`
	ItemsCount int             `json:"itemsCount"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Shipping   decimal.Decimal `json:"shipping"`
	Total      decimal.Decimal `json:"total"`
}

var (
	freeShippingOver = decimal.NewFromInt(60)
	shippingFlatRate = decimal.RequireFromString("6.50")
)

// ShippingFor applies the storefront's flat shipping rule: free above 60,
// 6.50 otherwise.
func ShippingFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(freeShippingOver) {
		return decimal.Zero
	}
	return shippingFlatRate
}

// BuildView joins the cart against the catalog. Entries whose product no
// longer exists are silently dropped and contribute nothing to the subtotal.
func BuildView(products []catalog.Product, c *Cart) View {
	byID := make(map[int]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	view := View{Items: make([]Item, 0, c.Len()), Subtotal: decimal.Zero}
	for _, e := range c.Entries() {
		p, ok := byID[e.ProductID]
		if !ok {
			continue
		}
		lineTotal := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(e.Quantity)))
		view.Items = append(view.Items, Item{Product: p, Quantity: e.Quantity, LineTotal: lineTotal})
		view.ItemsCount += e.Quantity
		view.Subtotal = view.Subtotal.Add(lineTotal)
	}
	view.Shipping = decimal.Zero
	view.Total = decimal.Zero
	if len(view.Items) > 0 {
		view.Shipping = ShippingFor(view.Subtotal)
		view.Total = view.Subtotal.Add(view.Shipping)
	}
	return view
}
