package order

import "github.com/shopspring/decimal"

// Order statuses as declared by the Orders schema. Orders are created Pending
// and nothing in the storefront ever transitions them.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

// Item is one purchased line, frozen at checkout time.
type Item struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Order is a completed checkout.
type Order struct {
	ID            int             `json:"id"`
	OrderNumber   string          `json:"order_number"`
	CustomerEmail string          `json:"customer_email"`
	Items         []Item          `json:"items"`
	ItemsCount    int             `json:"items_count"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Shipping      decimal.Decimal `json:"shipping"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at"`
}
