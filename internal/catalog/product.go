package catalog

// Product represents one entry of the catalog JSON document. JSON tags follow
// the snake_case convention of the data files.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Badge       string  `json:"badge,omitempty"`
	Rating      int     `json:"rating"`
	BestSeller  bool    `json:"best_seller"`
}

// CategoryCount pairs a category name with how many products it holds.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
