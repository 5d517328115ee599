package catalog

import (
	"sort"
	"strings"
)

// Criteria holds the browse filters. Nil price bounds leave that side
// unconstrained, mirroring non-numeric form input.
type Criteria struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// Filter keeps a product only when all four predicates match: empty search or
// case-insensitive name substring, empty category or exact category match, and
// price within whichever bounds are set.
func Filter(products []Product, c Criteria) []Product {
	search := strings.ToLower(strings.TrimSpace(c.Search))

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if c.Category != "" && p.Category != c.Category {
			continue
		}
		if c.MinPrice != nil && p.Price < *c.MinPrice {
			continue
		}
		if c.MaxPrice != nil && p.Price > *c.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort orders products by the given key. An empty or unknown key preserves the
// incoming order. The sort is stable so ties keep their filter order.
func Sort(products []Product, key string) []Product {
	out := make([]Product, len(products))
	copy(out, products)

	switch key {
	case "price_asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "price_desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case "name_asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case "name_desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	}
	return out
}

// CategoriesWithCounts groups products by category, folding missing categories
// into "Other", sorted by category name ascending.
func CategoriesWithCounts(products []Product) []CategoryCount {
	counts := map[string]int{}
	for _, p := range products {
		category := p.Category
		if category == "" {
			category = "Other"
		}
		counts[category]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for category, n := range counts {
		out = append(out, CategoryCount{Category: category, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// BestSelling returns the first limit products flagged best_seller, in catalog
// order. This is a flag cutoff, not a sales metric.
func BestSelling(products []Product, limit int) []Product {
	if limit <= 0 {
		limit = 4
	}
	out := make([]Product, 0, limit)
	for _, p := range products {
		if !p.BestSeller {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}
