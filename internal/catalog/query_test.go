package catalog

import "testing"

func sampleProducts() []Product {
	return []Product{
		{ID: 1, Name: "Tangyuan Sesame", Category: "Sweets", Price: 4.50, BestSeller: true},
		{ID: 2, Name: "Qingtuan", Category: "Sweets", Price: 3.20},
		{ID: 3, Name: "Seaweed Crisps", Category: "Savory", Price: 2.80, BestSeller: true},
		{ID: 4, Name: "Mango Gummies", Category: "", Price: 5.10},
		{ID: 5, Name: "Shrimp Chips", Category: "Savory", Price: 3.20, BestSeller: true},
	}
}

func TestFilter_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := Filter(sampleProducts(), Criteria{Search: "tangYUAN"})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected product 1, got %+v", got)
	}
}

func TestFilter_AllPredicatesAnd(t *testing.T) {
	min, max := 3.0, 4.0
	got := Filter(sampleProducts(), Criteria{Category: "Savory", MinPrice: &min, MaxPrice: &max})
	if len(got) != 1 || got[0].ID != 5 {
		t.Fatalf("expected only product 5, got %+v", got)
	}
}

func TestFilter_PredicateOrderIndependent(t *testing.T) {
	products := sampleProducts()
	combined := Filter(products, Criteria{Search: "s", Category: "Savory"})
	searchFirst := Filter(Filter(products, Criteria{Search: "s"}), Criteria{Category: "Savory"})
	categoryFirst := Filter(Filter(products, Criteria{Category: "Savory"}), Criteria{Search: "s"})

	if len(combined) != len(searchFirst) || len(combined) != len(categoryFirst) {
		t.Fatalf("predicate order changed the result: %d / %d / %d", len(combined), len(searchFirst), len(categoryFirst))
	}
	for i := range combined {
		if combined[i].ID != searchFirst[i].ID || combined[i].ID != categoryFirst[i].ID {
			t.Fatalf("predicate order changed the result at %d", i)
		}
	}
}

func TestFilter_NilBoundsUnconstrained(t *testing.T) {
	got := Filter(sampleProducts(), Criteria{})
	if len(got) != 5 {
		t.Fatalf("empty criteria should keep every product, got %d", len(got))
	}
}

func TestSort_PriceAscAndDescAreReverses(t *testing.T) {
	asc := Sort(sampleProducts(), "price_asc")
	desc := Sort(sampleProducts(), "price_desc")

	for i := 0; i+1 < len(asc); i++ {
		if asc[i].Price > asc[i+1].Price {
			t.Fatalf("price_asc not ascending at %d: %+v", i, asc)
		}
	}
	if asc[0].ID != 3 {
		t.Fatalf("cheapest product should sort first, got %+v", asc[0])
	}
	if desc[0].ID != 4 {
		t.Fatalf("most expensive product should sort first on price_desc, got %+v", desc[0])
	}
}

func TestSort_StableOnTies(t *testing.T) {
	// products 2 and 5 share a price; filter order must survive the sort
	got := Sort(sampleProducts(), "price_asc")
	var tied []int
	for _, p := range got {
		if p.Price == 3.20 {
			tied = append(tied, p.ID)
		}
	}
	if len(tied) != 2 || tied[0] != 2 || tied[1] != 5 {
		t.Fatalf("tied prices should keep catalog order, got %v", tied)
	}
}

func TestSort_UnknownKeyPreservesOrder(t *testing.T) {
	got := Sort(sampleProducts(), "by_popularity")
	for i, p := range got {
		if p.ID != sampleProducts()[i].ID {
			t.Fatalf("unknown sort key must not reorder, got %+v", got)
		}
	}
}

func TestCategoriesWithCounts(t *testing.T) {
	got := CategoriesWithCounts(sampleProducts())
	want := []CategoryCount{
		{Category: "Other", Count: 1},
		{Category: "Savory", Count: 2},
		{Category: "Sweets", Count: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("category %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestBestSelling_LimitAndCatalogOrder(t *testing.T) {
	got := BestSelling(sampleProducts(), 2)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("expected first two flagged products in catalog order, got %+v", got)
	}
}

func TestBestSelling_DefaultLimit(t *testing.T) {
	got := BestSelling(sampleProducts(), 0)
	if len(got) != 3 {
		t.Fatalf("only three products are flagged, got %d", len(got))
	}
}
