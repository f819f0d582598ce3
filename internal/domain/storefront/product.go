package storefront

import (
	"github.com/shopspring/decimal"
)

// CurrencyUnit is the display unit for all prices in the storefront.
// The remote catalog prices everything in whole francs CFA.
const CurrencyUnit = "FCFA"

// AllCategoryID identifies the synthetic "show everything" category.
// It is never served by the catalog API; the storefront prepends it itself.
const AllCategoryID = "Tous"

// Category is a product category as displayed in the storefront filter bar.
// The ID is the canonical comparison key for filtering; the catalog client
// normalizes every upstream shape (numeric id, embedded object, bare label)
// into it before a Category enters a snapshot.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AllCategory returns the synthetic category that disables filtering.
func AllCategory() Category {
	return Category{ID: AllCategoryID, Name: "Tous"}
}

// Product is the canonical product shape used everywhere past the catalog
// boundary. Category holds the canonical category key (matching Category.ID),
// CategoryLabel the display label. Image is an opaque URL string.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	CategoryLabel string          `json:"category_label"`
	Image         string          `json:"image"`
}
