package storefront

// LoadState tracks the lifecycle of one asynchronous catalog fetch. The
// categories and products fetches each carry their own LoadState; their
// completion order is never assumed.
type LoadState int

const (
	LoadStateIdle LoadState = iota
	LoadStateLoading
	LoadStateReady
	LoadStateFailed
)

// String returns the state name for logs and responses.
func (s LoadState) String() string {
	switch s {
	case LoadStateIdle:
		return "idle"
	case LoadStateLoading:
		return "loading"
	case LoadStateReady:
		return "ready"
	case LoadStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable point-in-time view of the fetched catalog. The
// category list always starts with the synthetic "Tous" entry; the product
// list is replaced wholesale on each successful fetch. A failed fetch leaves
// the previous snapshot untouched.
type Snapshot struct {
	Categories []Category
	Products   []Product
}

// NewSnapshot returns the initial snapshot: no products, only the synthetic
// "Tous" category.
func NewSnapshot() Snapshot {
	return Snapshot{
		Categories: []Category{AllCategory()},
	}
}

// WithCategories derives a snapshot carrying the fetched categories with the
// synthetic "Tous" entry prepended.
func (s Snapshot) WithCategories(categories []Category) Snapshot {
	all := make([]Category, 0, len(categories)+1)
	all = append(all, AllCategory())
	all = append(all, categories...)
	return Snapshot{Categories: all, Products: s.Products}
}

// WithProducts derives a snapshot with the product list replaced wholesale.
func (s Snapshot) WithProducts(products []Product) Snapshot {
	return Snapshot{Categories: s.Categories, Products: products}
}

// ProductByID looks a product up in the snapshot.
func (s Snapshot) ProductByID(id int64) (Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// HasCategory reports whether the selector matches a category in the
// snapshot (including the synthetic "Tous").
func (s Snapshot) HasCategory(selector string) bool {
	for _, c := range s.Categories {
		if c.ID == selector {
			return true
		}
	}
	return false
}
