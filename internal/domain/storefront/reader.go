package storefront

import "context"

// CatalogReader is the read contract against the remote catalog service.
// Implementations normalize every record into the canonical Product and
// Category shapes before returning it; nothing past this boundary sees the
// upstream data-shape variance.
type CatalogReader interface {
	// ListCategories returns all categories, without the synthetic "Tous"
	// entry (the snapshot prepends it).
	ListCategories(ctx context.Context) ([]Category, error)

	// ListProducts returns all products in catalog order.
	ListProducts(ctx context.Context) ([]Product, error)
}

// CatalogWriter is the admin mutation contract against the remote catalog
// service. The bearer token is caller-supplied and passed through verbatim;
// the storefront never mints or verifies credentials. A successful mutation
// is treated by consumers exactly like a fresh catalog fetch.
type CatalogWriter interface {
	CreateProduct(ctx context.Context, token string, draft ProductDraft) (Product, error)
	UpdateProduct(ctx context.Context, token string, id int64, draft ProductDraft) (Product, error)
	DeleteProduct(ctx context.Context, token string, id int64) error
}

// ProductDraft carries the writable product fields for admin mutations.
type ProductDraft struct {
	Name     string
	Price    string
	Category string
	Image    string
}
