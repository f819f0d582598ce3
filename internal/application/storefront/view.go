package storefront

import (
	"github.com/shopspring/decimal"

	"github.com/smk/storefront/internal/domain/storefront"
)

// CartLine is one cart entry in the read model, with the line total
// precomputed so clients never do money arithmetic.
type CartLine struct {
	Product   storefront.Product `json:"product"`
	Quantity  int                `json:"quantity"`
	LineTotal decimal.Decimal    `json:"line_total"`
}

// View is the reconciled read model of one session: everything a storefront
// page needs to render, derived under the controller lock so it is always
// internally consistent.
type View struct {
	Categories      []storefront.Category `json:"categories"`
	Products        []storefront.Product  `json:"products"`
	Cart            []CartLine            `json:"cart"`
	TotalItems      int                   `json:"total_items"`
	ActiveCategory  string                `json:"active_category"`
	IsLoading       bool                  `json:"is_loading"`
	ErrorMessage    string                `json:"error_message,omitempty"`
	CategoriesState string                `json:"categories_state"`
	ProductsState   string                `json:"products_state"`
}

// newView derives the read model. Products are filtered by the active
// category; IsLoading tracks the products fetch only, because categories
// degrade silently and never block rendering.
func newView(snapshot storefront.Snapshot, cart *storefront.Cart, activeCategory string, categoriesState, productsState storefront.LoadState, errorMessage string) View {
	items := cart.Items()
	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, CartLine{
			Product:   item.Product,
			Quantity:  item.Quantity,
			LineTotal: item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}

	return View{
		Categories:      snapshot.Categories,
		Products:        storefront.FilterByCategory(snapshot.Products, activeCategory),
		Cart:            lines,
		TotalItems:      cart.TotalItems(),
		ActiveCategory:  activeCategory,
		IsLoading:       productsState == storefront.LoadStateLoading,
		ErrorMessage:    errorMessage,
		CategoriesState: categoriesState.String(),
		ProductsState:   productsState.String(),
	}
}
