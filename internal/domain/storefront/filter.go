package storefront

// FilterByCategory returns the products visible under the given category
// selector. The synthetic "Tous" selector returns the input unchanged; any
// other selector keeps the subsequence of products whose canonical category
// key equals it, preserving relative order. An empty result is a valid,
// displayable state.
func FilterByCategory(products []Product, selector string) []Product {
	if selector == AllCategoryID {
		return products
	}
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Category == selector {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
