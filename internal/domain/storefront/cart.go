package storefront

// CartItem is one cart line: the product snapshot taken at add time plus a
// strictly positive quantity. Entries with quantity zero never exist; the
// cart removes the line instead.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart maps product IDs to cart items while preserving insertion order, so
// the order message and every read of the cart are stable and testable.
// The cart is session-scoped, never persisted, and holds at most one item
// per product ID.
//
// Mutations cannot fail and are not internally synchronized: the owning
// controller serializes all access (one cart is never shared across
// sessions).
type Cart struct {
	items map[int64]*CartItem
	order []int64
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		items: make(map[int64]*CartItem),
	}
}

// Add puts one unit of the product into the cart. If the product is already
// present its quantity is incremented and the stored snapshot is replaced
// with the one supplied, so display fields follow the latest fetch
// (last-write-wins; the displayed line price can change if the catalog was
// re-fetched between adds).
func (c *Cart) Add(product Product) {
	if item, ok := c.items[product.ID]; ok {
		item.Quantity++
		item.Product = product
		return
	}
	c.items[product.ID] = &CartItem{Product: product, Quantity: 1}
	c.order = append(c.order, product.ID)
}

// DecreaseQuantity removes one unit of the identified product. Decrementing
// a quantity-1 line removes the line entirely; an absent product ID is a
// no-op, not an error.
func (c *Cart) DecreaseQuantity(productID int64) {
	item, ok := c.items[productID]
	if !ok {
		return
	}
	if item.Quantity > 1 {
		item.Quantity--
		return
	}
	delete(c.items, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// TotalItems returns the sum of all quantities. Never negative.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Clear empties the cart. Used after a successful hand-off.
func (c *Cart) Clear() {
	c.items = make(map[int64]*CartItem)
	c.order = nil
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, *c.items[id])
	}
	return items
}

// Get returns the cart line for a product ID, if present.
func (c *Cart) Get(productID int64) (CartItem, bool) {
	item, ok := c.items[productID]
	if !ok {
		return CartItem{}, false
	}
	return *item, true
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}
