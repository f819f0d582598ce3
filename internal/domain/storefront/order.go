package storefront

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// OrderGreeting opens every order message sent over the messaging channel.
const OrderGreeting = "Bonjour, je souhaite commander :"

// FormatOrder renders the cart as a plain-text order message: the greeting
// line followed by one line per cart item in cart order, e.g.
//
//	Bonjour, je souhaite commander :
//	Casserole x2 (30000 FCFA)
//
// An empty cart yields the greeting alone; callers should guard checkout on
// TotalItems() before handing the message off. Percent-encoding and URI
// building belong to the hand-off boundary, not here.
func FormatOrder(cart *Cart) string {
	var b strings.Builder
	b.WriteString(OrderGreeting)
	for _, item := range cart.Items() {
		lineTotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s x%d (%s %s)", item.Product.Name, item.Quantity, lineTotal.String(), CurrencyUnit))
	}
	return b.String()
}

// FormatProductOrder renders the single-product "order now" message used by
// the product card shortcut, bypassing the cart.
func FormatProductOrder(product Product) string {
	return fmt.Sprintf("%s %s (%s %s)", OrderGreeting, product.Name, product.Price.String(), CurrencyUnit)
}
