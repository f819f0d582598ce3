package storefront

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOrder(t *testing.T) {
	t.Run("one line per item with line totals", func(t *testing.T) {
		cart := NewCart()
		a := Product{ID: 1, Name: "A", Price: decimal.NewFromInt(1000)}
		b := Product{ID: 2, Name: "B", Price: decimal.NewFromInt(500)}
		cart.Add(a)
		cart.Add(a)
		cart.Add(b)

		msg := FormatOrder(cart)
		lines := strings.Split(msg, "\n")

		require.Len(t, lines, 3)
		assert.Equal(t, OrderGreeting, lines[0])
		assert.Equal(t, "A x2 (2000 FCFA)", lines[1])
		assert.Equal(t, "B x1 (500 FCFA)", lines[2])
	})

	t.Run("empty cart produces the greeting only", func(t *testing.T) {
		msg := FormatOrder(NewCart())
		assert.Equal(t, OrderGreeting, msg)
		assert.NotEmpty(t, msg)
	})

	t.Run("line order follows cart order after mutations", func(t *testing.T) {
		cart := NewCart()
		cart.Add(Product{ID: 1, Name: "A", Price: decimal.NewFromInt(100)})
		cart.Add(Product{ID: 2, Name: "B", Price: decimal.NewFromInt(200)})
		cart.DecreaseQuantity(1)
		cart.Add(Product{ID: 3, Name: "C", Price: decimal.NewFromInt(300)})

		lines := strings.Split(FormatOrder(cart), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[1], "B "))
		assert.True(t, strings.HasPrefix(lines[2], "C "))
	})
}

func TestFormatProductOrder(t *testing.T) {
	p := Product{ID: 1, Name: "Téléphone X", Price: decimal.NewFromInt(100000)}
	msg := FormatProductOrder(p)
	assert.Equal(t, "Bonjour, je souhaite commander : Téléphone X (100000 FCFA)", msg)
}
