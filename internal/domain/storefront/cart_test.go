package storefront

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phoneProduct() Product {
	return Product{
		ID:            1,
		Name:          "Téléphone X",
		Price:         decimal.NewFromInt(100000),
		Category:      "1",
		CategoryLabel: "Téléphone",
	}
}

func fridgeProduct() Product {
	return Product{
		ID:            2,
		Name:          "Réfrigérateur",
		Price:         decimal.NewFromInt(250000),
		Category:      "2",
		CategoryLabel: "Électroménager",
	}
}

func TestCart_Add(t *testing.T) {
	t.Run("inserts new entry with quantity 1", func(t *testing.T) {
		cart := NewCart()
		cart.Add(phoneProduct())

		item, ok := cart.Get(1)
		require.True(t, ok)
		assert.Equal(t, 1, item.Quantity)
		assert.Equal(t, 1, cart.TotalItems())
	})

	t.Run("same product twice yields one entry with quantity 2", func(t *testing.T) {
		cart := NewCart()
		cart.Add(phoneProduct())
		cart.Add(phoneProduct())

		assert.Equal(t, 1, cart.Len())
		item, ok := cart.Get(1)
		require.True(t, ok)
		assert.Equal(t, 2, item.Quantity)
		assert.Equal(t, 2, cart.TotalItems())
	})

	t.Run("re-add replaces the stored snapshot", func(t *testing.T) {
		cart := NewCart()
		cart.Add(phoneProduct())

		updated := phoneProduct()
		updated.Price = decimal.NewFromInt(90000)
		updated.Name = "Téléphone X (promo)"
		cart.Add(updated)

		item, ok := cart.Get(1)
		require.True(t, ok)
		assert.Equal(t, 2, item.Quantity)
		assert.Equal(t, "Téléphone X (promo)", item.Product.Name)
		assert.True(t, item.Product.Price.Equal(decimal.NewFromInt(90000)))
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		cart := NewCart()
		cart.Add(fridgeProduct())
		cart.Add(phoneProduct())
		cart.Add(fridgeProduct())

		items := cart.Items()
		require.Len(t, items, 2)
		assert.Equal(t, int64(2), items[0].Product.ID)
		assert.Equal(t, int64(1), items[1].Product.ID)
	})
}

func TestCart_DecreaseQuantity(t *testing.T) {
	t.Run("absent product is a no-op", func(t *testing.T) {
		cart := NewCart()
		cart.Add(phoneProduct())

		cart.DecreaseQuantity(99)

		assert.Equal(t, 1, cart.TotalItems())
		assert.Equal(t, 1, cart.Len())
	})

	t.Run("decrements quantity above one", func(t *testing.T) {
		cart := NewCart()
		cart.Add(phoneProduct())
		cart.Add(phoneProduct())

		cart.DecreaseQuantity(1)

		item, ok := cart.Get(1)
		require.True(t, ok)
		assert.Equal(t, 1, item.Quantity)
	})

	t.Run("removes entry at quantity one", func(t *testing.T) {
		cart := NewCart()
		cart.Add(phoneProduct())

		cart.DecreaseQuantity(1)

		_, ok := cart.Get(1)
		assert.False(t, ok)
		assert.Equal(t, 0, cart.TotalItems())
		assert.Empty(t, cart.Items())
	})

	t.Run("removal keeps remaining order intact", func(t *testing.T) {
		cart := NewCart()
		cart.Add(phoneProduct())
		cart.Add(fridgeProduct())

		cart.DecreaseQuantity(1)

		items := cart.Items()
		require.Len(t, items, 1)
		assert.Equal(t, int64(2), items[0].Product.ID)
	})
}

func TestCart_TotalItems(t *testing.T) {
	cart := NewCart()
	assert.Equal(t, 0, cart.TotalItems())

	// Total always equals the sum of per-entry quantities across any
	// sequence of mutations.
	cart.Add(phoneProduct())
	cart.Add(phoneProduct())
	cart.Add(fridgeProduct())
	assert.Equal(t, 3, cart.TotalItems())

	cart.DecreaseQuantity(1)
	assert.Equal(t, 2, cart.TotalItems())

	cart.DecreaseQuantity(1)
	cart.DecreaseQuantity(1) // already removed, no-op
	assert.Equal(t, 1, cart.TotalItems())

	cart.DecreaseQuantity(2)
	assert.Equal(t, 0, cart.TotalItems())
	assert.GreaterOrEqual(t, cart.TotalItems(), 0)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.Add(phoneProduct())
	cart.Add(fridgeProduct())

	cart.Clear()

	assert.Equal(t, 0, cart.TotalItems())
	assert.Empty(t, cart.Items())

	// Cart remains usable after clearing
	cart.Add(phoneProduct())
	assert.Equal(t, 1, cart.TotalItems())
}
