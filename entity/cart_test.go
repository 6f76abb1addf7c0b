package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchaCake(stock int) *Product {
	return &Product{
		ProductID:     "PRD0001",
		Name:          "Matcha Chiffon Cake",
		Price:         36000,
		StockQuantity: stock,
		Category:      "Sweet Cakes",
	}
}

func TestAddItemCreatesLineWithPriceSnapshot(t *testing.T) {
	cart := &Cart{CartID: "CRT0001"}
	product := matchaCake(5)

	require.NoError(t, cart.AddItem("CIT0001", product, 3))

	require.Len(t, cart.Items, 1)
	item := cart.Items[0]
	assert.Equal(t, "CIT0001", item.CartItemID)
	assert.Equal(t, "CRT0001", item.CartID)
	assert.Equal(t, "PRD0001", item.ProductID)
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, int64(36000), item.PriceAtAddition)
	assert.Equal(t, int64(108000), item.Subtotal())
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	cart := &Cart{CartID: "CRT0001"}
	product := matchaCake(5)

	assert.ErrorIs(t, cart.AddItem("CIT0001", product, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.AddItem("CIT0001", product, -2), ErrInvalidQuantity)
	assert.Empty(t, cart.Items)
}

func TestAddItemRejectsQuantityOverStock(t *testing.T) {
	cart := &Cart{CartID: "CRT0001"}
	product := matchaCake(5)

	assert.ErrorIs(t, cart.AddItem("CIT0001", product, 6), ErrInsufficientStock)
	assert.Empty(t, cart.Items)
}

func TestAddItemMergesSameProduct(t *testing.T) {
	cart := &Cart{CartID: "CRT0001"}
	product := matchaCake(5)

	require.NoError(t, cart.AddItem("CIT0001", product, 2))

	// Merge keeps the original line and its price snapshot even if the
	// catalog price changed in between.
	product.Price = 99000
	require.NoError(t, cart.AddItem("CIT0002", product, 3))

	require.Len(t, cart.Items, 1)
	item := cart.Items[0]
	assert.Equal(t, "CIT0001", item.CartItemID)
	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, int64(36000), item.PriceAtAddition)
}

func TestAddItemMergeRejectsTotalOverStock(t *testing.T) {
	cart := &Cart{CartID: "CRT0001"}
	product := matchaCake(5)

	require.NoError(t, cart.AddItem("CIT0001", product, 3))
	assert.ErrorIs(t, cart.AddItem("CIT0002", product, 3), ErrInsufficientStock)

	// Failed merge leaves the cart untouched.
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestUpdateItemQuantity(t *testing.T) {
	cart := &Cart{CartID: "CRT0001"}
	product := matchaCake(5)
	require.NoError(t, cart.AddItem("CIT0001", product, 3))

	require.NoError(t, cart.UpdateItemQuantity("CIT0001", 5, product))
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, int64(36000), cart.Items[0].PriceAtAddition)

	assert.ErrorIs(t, cart.UpdateItemQuantity("CIT0001", 6, product), ErrInsufficientStock)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	assert.ErrorIs(t, cart.UpdateItemQuantity("CIT9999", 1, product), ErrCartItemNotFound)
}

func TestUpdateItemQuantityToZeroRemovesLine(t *testing.T) {
	cart := &Cart{CartID: "CRT0001"}
	product := matchaCake(5)
	require.NoError(t, cart.AddItem("CIT0001", product, 3))

	require.NoError(t, cart.UpdateItemQuantity("CIT0001", 0, nil))
	assert.Empty(t, cart.Items)
}

func TestRemoveItemTwiceFailsSecondTime(t *testing.T) {
	cart := &Cart{CartID: "CRT0001"}
	require.NoError(t, cart.AddItem("CIT0001", matchaCake(5), 1))

	require.NoError(t, cart.RemoveItem("CIT0001"))
	assert.ErrorIs(t, cart.RemoveItem("CIT0001"), ErrCartItemNotFound)
}

func TestClearIsIdempotent(t *testing.T) {
	cart := &Cart{CartID: "CRT0001"}
	require.NoError(t, cart.AddItem("CIT0001", matchaCake(5), 1))

	cart.Clear()
	assert.Empty(t, cart.Items)
	cart.Clear()
	assert.Empty(t, cart.Items)
}

func TestProjectComputesTotalsFresh(t *testing.T) {
	cake := matchaCake(30)
	bread := &Product{ProductID: "PRD0003", Name: "Lotus Coconut Milk Bread", Price: 10000, StockQuantity: 50, ImageURL: "https://img.example/bread.jpg"}
	cart := &Cart{CartID: "CRT0001"}
	require.NoError(t, cart.AddItem("CIT0001", cake, 2))
	require.NoError(t, cart.AddItem("CIT0002", bread, 4))

	products := map[string]*Product{cake.ProductID: cake, bread.ProductID: bread}
	view := cart.Project(products)

	assert.Equal(t, "CRT0001", view.CartID)
	assert.Equal(t, 2, view.DistinctItemCount)
	assert.Equal(t, int64(2*36000+4*10000), view.TotalAmount)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "Matcha Chiffon Cake", view.Items[0].ProductName)
	assert.Equal(t, int64(72000), view.Items[0].Subtotal)
	assert.Equal(t, "https://img.example/bread.jpg", view.Items[1].ImageURL)

	// Totals are recomputed, never cached.
	require.NoError(t, cart.UpdateItemQuantity("CIT0002", 1, bread))
	view = cart.Project(products)
	assert.Equal(t, int64(2*36000+10000), view.TotalAmount)

	cart.Clear()
	view = cart.Project(products)
	assert.Equal(t, 0, view.DistinctItemCount)
	assert.Equal(t, int64(0), view.TotalAmount)
	assert.NotNil(t, view.Items)
}

func TestProjectKeepsSnapshotForMissingProduct(t *testing.T) {
	cart := &Cart{CartID: "CRT0001"}
	require.NoError(t, cart.AddItem("CIT0001", matchaCake(5), 2))

	view := cart.Project(nil)
	require.Len(t, view.Items, 1)
	assert.Empty(t, view.Items[0].ProductName)
	assert.Equal(t, int64(36000), view.Items[0].UnitPrice)
	assert.Equal(t, int64(72000), view.TotalAmount)
}
