package entity

// CartItem is one product line inside a cart. CartID is a plain back-reference
// for lookups; the owning Cart holds the items by value, never the other way
// around.
type CartItem struct {
	CartItemID      string `gorm:"column:cart_item_id;primaryKey;size:7" json:"cartItemId"`
	CartID          string `gorm:"column:cart_id;size:7;index" json:"cartId"`
	ProductID       string `gorm:"column:product_id;size:7" json:"productId"`
	Quantity        int    `json:"quantity"`
	PriceAtAddition int64  `gorm:"column:price_at_addition" json:"priceAtAddition"`
}

func (CartItem) TableName() string { return "cart_items" }

// Subtotal is derived, never stored: quantity times the price snapshot taken
// when the product was first added.
func (i *CartItem) Subtotal() int64 {
	return int64(i.Quantity) * i.PriceAtAddition
}
