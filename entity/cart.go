package entity

import (
	"errors"
	"time"
)

// Domain errors raised by cart mutations.
var (
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrCartItemNotFound  = errors.New("cart item not found")
)

// Cart is the aggregate root: the cart row plus its full item set, treated as
// one consistency boundary. Mutations here are pure in-memory transformations;
// the service layer persists the result in a single transaction.
type Cart struct {
	CartID         string     `gorm:"column:cart_id;primaryKey;size:7" json:"cartId"`
	UserID         *string    `gorm:"column:user_id;size:7;uniqueIndex" json:"userId,omitempty"`
	Items          []CartItem `gorm:"foreignKey:CartID;references:CartID" json:"items"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastModifiedAt time.Time  `gorm:"column:last_modified_at" json:"lastModifiedAt"`
}

func (Cart) TableName() string { return "carts" }

// ItemForProduct returns the line item holding productID, or nil. A cart keeps
// at most one item per product.
func (c *Cart) ItemForProduct(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// ItemByID returns the line item with the given cart item id, or nil.
func (c *Cart) ItemByID(cartItemID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].CartItemID == cartItemID {
			return &c.Items[i]
		}
	}
	return nil
}

// AddItem adds quantity of product to the cart. If the product is already in
// the cart the quantities merge and the existing price snapshot is kept;
// otherwise a new line is created under newItemID with the product's current
// price. The requested total must fit the product's stock.
func (c *Cart) AddItem(newItemID string, product *Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if existing := c.ItemForProduct(product.ProductID); existing != nil {
		total := existing.Quantity + quantity
		if total > product.StockQuantity {
			return ErrInsufficientStock
		}
		existing.Quantity = total
		return nil
	}
	if quantity > product.StockQuantity {
		return ErrInsufficientStock
	}
	c.Items = append(c.Items, CartItem{
		CartItemID:      newItemID,
		CartID:          c.CartID,
		ProductID:       product.ProductID,
		Quantity:        quantity,
		PriceAtAddition: product.Price,
	})
	return nil
}

// UpdateItemQuantity replaces the quantity of an existing line. Zero or
// negative removes the line; the price snapshot never changes.
func (c *Cart) UpdateItemQuantity(cartItemID string, quantity int, product *Product) error {
	item := c.ItemByID(cartItemID)
	if item == nil {
		return ErrCartItemNotFound
	}
	if quantity <= 0 {
		return c.RemoveItem(cartItemID)
	}
	if quantity > product.StockQuantity {
		return ErrInsufficientStock
	}
	item.Quantity = quantity
	return nil
}

// RemoveItem deletes a line from the cart.
func (c *Cart) RemoveItem(cartItemID string) error {
	for i := range c.Items {
		if c.Items[i].CartItemID == cartItemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
	}
	return ErrCartItemNotFound
}

// Clear removes every line. Clearing an empty cart is a no-op.
func (c *Cart) Clear() {
	c.Items = nil
}

type CartItemView struct {
	CartItemID  string `json:"cartItemId"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	ImageURL    string `json:"imageUrl,omitempty"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	Subtotal    int64  `json:"subtotal"`
}

type CartView struct {
	CartID            string         `json:"cartId"`
	UserID            *string        `json:"userId"`
	Items             []CartItemView `json:"items"`
	DistinctItemCount int            `json:"distinctItemCount"`
	TotalAmount       int64          `json:"totalAmount"`
}

// Project derives the caller-facing view of the cart. Totals are recomputed on
// every call, never cached. products maps product id to the catalog row; a
// missing entry leaves name and image blank but keeps the price snapshot.
func (c *Cart) Project(products map[string]*Product) CartView {
	items := make([]CartItemView, 0, len(c.Items))
	var total int64
	for i := range c.Items {
		item := &c.Items[i]
		view := CartItemView{
			CartItemID: item.CartItemID,
			ProductID:  item.ProductID,
			UnitPrice:  item.PriceAtAddition,
			Quantity:   item.Quantity,
			Subtotal:   item.Subtotal(),
		}
		if p := products[item.ProductID]; p != nil {
			view.ProductName = p.Name
			view.ImageURL = p.ImageURL
		}
		total += view.Subtotal
		items = append(items, view)
	}
	return CartView{
		CartID:            c.CartID,
		UserID:            c.UserID,
		Items:             items,
		DistinctItemCount: len(items),
		TotalAmount:       total,
	}
}
