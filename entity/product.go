package entity

// Product mirrors the products table. Prices are whole VND, so int64 instead
// of a decimal type.
type Product struct {
	ProductID      string `gorm:"column:product_id;primaryKey;size:7" json:"productId"`
	Name           string `gorm:"size:100" json:"name"`
	Description    string `gorm:"type:text" json:"description"`
	Price          int64  `gorm:"not null" json:"price"`
	StockQuantity  int    `gorm:"default:0" json:"stockQuantity"`
	Category       string `gorm:"size:100;not null" json:"category"`
	ImageURL       string `gorm:"column:image_url;size:255" json:"imageUrl"`
	ExpirationDate string `gorm:"size:50" json:"expirationDate"`
}

func (Product) TableName() string { return "products" }
