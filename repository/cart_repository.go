package repository

import (
	"time"

	"github.com/trung2605/bakery-assginment-be/entity"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// FindByID loads a cart and its items. forUpdate locks the cart row for the
// duration of the transaction so concurrent mutations of the same cart
// serialize; carts of different ids stay independent.
func (r *CartRepository) FindByID(tx *gorm.DB, cartID string, forUpdate bool) (*entity.Cart, error) {
	q := tx
	if forUpdate {
		q = withRowLock(tx)
	}
	var cart entity.Cart
	if err := q.Preload("Items", orderedItems).Where("cart_id = ?", cartID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepository) FindByOwner(tx *gorm.DB, userID string) (*entity.Cart, error) {
	var cart entity.Cart
	if err := tx.Preload("Items", orderedItems).Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// orderedItems keeps item order stable across reads; without it the database
// is free to return preloaded rows in any order.
func orderedItems(tx *gorm.DB) *gorm.DB {
	return tx.Order("cart_item_id")
}

// FindItemByID looks an item up across all carts, for telling "no such item"
// apart from "item belongs to a different cart".
func (r *CartRepository) FindItemByID(tx *gorm.DB, cartItemID string) (*entity.CartItem, error) {
	var item entity.CartItem
	if err := tx.Where("cart_item_id = ?", cartItemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) Create(tx *gorm.DB, cart *entity.Cart) error {
	now := time.Now()
	cart.CreatedAt = now
	cart.LastModifiedAt = now
	return tx.Create(cart).Error
}

// Save replaces the persisted item set with the aggregate's current one by
// applying the diff as explicit statements: delete rows the aggregate dropped,
// update rows whose quantity changed, insert new rows. No ORM cascades. The
// cart row is updated last so last_modified_at bumps exactly once per
// successful mutation.
func (r *CartRepository) Save(tx *gorm.DB, cart *entity.Cart) error {
	var existing []entity.CartItem
	if err := tx.Where("cart_id = ?", cart.CartID).Find(&existing).Error; err != nil {
		return err
	}

	current := make(map[string]*entity.CartItem, len(cart.Items))
	for i := range cart.Items {
		current[cart.Items[i].CartItemID] = &cart.Items[i]
	}

	seen := make(map[string]bool, len(existing))
	for i := range existing {
		old := &existing[i]
		seen[old.CartItemID] = true
		item, kept := current[old.CartItemID]
		if !kept {
			if err := tx.Where("cart_item_id = ?", old.CartItemID).
				Delete(&entity.CartItem{}).Error; err != nil {
				return err
			}
			continue
		}
		if item.Quantity != old.Quantity {
			if err := tx.Model(&entity.CartItem{}).
				Where("cart_item_id = ?", item.CartItemID).
				Update("quantity", item.Quantity).Error; err != nil {
				return err
			}
		}
	}
	for i := range cart.Items {
		if !seen[cart.Items[i].CartItemID] {
			if err := tx.Create(&cart.Items[i]).Error; err != nil {
				return err
			}
		}
	}

	cart.LastModifiedAt = time.Now()
	return tx.Model(&entity.Cart{}).
		Where("cart_id = ?", cart.CartID).
		Updates(map[string]any{
			"user_id":          cart.UserID,
			"last_modified_at": cart.LastModifiedAt,
		}).Error
}

// DetachOwner turns a user's cart into a guest cart. Called when the user is
// deleted; the cart and its items survive.
func (r *CartRepository) DetachOwner(tx *gorm.DB, userID string) error {
	return tx.Model(&entity.Cart{}).
		Where("user_id = ?", userID).
		Update("user_id", nil).Error
}
