package services

import (
	"errors"

	"github.com/trung2605/bakery-assginment-be/entity"
	"github.com/trung2605/bakery-assginment-be/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CartService orchestrates cart mutations: load the aggregate with its cart
// row locked, validate against the catalog, apply the change in memory,
// persist the diff, project the result. Each mutation is one transaction;
// either the whole change commits or none of it does.
type CartService struct {
	db       *gorm.DB
	carts    *repository.CartRepository
	products *repository.ProductRepository
	ids      *IDService
	log      *zap.Logger
}

func NewCartService(db *gorm.DB, carts *repository.CartRepository, products *repository.ProductRepository, ids *IDService, log *zap.Logger) *CartService {
	return &CartService{db: db, carts: carts, products: products, ids: ids, log: log}
}

// GetCart returns the projected view of a cart.
func (s *CartService) GetCart(cartID string) (*entity.CartView, error) {
	var view entity.CartView
	err := s.db.Transaction(func(tx *gorm.DB) error {
		cart, err := s.loadCart(tx, cartID, false)
		if err != nil {
			return err
		}
		v, err := s.project(tx, cart)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// CreateGuestCart provisions an empty cart with no owner.
func (s *CartService) CreateGuestCart() (*entity.CartView, error) {
	var view entity.CartView
	err := runWithIDRetry(s.db, func(tx *gorm.DB) error {
		cartID, err := s.ids.Allocate(tx, CartIDs)
		if err != nil {
			return err
		}
		cart := &entity.Cart{CartID: cartID}
		if err := s.carts.Create(tx, cart); err != nil {
			return err
		}
		view = cart.Project(nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("guest cart created", zap.String("cartId", view.CartID))
	return &view, nil
}

// AddItemToCart adds quantity of a product to the cart, merging with an
// existing line for the same product. A new line gets a freshly allocated
// CIT id and a snapshot of the product's current price.
func (s *CartService) AddItemToCart(cartID, productID string, quantity int) (*entity.CartView, error) {
	if quantity <= 0 {
		return nil, entity.ErrInvalidQuantity
	}
	var view entity.CartView
	err := runWithIDRetry(s.db, func(tx *gorm.DB) error {
		cart, err := s.loadCart(tx, cartID, true)
		if err != nil {
			return err
		}
		product, err := s.loadProduct(tx, productID)
		if err != nil {
			return err
		}

		var newItemID string
		if cart.ItemForProduct(productID) == nil {
			newItemID, err = s.ids.Allocate(tx, CartItemIDs)
			if err != nil {
				return err
			}
		}
		if err := cart.AddItem(newItemID, product, quantity); err != nil {
			return err
		}
		if err := s.carts.Save(tx, cart); err != nil {
			return err
		}
		view, err = s.project(tx, cart)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// UpdateQuantity replaces a line's quantity; zero or negative removes the
// line. The price snapshot never changes.
func (s *CartService) UpdateQuantity(cartID, cartItemID string, quantity int) (*entity.CartView, error) {
	var view entity.CartView
	err := s.db.Transaction(func(tx *gorm.DB) error {
		cart, err := s.loadCart(tx, cartID, true)
		if err != nil {
			return err
		}
		item := cart.ItemByID(cartItemID)
		if item == nil {
			return s.classifyMissingItem(tx, cartItemID)
		}
		// Removal via quantity <= 0 needs no stock check, so the product may
		// even be gone from the catalog by now.
		var product *entity.Product
		if quantity > 0 {
			if product, err = s.loadProduct(tx, item.ProductID); err != nil {
				return err
			}
		}
		if err := cart.UpdateItemQuantity(cartItemID, quantity, product); err != nil {
			return err
		}
		if err := s.carts.Save(tx, cart); err != nil {
			return err
		}
		view, err = s.project(tx, cart)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// RemoveItem deletes one line from the cart.
func (s *CartService) RemoveItem(cartID, cartItemID string) (*entity.CartView, error) {
	var view entity.CartView
	err := s.db.Transaction(func(tx *gorm.DB) error {
		cart, err := s.loadCart(tx, cartID, true)
		if err != nil {
			return err
		}
		if cart.ItemByID(cartItemID) == nil {
			return s.classifyMissingItem(tx, cartItemID)
		}
		if err := cart.RemoveItem(cartItemID); err != nil {
			return err
		}
		if err := s.carts.Save(tx, cart); err != nil {
			return err
		}
		view, err = s.project(tx, cart)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ClearCart removes every line. Always succeeds on an existing cart.
func (s *CartService) ClearCart(cartID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		cart, err := s.loadCart(tx, cartID, true)
		if err != nil {
			return err
		}
		cart.Clear()
		return s.carts.Save(tx, cart)
	})
}

func (s *CartService) loadCart(tx *gorm.DB, cartID string, forUpdate bool) (*entity.Cart, error) {
	cart, err := s.carts.FindByID(tx, cartID, forUpdate)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartNotFound
	}
	return cart, err
}

func (s *CartService) loadProduct(tx *gorm.DB, productID string) (*entity.Product, error) {
	product, err := s.products.FindByID(tx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	return product, err
}

// classifyMissingItem distinguishes an item that does not exist at all from
// one that lives in another cart.
func (s *CartService) classifyMissingItem(tx *gorm.DB, cartItemID string) error {
	_, err := s.carts.FindItemByID(tx, cartItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrCartItemNotFound
	}
	if err != nil {
		return err
	}
	return ErrItemNotInCart
}

func (s *CartService) project(tx *gorm.DB, cart *entity.Cart) (entity.CartView, error) {
	ids := make([]string, 0, len(cart.Items))
	for i := range cart.Items {
		ids = append(ids, cart.Items[i].ProductID)
	}
	products, err := s.products.FindByIDs(tx, ids)
	if err != nil {
		return entity.CartView{}, err
	}
	return cart.Project(products), nil
}
