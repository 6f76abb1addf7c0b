package services

import (
	"errors"
	"regexp"

	"github.com/trung2605/bakery-assginment-be/entity"
	"github.com/trung2605/bakery-assginment-be/repository"

	"gorm.io/gorm"
)

// Product ids are assigned by the catalog owner, not allocated: PRD plus four
// digits, seven characters total like every other id in the schema.
var productIDPattern = regexp.MustCompile(`^PRD\d{4}$`)

type ProductService struct {
	db       *gorm.DB
	products *repository.ProductRepository
}

func NewProductService(db *gorm.DB, products *repository.ProductRepository) *ProductService {
	return &ProductService{db: db, products: products}
}

func (s *ProductService) List(category string) ([]entity.Product, error) {
	return s.products.List(s.db, category)
}

func (s *ProductService) Get(productID string) (*entity.Product, error) {
	product, err := s.products.FindByID(s.db, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	return product, err
}

func (s *ProductService) Save(product *entity.Product) error {
	if !productIDPattern.MatchString(product.ProductID) {
		return ErrInvalidProductID
	}
	if product.StockQuantity < 0 {
		return ErrNegativeStock
	}
	return s.products.Save(s.db, product)
}

func (s *ProductService) Delete(productID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		exists, err := s.products.Exists(tx, productID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrProductNotFound
		}
		return s.products.Delete(tx, productID)
	})
}
