package repository

import (
	"github.com/trung2605/bakery-assginment-be/entity"

	"gorm.io/gorm"
)

// ProductRepository is read-only from the cart core's perspective: stock is
// validated against, never decremented, by cart mutations.
type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) FindByID(tx *gorm.DB, productID string) (*entity.Product, error) {
	var product entity.Product
	if err := tx.Where("product_id = ?", productID).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDs loads the given products into a map keyed by id. Missing ids are
// simply absent from the result.
func (r *ProductRepository) FindByIDs(tx *gorm.DB, productIDs []string) (map[string]*entity.Product, error) {
	result := make(map[string]*entity.Product, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}
	var products []entity.Product
	if err := tx.Where("product_id IN ?", productIDs).Find(&products).Error; err != nil {
		return nil, err
	}
	for i := range products {
		result[products[i].ProductID] = &products[i]
	}
	return result, nil
}

func (r *ProductRepository) List(tx *gorm.DB, category string) ([]entity.Product, error) {
	q := tx.Order("product_id")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var products []entity.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Exists(tx *gorm.DB, productID string) (bool, error) {
	var count int64
	err := tx.Model(&entity.Product{}).Where("product_id = ?", productID).Count(&count).Error
	return count > 0, err
}

func (r *ProductRepository) Save(tx *gorm.DB, product *entity.Product) error {
	return tx.Save(product).Error
}

func (r *ProductRepository) Delete(tx *gorm.DB, productID string) error {
	return tx.Where("product_id = ?", productID).Delete(&entity.Product{}).Error
}
