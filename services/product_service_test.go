package services

import (
	"testing"

	"github.com/trung2605/bakery-assginment-be/entity"
	"github.com/trung2605/bakery-assginment-be/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductSaveValidation(t *testing.T) {
	db := openTestDB(t)
	products := NewProductService(db, repository.NewProductRepository(db))

	assert.ErrorIs(t, products.Save(&entity.Product{ProductID: "PRD1", Name: "Bad"}), ErrInvalidProductID)
	assert.ErrorIs(t, products.Save(&entity.Product{ProductID: "prd0001", Name: "Bad"}), ErrInvalidProductID)
	assert.ErrorIs(t, products.Save(&entity.Product{ProductID: "PRD00001", Name: "Bad"}), ErrInvalidProductID)
	assert.ErrorIs(t, products.Save(&entity.Product{ProductID: "PRD0001", Name: "Bad", StockQuantity: -1}), ErrNegativeStock)

	require.NoError(t, products.Save(&entity.Product{
		ProductID:     "PRD0001",
		Name:          "Matcha Chiffon Cake",
		Price:         36000,
		StockQuantity: 5,
		Category:      "Sweet Cakes",
	}))

	got, err := products.Get("PRD0001")
	require.NoError(t, err)
	assert.Equal(t, "Matcha Chiffon Cake", got.Name)

	// Save is an upsert keyed by product id.
	require.NoError(t, products.Save(&entity.Product{
		ProductID:     "PRD0001",
		Name:          "Matcha Chiffon Cake",
		Price:         40000,
		StockQuantity: 8,
		Category:      "Sweet Cakes",
	}))
	got, err = products.Get("PRD0001")
	require.NoError(t, err)
	assert.Equal(t, int64(40000), got.Price)
	assert.Equal(t, 8, got.StockQuantity)
}

func TestProductListFiltersByCategory(t *testing.T) {
	db := openTestDB(t)
	products := NewProductService(db, repository.NewProductRepository(db))
	seedProduct(t, db, "PRD0001", "Matcha Chiffon Cake", 36000, 5)
	bread := seedProduct(t, db, "PRD0002", "Lotus Coconut Milk Bread", 10000, 20)
	require.NoError(t, db.Model(bread).Update("category", "Breads").Error)

	all, err := products.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	breads, err := products.List("Breads")
	require.NoError(t, err)
	require.Len(t, breads, 1)
	assert.Equal(t, "PRD0002", breads[0].ProductID)
}

func TestProductDelete(t *testing.T) {
	db := openTestDB(t)
	products := NewProductService(db, repository.NewProductRepository(db))
	seedProduct(t, db, "PRD0001", "Matcha Chiffon Cake", 36000, 5)

	require.NoError(t, products.Delete("PRD0001"))
	_, err := products.Get("PRD0001")
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, products.Delete("PRD0001"), ErrProductNotFound)
}
