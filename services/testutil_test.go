package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/trung2605/bakery-assginment-be/configs"
	"github.com/trung2605/bakery-assginment-be/entity"
	"github.com/trung2605/bakery-assginment-be/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB gives each test its own migrated in-memory sqlite database. The
// shared cache keeps the database alive across the pooled connections gorm
// opens, and the test name keys the cache so tests stay isolated.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return db
}

func newCartService(t *testing.T, db *gorm.DB) *CartService {
	t.Helper()
	ids := NewIDService(repository.NewIDRepository())
	return NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db), ids, zap.NewNop())
}

func newUserService(t *testing.T, db *gorm.DB) *UserService {
	t.Helper()
	ids := NewIDService(repository.NewIDRepository())
	return NewUserService(db, repository.NewUserRepository(db), repository.NewCartRepository(db), ids, zap.NewNop())
}

func seedProduct(t *testing.T, db *gorm.DB, id, name string, price int64, stock int) *entity.Product {
	t.Helper()
	product := &entity.Product{
		ProductID:     id,
		Name:          name,
		Price:         price,
		StockQuantity: stock,
		Category:      "Sweet Cakes",
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
