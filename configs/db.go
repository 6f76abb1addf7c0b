package configs

import (
	"fmt"

	"github.com/trung2605/bakery-assginment-be/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the database selected by DB_DRIVER: sqlite for local
// development, postgres everywhere row locking matters.
func Connect(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBSource)
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}
	// TranslateError turns driver-specific unique violations into
	// gorm.ErrDuplicatedKey, which the id allocator relies on.
	return gorm.Open(dialector, &gorm.Config{TranslateError: true})
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Branch{},
		&entity.Cart{},
		&entity.CartItem{},
		&entity.IDCounter{},
	)
}
