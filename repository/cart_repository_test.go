package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/trung2605/bakery-assginment-be/configs"
	"github.com/trung2605/bakery-assginment-be/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return db
}

func itemRows(t *testing.T, db *gorm.DB, cartID string) []entity.CartItem {
	t.Helper()
	var rows []entity.CartItem
	require.NoError(t, db.Where("cart_id = ?", cartID).Order("cart_item_id").Find(&rows).Error)
	return rows
}

func TestSaveAppliesItemDiff(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	cart := &entity.Cart{CartID: "CRT0001"}
	require.NoError(t, repo.Create(db, cart))

	cart.Items = []entity.CartItem{
		{CartItemID: "CIT0001", CartID: "CRT0001", ProductID: "PRD0001", Quantity: 2, PriceAtAddition: 36000},
		{CartItemID: "CIT0002", CartID: "CRT0001", ProductID: "PRD0002", Quantity: 1, PriceAtAddition: 45000},
	}
	require.NoError(t, repo.Save(db, cart))
	require.Len(t, itemRows(t, db, "CRT0001"), 2)

	// Drop one line, change another, add a third.
	cart.Items = []entity.CartItem{
		{CartItemID: "CIT0002", CartID: "CRT0001", ProductID: "PRD0002", Quantity: 4, PriceAtAddition: 45000},
		{CartItemID: "CIT0003", CartID: "CRT0001", ProductID: "PRD0003", Quantity: 1, PriceAtAddition: 10000},
	}
	require.NoError(t, repo.Save(db, cart))

	rows := itemRows(t, db, "CRT0001")
	require.Len(t, rows, 2)
	assert.Equal(t, "CIT0002", rows[0].CartItemID)
	assert.Equal(t, 4, rows[0].Quantity)
	assert.Equal(t, int64(45000), rows[0].PriceAtAddition)
	assert.Equal(t, "CIT0003", rows[1].CartItemID)

	// The dropped line is really gone, not orphaned under another cart.
	var count int64
	require.NoError(t, db.Model(&entity.CartItem{}).Where("cart_item_id = ?", "CIT0001").Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSaveBumpsLastModifiedAtOnce(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	cart := &entity.Cart{CartID: "CRT0001"}
	require.NoError(t, repo.Create(db, cart))
	created := cart.LastModifiedAt

	time.Sleep(20 * time.Millisecond)
	cart.Items = []entity.CartItem{
		{CartItemID: "CIT0001", CartID: "CRT0001", ProductID: "PRD0001", Quantity: 1, PriceAtAddition: 36000},
	}
	require.NoError(t, repo.Save(db, cart))

	stored, err := repo.FindByID(db, "CRT0001", false)
	require.NoError(t, err)
	assert.True(t, stored.LastModifiedAt.After(created))
	assert.Equal(t, cart.CreatedAt.Unix(), stored.CreatedAt.Unix())
}

func TestFindByIDPreloadsItems(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	cart := &entity.Cart{CartID: "CRT0001"}
	require.NoError(t, repo.Create(db, cart))
	cart.Items = []entity.CartItem{
		{CartItemID: "CIT0001", CartID: "CRT0001", ProductID: "PRD0001", Quantity: 2, PriceAtAddition: 36000},
	}
	require.NoError(t, repo.Save(db, cart))

	loaded, err := repo.FindByID(db, "CRT0001", true)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "CIT0001", loaded.Items[0].CartItemID)

	_, err = repo.FindByID(db, "CRT9999", false)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindByIDReturnsItemsInStableOrder(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	cart := &entity.Cart{CartID: "CRT0001"}
	require.NoError(t, repo.Create(db, cart))

	// Insert out of id order; reads must not depend on insertion order.
	for _, id := range []string{"CIT0003", "CIT0001", "CIT0002"} {
		require.NoError(t, db.Create(&entity.CartItem{
			CartItemID: id, CartID: "CRT0001", ProductID: "PRD" + id[3:], Quantity: 1, PriceAtAddition: 36000,
		}).Error)
	}

	loaded, err := repo.FindByID(db, "CRT0001", false)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 3)
	assert.Equal(t, "CIT0001", loaded.Items[0].CartItemID)
	assert.Equal(t, "CIT0002", loaded.Items[1].CartItemID)
	assert.Equal(t, "CIT0003", loaded.Items[2].CartItemID)
}

func TestFindItemByIDCrossesCarts(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	cart := &entity.Cart{CartID: "CRT0001"}
	require.NoError(t, repo.Create(db, cart))
	cart.Items = []entity.CartItem{
		{CartItemID: "CIT0001", CartID: "CRT0001", ProductID: "PRD0001", Quantity: 1, PriceAtAddition: 36000},
	}
	require.NoError(t, repo.Save(db, cart))

	item, err := repo.FindItemByID(db, "CIT0001")
	require.NoError(t, err)
	assert.Equal(t, "CRT0001", item.CartID)

	_, err = repo.FindItemByID(db, "CIT9999")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDetachOwner(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	userID := "CUS0001"
	cart := &entity.Cart{CartID: "CRT0001", UserID: &userID}
	require.NoError(t, repo.Create(db, cart))

	require.NoError(t, repo.DetachOwner(db, userID))

	stored, err := repo.FindByID(db, "CRT0001", false)
	require.NoError(t, err)
	assert.Nil(t, stored.UserID)

	_, err = repo.FindByOwner(db, userID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
