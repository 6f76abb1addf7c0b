package repository

import (
	"testing"

	"github.com/trung2605/bakery-assginment-be/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextValueIncrementsExistingCounter(t *testing.T) {
	db := openTestDB(t)
	repo := NewIDRepository()
	require.NoError(t, db.Create(&entity.IDCounter{EntityType: "cart", LastValue: 7}).Error)

	next, err := repo.NextValue(db, "cart", "carts", "cart_id", "CRT")
	require.NoError(t, err)
	assert.Equal(t, int64(8), next)
}

func TestCreateCounterReportsConcurrentLoser(t *testing.T) {
	db := openTestDB(t)
	repo := NewIDRepository()

	// The winner of a first-allocation race has already written the row.
	require.NoError(t, db.Create(&entity.IDCounter{EntityType: "user", LastValue: 3}).Error)

	err := repo.createCounter(db, &entity.IDCounter{EntityType: "user", LastValue: 0})
	assert.ErrorIs(t, err, ErrCounterConflict)

	// The loser must not have clobbered the winner's counter.
	var counter entity.IDCounter
	require.NoError(t, db.Where("entity_type = ?", "user").First(&counter).Error)
	assert.Equal(t, int64(3), counter.LastValue)
}
