package services

import (
	"testing"

	"github.com/trung2605/bakery-assginment-be/entity"
	"github.com/trung2605/bakery-assginment-be/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAllocateProducesSequentialIDs(t *testing.T) {
	db := openTestDB(t)
	ids := NewIDService(repository.NewIDRepository())

	var got []string
	err := db.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < 3; i++ {
			id, err := ids.Allocate(tx, UserIDs)
			if err != nil {
				return err
			}
			got = append(got, id)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"CUS0001", "CUS0002", "CUS0003"}, got)
}

func TestAllocateSeedsCounterFromExistingRows(t *testing.T) {
	db := openTestDB(t)
	ids := NewIDService(repository.NewIDRepository())

	// Rows that predate the counter table must not be reissued.
	require.NoError(t, db.Create(&entity.User{
		UserID:    "CUS0041",
		FirstName: "Trang",
		LastName:  "Nguyen",
		Email:     "trang@example.com",
	}).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		id, err := ids.Allocate(tx, UserIDs)
		if err != nil {
			return err
		}
		assert.Equal(t, "CUS0042", id)
		return nil
	})
	require.NoError(t, err)

	var counter entity.IDCounter
	require.NoError(t, db.Where("entity_type = ?", "user").First(&counter).Error)
	assert.Equal(t, int64(42), counter.LastValue)
}

func TestAllocateExhaustedNamespace(t *testing.T) {
	db := openTestDB(t)
	ids := NewIDService(repository.NewIDRepository())

	require.NoError(t, db.Create(&entity.IDCounter{EntityType: "user", LastValue: 9999}).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := ids.Allocate(tx, UserIDs)
		return err
	})
	assert.ErrorIs(t, err, ErrIDExhausted)
}

func TestAllocateDetectsOccupiedCandidate(t *testing.T) {
	db := openTestDB(t)
	ids := NewIDService(repository.NewIDRepository())

	// A counter behind the table (reset, restored backup) points Allocate at
	// an id that is already taken.
	require.NoError(t, db.Create(&entity.IDCounter{EntityType: "user", LastValue: 0}).Error)
	require.NoError(t, db.Create(&entity.User{
		UserID:    "CUS0001",
		FirstName: "Minh",
		LastName:  "Le",
		Email:     "minh@example.com",
	}).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := ids.Allocate(tx, UserIDs)
		return err
	})
	assert.ErrorIs(t, err, ErrIDConflict)
}

func TestRunWithIDRetryRetriesOnConflictOnly(t *testing.T) {
	db := openTestDB(t)

	attempts := 0
	err := runWithIDRetry(db, func(tx *gorm.DB) error {
		attempts++
		if attempts == 1 {
			return ErrIDConflict
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)

	attempts = 0
	err = runWithIDRetry(db, func(tx *gorm.DB) error {
		attempts++
		return ErrIDExhausted
	})
	assert.ErrorIs(t, err, ErrIDExhausted)
	assert.Equal(t, 1, attempts)

	attempts = 0
	err = runWithIDRetry(db, func(tx *gorm.DB) error {
		attempts++
		return ErrIDConflict
	})
	assert.ErrorIs(t, err, ErrIDConflict)
	assert.Equal(t, idAllocationRetries, attempts)
}
