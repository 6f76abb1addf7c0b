package repository

import (
	"errors"
	"fmt"

	"github.com/trung2605/bakery-assginment-be/entity"

	"gorm.io/gorm"
)

// ErrCounterConflict reports that another transaction created the counter row
// for a namespace first. FOR UPDATE cannot lock a row that does not exist yet,
// so two concurrent first allocations can both reach the insert; the loser
// gets this error and retries the whole transaction.
var ErrCounterConflict = errors.New("id counter created concurrently")

// IDRepository manages the id_counters table backing sequential id
// allocation. All methods operate on the caller's transaction: the counter
// row stays locked until that transaction commits, so two concurrent
// allocations for the same namespace cannot read the same value.
type IDRepository struct{}

func NewIDRepository() *IDRepository { return &IDRepository{} }

// NextValue increments and returns the counter for entityType. A missing
// counter is seeded from the highest numeric suffix already present in
// table.column, so databases that predate the counter keep their sequence.
func (r *IDRepository) NextValue(tx *gorm.DB, entityType, table, column, prefix string) (int64, error) {
	var counter entity.IDCounter
	err := withRowLock(tx).Where("entity_type = ?", entityType).First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seed, serr := r.maxSuffix(tx, table, column, prefix)
		if serr != nil {
			return 0, serr
		}
		counter = entity.IDCounter{EntityType: entityType, LastValue: seed}
		if cerr := r.createCounter(tx, &counter); cerr != nil {
			return 0, cerr
		}
	} else if err != nil {
		return 0, err
	}

	counter.LastValue++
	if err := tx.Model(&entity.IDCounter{}).
		Where("entity_type = ?", entityType).
		Update("last_value", counter.LastValue).Error; err != nil {
		return 0, err
	}
	return counter.LastValue, nil
}

// createCounter inserts the first counter row for a namespace. A concurrent
// first allocation loses here on the entity_type primary key; the duplicate
// violation comes back as ErrCounterConflict so the caller can retry.
func (r *IDRepository) createCounter(tx *gorm.DB, counter *entity.IDCounter) error {
	if err := tx.Create(counter).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCounterConflict
		}
		return err
	}
	return nil
}

// Exists reports whether an id is already present in table.column. Used as a
// final collision check before the allocated id is handed out.
func (r *IDRepository) Exists(tx *gorm.DB, table, column, id string) (bool, error) {
	var count int64
	err := tx.Table(table).Where(fmt.Sprintf("%s = ?", column), id).Count(&count).Error
	return count > 0, err
}

// maxSuffix reads the largest numeric suffix among ids starting with prefix,
// comparing numerically so e.g. a 9 sorts below a 10.
func (r *IDRepository) maxSuffix(tx *gorm.DB, table, column, prefix string) (int64, error) {
	var max int64
	query := fmt.Sprintf(
		"SELECT COALESCE(MAX(CAST(SUBSTR(%s, %d) AS INTEGER)), 0) FROM %s WHERE %s LIKE ?",
		column, len(prefix)+1, table, column,
	)
	err := tx.Raw(query, prefix+"%").Scan(&max).Error
	return max, err
}
