package services

import (
	"errors"
	"fmt"

	"github.com/trung2605/bakery-assginment-be/repository"

	"gorm.io/gorm"
)

// IDNamespace describes one family of sequential ids: which table and column
// they live in, their prefix, and the fixed total length of the id string.
type IDNamespace struct {
	EntityType string
	Table      string
	Column     string
	Prefix     string
	Length     int
}

var (
	UserIDs     = IDNamespace{EntityType: "user", Table: "users", Column: "user_id", Prefix: "CUS", Length: 7}
	CartIDs     = IDNamespace{EntityType: "cart", Table: "carts", Column: "cart_id", Prefix: "CRT", Length: 7}
	CartItemIDs = IDNamespace{EntityType: "cart_item", Table: "cart_items", Column: "cart_item_id", Prefix: "CIT", Length: 7}
)

// idAllocationRetries bounds how often a conflicting allocate+insert
// transaction is re-run before the conflict surfaces as a server failure.
const idAllocationRetries = 3

// IDService allocates prefixed, zero-padded, strictly increasing ids. It must
// be called inside the same transaction that inserts the row carrying the id:
// the locked counter row then guards the whole allocate+insert unit.
type IDService struct {
	ids *repository.IDRepository
}

func NewIDService(ids *repository.IDRepository) *IDService {
	return &IDService{ids: ids}
}

// Allocate returns the next id in the namespace, e.g. CUS0007 for prefix CUS
// and length 7. Returns ErrIDExhausted when the numeric suffix no longer fits
// the available digits, and ErrIDConflict when the candidate already exists
// in the target table.
func (s *IDService) Allocate(tx *gorm.DB, ns IDNamespace) (string, error) {
	next, err := s.ids.NextValue(tx, ns.EntityType, ns.Table, ns.Column, ns.Prefix)
	if errors.Is(err, repository.ErrCounterConflict) {
		return "", fmt.Errorf("%w: counter for %s created concurrently", ErrIDConflict, ns.EntityType)
	}
	if err != nil {
		return "", err
	}

	digits := ns.Length - len(ns.Prefix)
	max := int64(1)
	for i := 0; i < digits; i++ {
		max *= 10
	}
	if next >= max {
		return "", ErrIDExhausted
	}

	id := fmt.Sprintf("%s%0*d", ns.Prefix, digits, next)

	// The counter lock should make collisions impossible, but a row inserted
	// out of band (seed data, manual fix) can still occupy the candidate.
	taken, err := s.ids.Exists(tx, ns.Table, ns.Column, id)
	if err != nil {
		return "", err
	}
	if taken {
		return "", fmt.Errorf("%w: %s already present in %s", ErrIDConflict, id, ns.Table)
	}
	return id, nil
}

// runWithIDRetry executes fn as one transaction, re-running it when id
// allocation conflicted. Any other error, including ErrIDExhausted, passes
// through on the first attempt.
func runWithIDRetry(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 0; attempt < idAllocationRetries; attempt++ {
		err = db.Transaction(fn)
		if err == nil || !errors.Is(err, ErrIDConflict) {
			return err
		}
	}
	return err
}
