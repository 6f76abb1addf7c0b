package entity

// IDCounter holds the last numeric suffix handed out for one id namespace
// (users, carts, cart items). The row is locked for the duration of the
// transaction that allocates from it.
type IDCounter struct {
	EntityType string `gorm:"column:entity_type;primaryKey;size:32"`
	LastValue  int64  `gorm:"column:last_value;not null"`
}

func (IDCounter) TableName() string { return "id_counters" }
