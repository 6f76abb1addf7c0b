package entity

import "time"

// Role values stored on users.role.
const (
	RoleCustomer = 0
	RoleAdmin    = 1
)

type User struct {
	UserID       string    `gorm:"column:user_id;primaryKey;size:7" json:"userId"`
	FirstName    string    `gorm:"size:100" json:"firstName"`
	LastName     string    `gorm:"size:100" json:"lastName"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone        *string   `gorm:"size:20;uniqueIndex" json:"phone,omitempty"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         int       `gorm:"default:0" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (User) TableName() string { return "users" }
