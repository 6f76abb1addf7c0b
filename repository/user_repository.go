package repository

import (
	"github.com/trung2605/bakery-assginment-be/entity"

	"gorm.io/gorm"
)

// UserRepository talks to the users table only; cart provisioning on
// registration lives in the service layer.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(tx *gorm.DB, userID string) (*entity.User, error) {
	var user entity.User
	if err := tx.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(tx *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	if err := tx.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ExistsByEmail(tx *gorm.DB, email string) (bool, error) {
	var count int64
	err := tx.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) ExistsByPhone(tx *gorm.DB, phone string) (bool, error) {
	var count int64
	err := tx.Model(&entity.User{}).Where("phone = ?", phone).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Create(tx *gorm.DB, user *entity.User) error {
	return tx.Create(user).Error
}

func (r *UserRepository) Update(tx *gorm.DB, userID string, updates map[string]any) error {
	return tx.Model(&entity.User{}).Where("user_id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) Delete(tx *gorm.DB, userID string) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.User{}).Error
}

func (r *UserRepository) List(tx *gorm.DB) ([]entity.User, error) {
	var users []entity.User
	if err := tx.Order("user_id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
