package repository

import (
	"github.com/trung2605/bakery-assginment-be/entity"

	"gorm.io/gorm"
)

type BranchRepository struct {
	DB *gorm.DB
}

func NewBranchRepository(db *gorm.DB) *BranchRepository {
	return &BranchRepository{DB: db}
}

func (r *BranchRepository) List(tx *gorm.DB) ([]entity.Branch, error) {
	var branches []entity.Branch
	if err := tx.Order("id").Find(&branches).Error; err != nil {
		return nil, err
	}
	return branches, nil
}

func (r *BranchRepository) FindByID(tx *gorm.DB, id uint) (*entity.Branch, error) {
	var branch entity.Branch
	if err := tx.First(&branch, id).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *BranchRepository) Create(tx *gorm.DB, branch *entity.Branch) error {
	return tx.Create(branch).Error
}

func (r *BranchRepository) Save(tx *gorm.DB, branch *entity.Branch) error {
	return tx.Save(branch).Error
}

func (r *BranchRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.Branch{}, id).Error
}
