package services

import (
	"errors"

	"github.com/trung2605/bakery-assginment-be/entity"
	"github.com/trung2605/bakery-assginment-be/repository"

	"gorm.io/gorm"
)

type BranchService struct {
	db       *gorm.DB
	branches *repository.BranchRepository
}

func NewBranchService(db *gorm.DB, branches *repository.BranchRepository) *BranchService {
	return &BranchService{db: db, branches: branches}
}

func (s *BranchService) List() ([]entity.Branch, error) {
	return s.branches.List(s.db)
}

func (s *BranchService) Get(id uint) (*entity.Branch, error) {
	branch, err := s.branches.FindByID(s.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBranchNotFound
	}
	return branch, err
}

func (s *BranchService) Create(branch *entity.Branch) error {
	return s.branches.Create(s.db, branch)
}

func (s *BranchService) Update(id uint, branch *entity.Branch) (*entity.Branch, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	existing.Name = branch.Name
	existing.Address = branch.Address
	existing.Hotline = branch.Hotline
	existing.MapURL = branch.MapURL
	if err := s.branches.Save(s.db, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *BranchService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.branches.Delete(s.db, id)
}
