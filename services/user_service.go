package services

import (
	"errors"
	"strings"

	"github.com/trung2605/bakery-assginment-be/entity"
	"github.com/trung2605/bakery-assginment-be/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterIn struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=100"`
	Phone     string `json:"phone" binding:"max=20"`
	Password  string `json:"password" binding:"required,min=6,max=255"`
}

// UserService owns the user lifecycle, including the rule that every
// registered user gets exactly one empty cart, provisioned in the same
// transaction that creates the user row.
type UserService struct {
	db    *gorm.DB
	users *repository.UserRepository
	carts *repository.CartRepository
	ids   *IDService
	log   *zap.Logger
}

func NewUserService(db *gorm.DB, users *repository.UserRepository, carts *repository.CartRepository, ids *IDService, log *zap.Logger) *UserService {
	return &UserService{db: db, users: users, carts: carts, ids: ids, log: log}
}

// Register creates a user with a CUS id and provisions their cart. The cart
// lookup-before-create makes provisioning idempotent.
func (s *UserService) Register(in *RegisterIn) (*entity.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	phone := strings.TrimSpace(in.Phone)

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	var user *entity.User
	var cartID string
	err = runWithIDRetry(s.db, func(tx *gorm.DB) error {
		taken, err := s.users.ExistsByEmail(tx, email)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}
		if phone != "" {
			taken, err = s.users.ExistsByPhone(tx, phone)
			if err != nil {
				return err
			}
			if taken {
				return ErrPhoneTaken
			}
		}

		userID, err := s.ids.Allocate(tx, UserIDs)
		if err != nil {
			return err
		}
		u := &entity.User{
			UserID:       userID,
			FirstName:    strings.TrimSpace(in.FirstName),
			LastName:     strings.TrimSpace(in.LastName),
			Email:        email,
			PasswordHash: string(hashed),
			Role:         entity.RoleCustomer,
		}
		if phone != "" {
			u.Phone = &phone
		}
		if err := s.users.Create(tx, u); err != nil {
			return err
		}

		cid, err := s.provisionCart(tx, userID)
		if err != nil {
			return err
		}
		user, cartID = u, cid
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	s.log.Info("user registered", zap.String("userId", user.UserID), zap.String("cartId", cartID))
	return user, cartID, nil
}

// provisionCart returns the id of the user's cart, creating an empty one if
// none exists yet.
func (s *UserService) provisionCart(tx *gorm.DB, userID string) (string, error) {
	existing, err := s.carts.FindByOwner(tx, userID)
	if err == nil {
		return existing.CartID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	cartID, err := s.ids.Allocate(tx, CartIDs)
	if err != nil {
		return "", err
	}
	cart := &entity.Cart{CartID: cartID, UserID: &userID}
	if err := s.carts.Create(tx, cart); err != nil {
		return "", err
	}
	return cartID, nil
}

// Authenticate checks a password against the stored hash. The identifier may
// be an email address or a CUS user id.
func (s *UserService) Authenticate(identifier, password string) (*entity.User, error) {
	identifier = strings.TrimSpace(identifier)
	user, err := s.users.FindByEmail(s.db, strings.ToLower(identifier))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = s.users.FindByID(s.db, identifier)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// CartIDForUser returns the id of the user's cart, if one exists.
func (s *UserService) CartIDForUser(userID string) (string, error) {
	cart, err := s.carts.FindByOwner(s.db, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return cart.CartID, nil
}

func (s *UserService) Get(userID string) (*entity.User, error) {
	user, err := s.users.FindByID(s.db, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *UserService) List() ([]entity.User, error) {
	return s.users.List(s.db)
}

// UpdateProfile changes name and phone. Email and role stay fixed here.
func (s *UserService) UpdateProfile(userID string, updates map[string]any) (*entity.User, error) {
	allowed := map[string]bool{"first_name": true, "last_name": true, "phone": true}
	for key := range updates {
		if !allowed[key] {
			delete(updates, key)
		}
	}
	// An empty phone means "no phone". It has to land as NULL: the column is
	// unique-indexed, and only NULLs may repeat.
	if v, ok := updates["phone"]; ok {
		s, _ := v.(string)
		if s = strings.TrimSpace(s); s == "" {
			updates["phone"] = nil
		} else {
			updates["phone"] = s
		}
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.users.FindByID(tx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		return s.users.Update(tx, userID, updates)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// Delete removes the user and detaches their cart instead of deleting it, so
// an in-progress guest checkout survives the account.
func (s *UserService) Delete(userID string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.users.FindByID(tx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if err := s.carts.DetachOwner(tx, userID); err != nil {
			return err
		}
		return s.users.Delete(tx, userID)
	})
	if err == nil {
		s.log.Info("user deleted", zap.String("userId", userID))
	}
	return err
}
