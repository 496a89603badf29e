package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lockin-app/lockin/models"
)

// UserStore wraps user document access. Every read goes through the legacy
// upgrade shim, so callers never see a V1 shape.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a UserStore.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// GetByEmail loads a user by canonical email.
func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", models.NormalizeEmail(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.upgradeIfLegacy(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID loads a user by primary key.
func (s *UserStore) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.upgradeIfLegacy(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user record.
func (s *UserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

// Save persists mutated user fields.
func (s *UserStore) Save(user *models.User) error {
	return s.db.Save(user).Error
}

// ListAll returns every user, for batch jobs such as the reminder sweep.
func (s *UserStore) ListAll() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DB exposes the underlying handle for stores composed on top of this one.
func (s *UserStore) DB() *gorm.DB {
	return s.db
}
