package service

import (
	"errors" // Error comparison

	"finance_tracker/internal/domain" // Importing domain models

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// UserService implements user account CRUD and owns password hashing
type UserService struct {
	db *gorm.DB // Database handle
}

// NewUserService creates a user service on top of db
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Create hashes the incoming password and persists the user
func (s *UserService) Create(user *domain.User) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err // Hashing failure
	}
	user.Password = string(hash) // Store the hash, never the plaintext
	if err := s.db.Create(user).Error; err != nil {
		return nil, err // Storage failure (e.g. duplicate username)
	}
	return user, nil // Return the stored record
}

// GetAll returns every user
func (s *UserService) GetAll() ([]domain.User, error) {
	var users []domain.User
	err := s.db.Find(&users).Error
	return users, err
}

// GetByID returns the user with the given id, or ErrNotFound
func (s *UserService) GetByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound // Translate to service error
		}
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns the user with the given username, or ErrNotFound
func (s *UserService) GetByUsername(username string) (*domain.User, error) {
	var user domain.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound // Translate to service error
		}
		return nil, err
	}
	return &user, nil
}

// Update overwrites the mutable fields of an existing user. An empty
// incoming password keeps the stored hash; a non-empty one is re-hashed.
func (s *UserService) Update(id uint, details *domain.User) (*domain.User, error) {
	user, err := s.GetByID(id) // Fails with ErrNotFound if absent
	if err != nil {
		return nil, err
	}
	user.Username = details.Username // Overwrite username
	user.FullName = details.FullName // Overwrite full name
	user.Email = details.Email       // Overwrite email
	user.Role = details.Role         // Overwrite role
	user.Enabled = details.Enabled   // Overwrite enabled flag
	// Re-hash only when a new password was supplied
	if details.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(details.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err // Hashing failure
		}
		user.Password = string(hash) // Replace the stored hash
	}
	if err := s.db.Save(user).Error; err != nil {
		return nil, err // Storage failure
	}
	return user, nil
}

// Delete removes the user with the given id, or fails with ErrNotFound
func (s *UserService) Delete(id uint) error {
	res := s.db.Delete(&domain.User{}, id)
	if res.Error != nil {
		return res.Error // Storage failure
	}
	if res.RowsAffected == 0 {
		return ErrNotFound // Nothing was deleted
	}
	return nil
}

// ToggleStatus flips the enabled flag of an existing user
func (s *UserService) ToggleStatus(id uint) (*domain.User, error) {
	user, err := s.GetByID(id) // Fails with ErrNotFound if absent
	if err != nil {
		return nil, err
	}
	user.Enabled = !user.Enabled // Flip the flag
	if err := s.db.Save(user).Error; err != nil {
		return nil, err // Storage failure
	}
	return user, nil
}

// ExistsByUsername reports whether a user with the given username exists
func (s *UserService) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := s.db.Model(&domain.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}
