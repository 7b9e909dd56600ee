// Package auth adapts persisted user records into the principals the
// session layer works with.
package auth

import (
	"errors" // Sentinel errors

	"finance_tracker/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// ErrUserNotFound is the authentication error for an unknown username
var ErrUserNotFound = errors.New("user not found")

// Principal is the authenticated identity attached to a session
type Principal struct {
	ID        uint   // Database identifier of the account
	Username  string // Login name
	Password  string // Stored bcrypt hash, compared during login
	Authority string // Single authority token derived from the role
	Enabled   bool   // Whether the account may log in
}

// LoadByUsername looks up a user record and exposes it as a principal.
// It fails with ErrUserNotFound when no such username exists.
func LoadByUsername(db *gorm.DB, username string) (*Principal, error) {
	var user domain.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound // Unknown username
		}
		return nil, err // Storage failure
	}
	// Expose the record as a principal with one derived authority
	return &Principal{
		ID:        user.ID,               // Account identifier
		Username:  user.Username,         // Login name
		Password:  user.Password,         // Stored hash
		Authority: user.Role.Authority(), // Role mapped to its authority token
		Enabled:   user.Enabled,          // Enabled flag
	}, nil
}
