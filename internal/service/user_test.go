package service

import (
	"testing"

	"finance_tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newUser builds a minimal valid user for tests
func newUser(username string) *domain.User {
	return &domain.User{
		Username: username,
		Password: "password123",
		FullName: "Test User",
		Email:    "test@example.com",
		Role:     domain.RoleUser,
		Enabled:  true,
	}
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	created, err := svc.Create(newUser("testuser"))
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.NotEqual(t, "password123", created.Password)
	// The stored hash must verify against the plaintext
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))
}

func TestCreateUserDuplicateUsernameFails(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.Create(newUser("testuser"))
	require.NoError(t, err)
	_, err = svc.Create(newUser("testuser"))
	assert.Error(t, err)
}

func TestGetByUsername(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	_, err := svc.Create(newUser("testuser"))
	require.NoError(t, err)

	user, err := svc.GetByUsername("testuser")
	require.NoError(t, err)
	assert.Equal(t, "testuser", user.Username)

	_, err = svc.GetByUsername("nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUserEmptyPasswordKeepsHash(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	created, err := svc.Create(newUser("testuser"))
	require.NoError(t, err)
	storedHash := created.Password

	details := newUser("updateduser")
	details.Password = "" // No password change requested
	details.FullName = "Updated User"
	details.Role = domain.RoleAdmin
	details.Enabled = false

	updated, err := svc.Update(created.ID, details)
	require.NoError(t, err)

	assert.Equal(t, storedHash, updated.Password)
	assert.Equal(t, "updateduser", updated.Username)
	assert.Equal(t, "Updated User", updated.FullName)
	assert.Equal(t, domain.RoleAdmin, updated.Role)
	assert.False(t, updated.Enabled)
}

func TestUpdateUserNewPasswordIsRehashed(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	created, err := svc.Create(newUser("testuser"))
	require.NoError(t, err)
	oldHash := created.Password

	details := newUser("testuser")
	details.Password = "newpassword456"

	updated, err := svc.Update(created.ID, details)
	require.NoError(t, err)

	assert.NotEqual(t, oldHash, updated.Password)
	assert.NotEqual(t, "newpassword456", updated.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpassword456")))
}

func TestUpdateUserNotFound(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.Update(999, newUser("nobody"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleStatusTwiceRestoresOriginal(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	created, err := svc.Create(newUser("testuser"))
	require.NoError(t, err)
	require.True(t, created.Enabled)

	once, err := svc.ToggleStatus(created.ID)
	require.NoError(t, err)
	assert.False(t, once.Enabled)

	twice, err := svc.ToggleStatus(created.ID)
	require.NoError(t, err)
	assert.True(t, twice.Enabled)

	_, err = svc.ToggleStatus(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExistsByUsername(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	_, err := svc.Create(newUser("testuser"))
	require.NoError(t, err)

	exists, err := svc.ExistsByUsername("testuser")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.ExistsByUsername("nonexistent")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteUser(t *testing.T) {
	svc := NewUserService(newTestDB(t))
	created, err := svc.Create(newUser("testuser"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.GetByID(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again fails without touching anything else
	assert.ErrorIs(t, svc.Delete(created.ID), ErrNotFound)
}
