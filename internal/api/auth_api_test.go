package api

import (
	"net/http"
	"testing"

	"finance_tracker/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginIssuesToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/login", map[string]any{
		"username": "user1",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp AuthResponse
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)

	// The issued token opens an authenticated session
	w = env.do(t, http.MethodGet, "/dashboard", nil, resp.Token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	env := newTestEnv(t)

	// Wrong password
	w := env.do(t, http.MethodPost, "/login", map[string]any{
		"username": "user1",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	wrongPassword := w.Body.String()

	// Unknown username gets the exact same answer
	w = env.do(t, http.MethodPost, "/login", map[string]any{
		"username": "nonexistent",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, wrongPassword, w.Body.String())
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	env := newTestEnv(t)
	target, err := env.userSvc.GetByUsername("user1")
	require.NoError(t, err)
	_, err = env.userSvc.ToggleStatus(target.ID) // Disable the account
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/login", map[string]any{
		"username": "user1",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDashboardShowsSessionUserAndTransactions(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.txnSvc.Create(&domain.Transaction{
		Description: "Fixture",
		Amount:      decimal.RequireFromString("10.00"),
		Type:        domain.TxDebit,
		Status:      domain.TxCompleted,
		Category:    "Misc",
	})
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/dashboard", nil, env.userToken)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Username     string               `json:"username"`
		Transactions []domain.Transaction `json:"transactions"`
	}
	decode(t, w, &body)
	assert.Equal(t, "user1", body.Username)
	assert.Len(t, body.Transactions, 1)
}

func TestDashboardRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/dashboard", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutRedirectsToLoginView(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/logout", nil, env.userToken)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?logout", w.Header().Get("Location"))

	// The login view acknowledges the logout indicator
	w = env.do(t, http.MethodGet, "/login?logout", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "logged out")
}
