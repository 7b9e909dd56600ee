package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"finance_tracker/internal/domain"
	"finance_tracker/internal/service"
	"finance_tracker/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testSecret signs session tokens in tests
const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// testEnv bundles a wired router with direct service access and
// ready-made session tokens for an admin and a regular user
type testEnv struct {
	router     *gin.Engine
	userSvc    *service.UserService
	txnSvc     *service.TransactionService
	adminToken string
	userToken  string
}

// newTestEnv builds a full application instance on an in-memory
// database. Redis is nil: caching and revocation are disabled.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Transaction{}))

	env := &testEnv{
		router:  NewRouter(db, nil, testSecret),
		userSvc: service.NewUserService(db),
		txnSvc:  service.NewTransactionService(db),
	}

	admin, err := env.userSvc.Create(&domain.User{
		Username: "admin", Password: "admin123", FullName: "Admin User",
		Email: "admin@payan.com", Role: domain.RoleAdmin, Enabled: true,
	})
	require.NoError(t, err)
	regular, err := env.userSvc.Create(&domain.User{
		Username: "user1", Password: "password123", FullName: "John Doe",
		Email: "john.doe@example.com", Role: domain.RoleUser, Enabled: true,
	})
	require.NoError(t, err)

	env.adminToken, err = utils.GenerateJWT(admin.ID, testSecret)
	require.NoError(t, err)
	env.userToken, err = utils.GenerateJWT(regular.ID, testSecret)
	require.NoError(t, err)
	return env
}

// do performs a request against the router, optionally with a JSON body
// and a bearer token, and returns the recorded response
func (env *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a recorded JSON body into dest
func decode(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}
