package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sgac_app_go/db"
	"sgac_app_go/models"
	"sgac_app_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := "file:mw_" + uuid.NewString() + "?mode=memory&cache=shared"
	testDB, err := gorm.Open(sqlite.Open(dsn), db.GormConfig("test"))
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	err = testDB.AutoMigrate(&models.User{}, &models.RevokedToken{})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	// Set the global DB variable used by middleware
	db.DB = testDB
	services.InitAuth(
		services.NewTokenIssuer("middleware-test-secret-0123456789abcdef", time.Minute, time.Hour),
		services.NewDBRevocationStore(testDB),
	)
	return testDB
}

func accessToken(t *testing.T, user *models.User) string {
	pair, err := services.Tokens.Issue(user)
	require.NoError(t, err)
	return pair.Access
}

func TestRequireToken(t *testing.T) {
	testDB := setupTestDB(t)
	e := echo.New()

	staff, err := services.CreateUser(testDB, "staff", "staff@example.com", "password123", true)
	require.NoError(t, err)
	reader, err := services.CreateUser(testDB, "reader", "", "password123", false)
	require.NoError(t, err)

	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	}

	run := func(method, token string, required bool) (echo.Context, *httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(method, "/careers", nil)
		if token != "" {
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		return c, rec, RequireToken(required)(ok)(c)
	}

	t.Run("SafeMethodWithoutToken", func(t *testing.T) {
		_, rec, err := run(http.MethodGet, "", true)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("MutationWithoutToken", func(t *testing.T) {
		_, _, err := run(http.MethodPost, "", true)
		he, isHTTP := err.(*echo.HTTPError)
		require.True(t, isHTTP)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("MutationAllowedWhenNotRequired", func(t *testing.T) {
		_, rec, err := run(http.MethodDelete, "", false)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("StaffToken", func(t *testing.T) {
		c, rec, err := run(http.MethodPost, accessToken(t, staff), true)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, staff.ID, GetCurrentUser(c).ID)
	})

	t.Run("NonStaffMutation", func(t *testing.T) {
		_, _, err := run(http.MethodPatch, accessToken(t, reader), true)
		he, isHTTP := err.(*echo.HTTPError)
		require.True(t, isHTTP)
		assert.Equal(t, http.StatusForbidden, he.Code)
	})

	t.Run("NonStaffRead", func(t *testing.T) {
		c, _, err := run(http.MethodGet, accessToken(t, reader), true)
		assert.NoError(t, err)
		assert.Equal(t, reader.ID, GetCurrentUser(c).ID)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		_, _, err := run(http.MethodGet, "not-a-token", false)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("RefreshTokenRejected", func(t *testing.T) {
		pair, err := services.Tokens.Issue(staff)
		require.NoError(t, err)
		_, _, err = run(http.MethodPost, pair.Refresh, true)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("InactiveUser", func(t *testing.T) {
		inactive, err := services.CreateUser(testDB, "gone", "", "password123", true)
		require.NoError(t, err)
		token := accessToken(t, inactive)
		require.NoError(t, testDB.Model(inactive).Update("is_active", false).Error)

		_, _, err = run(http.MethodGet, token, false)
		he, isHTTP := err.(*echo.HTTPError)
		require.True(t, isHTTP)
		assert.Equal(t, http.StatusForbidden, he.Code)
	})
}

func TestCheckObjectPermissions(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NoError(t, CheckObjectPermissions(c, &models.Career{}))

	ObjectPermission = func(c echo.Context, obj interface{}) error {
		return echo.NewHTTPError(http.StatusForbidden, MsgPermissionDenied)
	}
	defer func() { ObjectPermission = nil }()

	assert.Error(t, CheckObjectPermissions(c, &models.Career{}))
}
