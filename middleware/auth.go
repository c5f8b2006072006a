package middleware

import (
	"errors"
	"net/http"

	"sgac_app_go/db"
	"sgac_app_go/models"
	"sgac_app_go/services"

	"github.com/labstack/echo/v4"
)

const (
	// ContextKeyUser is the context key for the authenticated user
	ContextKeyUser = "user"
	// ContextKeyClaims is the context key for the parsed access token
	ContextKeyClaims = "token_claims"
)

// Auth messages
const (
	MsgNotAuthenticated = "Authentication credentials were not provided."
	MsgPermissionDenied = "You do not have permission to perform this action."
)

// RequireToken authenticates bearer access tokens.
// A token that is present must be valid on every method. When required is true,
// unsafe methods also need a token of an active staff account.
func RequireToken(required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := services.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if ok {
				if services.Tokens == nil {
					return services.ErrInvalidToken
				}
				claims, err := services.Tokens.Parse(token, services.TokenTypeAccess)
				if err != nil {
					return err
				}
				user, err := services.ActiveUser(db.DB, claims.UserID)
				if err != nil {
					if errors.Is(err, services.ErrInactiveUser) {
						return echo.NewHTTPError(http.StatusForbidden, MsgPermissionDenied)
					}
					return err
				}
				c.Set(ContextKeyUser, user)
				c.Set(ContextKeyClaims, claims)
			}

			if !required || isSafeMethod(c.Request().Method) {
				return next(c)
			}

			user := GetCurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, MsgNotAuthenticated)
			}
			if !user.IsStaff {
				return echo.NewHTTPError(http.StatusForbidden, MsgPermissionDenied)
			}
			return next(c)
		}
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// GetCurrentUser retrieves the authenticated user from context
func GetCurrentUser(c echo.Context) *models.User {
	user, ok := c.Get(ContextKeyUser).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// ObjectPermission decides whether the request may act on obj.
// Nil allows everything.
var ObjectPermission func(c echo.Context, obj interface{}) error

// CheckObjectPermissions runs the object-level permission hook on a resolved row
func CheckObjectPermissions(c echo.Context, obj interface{}) error {
	if ObjectPermission == nil {
		return nil
	}
	return ObjectPermission(c, obj)
}
