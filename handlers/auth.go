package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"sgac_app_go/db"
	"sgac_app_go/middleware"
	"sgac_app_go/models"
	"sgac_app_go/services"

	"github.com/labstack/echo/v4"
)

type tokenRequest struct {
	Username *string `json:"username" validate:"required,notblank"`
	Password *string `json:"password" validate:"required,notblank"`
}

type refreshRequest struct {
	Refresh *string `json:"refresh" validate:"required,notblank"`
}

// ObtainTokenHandler handles POST /auth/token
func ObtainTokenHandler(c echo.Context) error {
	var req tokenRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if err := c.Validate(&req); err != nil {
		return err
	}
	username, password := *req.Username, *req.Password

	user, pair, err := services.Login(db.DB, username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			services.Monitor.TrackFailedLogin(c.RealIP(), username)
		}
		return err
	}

	ctx := middleware.GetAuditContext(c)
	ctx.UserID, ctx.Username = &user.ID, user.Username
	services.LogAuditEvent(db.DB, ctx, models.AuditActionLogin, "user",
		strconv.FormatUint(uint64(user.ID), 10), "token obtained", nil, nil)

	return c.JSON(http.StatusOK, pair)
}

// RefreshTokenHandler handles POST /auth/token/refresh
func RefreshTokenHandler(c echo.Context) error {
	var req refreshRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if err := c.Validate(&req); err != nil {
		return err
	}
	refresh := *req.Refresh

	access, err := services.RefreshAccess(c.Request().Context(), db.DB, refresh)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"access": access})
}

// BlacklistTokenHandler handles POST /auth/token/blacklist
func BlacklistTokenHandler(c echo.Context) error {
	var req refreshRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if err := c.Validate(&req); err != nil {
		return err
	}
	refresh := *req.Refresh

	claims, err := services.RevokeRefresh(c.Request().Context(), refresh)
	if err != nil {
		return err
	}

	ctx := middleware.GetAuditContext(c)
	ctx.UserID, ctx.Username = &claims.UserID, claims.Username
	services.LogAuditEvent(db.DB, ctx, models.AuditActionLogout, "user",
		strconv.FormatUint(uint64(claims.UserID), 10), "refresh token revoked", nil, nil)

	return c.JSON(http.StatusOK, map[string]string{})
}
