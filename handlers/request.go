package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"sgac_app_go/config"
	"sgac_app_go/dto"
	"sgac_app_go/validation"

	"github.com/labstack/echo/v4"
)

// getConfig returns the configuration stored on the context by the server
func getConfig(c echo.Context) *config.Config {
	if cfg, ok := c.Get("config").(*config.Config); ok {
		return cfg
	}
	return &config.Config{PageSize: 10, MaxPageSize: 100, MaxUploadMB: 10}
}

// bindJSON decodes the request body into dst.
// Type mismatches become field errors; an empty body leaves dst untouched.
// Request DTOs keep field-level mismatches and report them from Validate.
func bindJSON(c echo.Context, dst interface{}) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return nil
	}

	if ct := req.Header.Get(echo.HeaderContentType); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != echo.MIMEApplicationJSON {
			return echo.NewHTTPError(http.StatusUnsupportedMediaType,
				fmt.Sprintf("Unsupported media type %q in request.", ct))
		}
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	err = dto.Decode(body, dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return validation.General(fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", typeErr.Value))
		}
		errs := validation.Errors{}
		errs.Add(typeErr.Field, validation.TypeMessage(typeErr.Type))
		return errs
	}
	return echo.NewHTTPError(http.StatusBadRequest, "JSON parse error - "+err.Error())
}
