package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"sgac_app_go/services"
	"sgac_app_go/validation"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Error detail messages
const (
	MsgNotFound      = "Not found."
	MsgInvalidPage   = "Invalid page."
	MsgInternalError = "Internal server error."
)

// detail is the body of every non-validation error
type detail struct {
	Detail string `json:"detail"`
}

// HTTPErrorHandler renders service, validation and echo errors as JSON bodies
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := errorResponse(err, c.Request().Method)
	if status >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		zap.L().Error("failed to write error response", zap.Error(err))
	}
}

func errorResponse(err error, method string) (int, interface{}) {
	var fieldErrs validation.Errors
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &fieldErrs):
		return http.StatusBadRequest, fieldErrs
	case errors.Is(err, services.ErrInvalidPage):
		return http.StatusNotFound, detail{MsgInvalidPage}
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, detail{MsgNotFound}
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict, validation.General(services.ErrConflict.Error())
	case errors.Is(err, services.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, detail{err.Error()}
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrInvalidToken):
		return http.StatusUnauthorized, detail{err.Error()}
	case errors.Is(err, services.ErrInactiveUser):
		return http.StatusForbidden, detail{err.Error()}
	case errors.As(err, &httpErr):
		return httpErr.Code, detail{httpErrorMessage(httpErr, method)}
	}
	return http.StatusInternalServerError, detail{MsgInternalError}
}

// httpErrorMessage rewrites echo's router messages into the API's wording
func httpErrorMessage(he *echo.HTTPError, method string) string {
	switch he.Code {
	case http.StatusNotFound:
		return MsgNotFound
	case http.StatusMethodNotAllowed:
		return fmt.Sprintf("Method %q not allowed.", method)
	case http.StatusInternalServerError:
		return MsgInternalError
	}
	if msg, ok := he.Message.(string); ok {
		return msg
	}
	return http.StatusText(he.Code)
}
