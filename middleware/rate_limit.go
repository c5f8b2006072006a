package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// Throttle is a per-client request budget: Requests per Per, refilled evenly
type Throttle struct {
	Requests int
	Per      time.Duration
	Message  string
	// Key identifies the client; defaults to the real IP
	Key func(c echo.Context) string
}

// TokenThrottle limits token requests to 10 per minute per IP
var TokenThrottle = Throttle{
	Requests: 10,
	Per:      time.Minute,
	Message:  "Request was throttled. Please wait a minute before trying again.",
}

func (t Throttle) interval() time.Duration {
	return t.Per / time.Duration(t.Requests)
}

// RetryAfter is the whole number of seconds until the next request is allowed
func (t Throttle) RetryAfter() int {
	return int(math.Ceil(t.interval().Seconds()))
}

// Middleware builds the limiter with its own in-memory store.
// Each call starts with a full budget for every client.
func (t Throttle) Middleware() echo.MiddlewareFunc {
	key := t.Key
	if key == nil {
		key = func(c echo.Context) string { return c.RealIP() }
	}
	message := t.Message
	if message == "" {
		message = "Too many requests. Please try again later."
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Every(t.interval()),
		Burst:     t.Requests,
		ExpiresIn: t.Per,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return key(c), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			c.Response().Header().Set("Retry-After", strconv.Itoa(t.RetryAfter()))
			return echo.NewHTTPError(http.StatusTooManyRequests, message)
		},
	})
}
