package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sun-min-kim/TaskManagementAPI/internal/core/domain"
	"github.com/sun-min-kim/TaskManagementAPI/internal/core/ports"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_id"

// Session resolves the request's session cookie against the store and injects
// the bound user id into the echo context. Requests without a resolvable
// session fail uniformly with 401; the response never hints at whether any
// underlying resource exists.
func Session(store ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			userID, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
				}
				return err
			}

			c.Set("user_id", userID)
			c.Set("session_token", cookie.Value)

			return next(c)
		}
	}
}
