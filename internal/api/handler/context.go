package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the user id injected by the Session middleware and
// performs a fast-fail check before any service call: an empty id means the
// middleware did not run or the session was not resolved, so the request is
// rejected before it can touch the store.
func ctxUserID(c echo.Context) (string, error) {
	uid, _ := c.Get("user_id").(string)
	if uid == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return uid, nil
}
