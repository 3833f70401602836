package utils

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// BearerToken extracts the raw token from the Authorization header.
func BearerToken(ctx echo.Context) string {
	return sanitizeToken(ctx.Request().Header.Get(echo.HeaderAuthorization))
}

func sanitizeToken(token string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
}
