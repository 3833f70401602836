package utils

import (
	"localizebackend/cmd/internal/domain/entity"
	"localizebackend/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// ContextAccountKey is where the auth middleware stores the caller.
const ContextAccountKey = "account"

func GetAccountFromContext(c echo.Context) (*entity.Account, apierror.ErrorResponse) {
	val := c.Get(ContextAccountKey)
	if val == nil {
		log.Warnf("route %s attempted to read nil account from context", c.Request().URL)
		return nil, apierror.UnauthorizedError
	}

	account, ok := val.(*entity.Account)
	if !ok {
		log.Warnf("expected account type at '%s' context key, got %T", ContextAccountKey, val)
		return nil, apierror.InternalServerError
	}
	return account, nil
}
