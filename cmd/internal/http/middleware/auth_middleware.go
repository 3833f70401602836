package middleware

import (
	"localizebackend/cmd/internal/domain/entity"
	"localizebackend/cmd/internal/infrastructure/token"
	"localizebackend/cmd/internal/utils"
	"localizebackend/cmd/internal/utils/apierror"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type AccountRepository interface {
	FindByID(id uuid.UUID) (*entity.Account, error)
}

type TokenValidator interface {
	Validate(tokenString string) (*token.Claims, error)
}

type AuthMiddlewareConfig struct {
	AccountRepo AccountRepository
	Tokens      TokenValidator
}

// NewAuthMiddleware creates the handler with dependencies injected
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := utils.BearerToken(c)
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			claims, err := cfg.Tokens.Validate(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			accountID, err := claims.AccountID()
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			account, err := cfg.AccountRepo.FindByID(accountID)
			if err != nil {
				log.Errorf("failed to load account %s for auth: %v", accountID, err)
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if account == nil {
				// Deleted after the token was issued
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			if !account.Active {
				return c.JSON(http.StatusForbidden, apierror.AccountInactiveError)
			}

			c.Set(utils.ContextAccountKey, account)
			return next(c)
		}
	}
}
