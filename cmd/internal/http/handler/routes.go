package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the API on e. Account creation, login and
// registration are public, everything else under /api goes through auth.
func RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc, accounts *DefaultAccountRoute, companies *DefaultCompanyRoute) {
	// Accounts
	e.POST("/api/accounts/register", accounts.Register)
	e.POST("/api/accounts/login", accounts.Login)
	e.POST("/api/accounts", accounts.CreateAccount)

	acc := e.Group("/api/accounts", auth)
	acc.GET("", accounts.GetAccounts)
	acc.GET("/profile", accounts.GetProfile)
	acc.PUT("/profile", accounts.UpdateProfile)
	acc.GET("/:id", accounts.GetAccount)
	acc.PUT("/:id", accounts.ReplaceAccount)
	acc.DELETE("/:id", accounts.DeleteAccount)

	// Companies
	comp := e.Group("/api/companies", auth)
	comp.GET("", companies.GetCompanies)
	comp.GET("/mine", companies.GetOwnCompanies)
	comp.GET("/lookup/:cnpj", companies.LookupCompany)
	comp.GET("/:id", companies.GetCompany)
	comp.POST("", companies.CreateCompany)
	comp.PUT("/:id", companies.ReplaceCompany)
	comp.PUT("/:id/deactivate", companies.DeactivateCompany)
	comp.DELETE("/:id", companies.DeleteCompany)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)
}

func healthCheckRoute(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
