package main

import (
	"context"
	"fmt"
	"localizebackend/cmd/internal/config"
	"localizebackend/cmd/internal/domain/database"
	"localizebackend/cmd/internal/domain/database/repository"
	"localizebackend/cmd/internal/http/handler"
	authmiddleware "localizebackend/cmd/internal/http/middleware"
	"localizebackend/cmd/internal/infrastructure/receitaws"
	"localizebackend/cmd/internal/infrastructure/token"
	"localizebackend/cmd/internal/metrics"
	"localizebackend/cmd/internal/service"
	"localizebackend/cmd/internal/utils/passhash"
	"localizebackend/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	// Loads env vars depending on environment
	if err := config.LoadEnv(context.Background()); err != nil {
		log.Fatalf("failed to load environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	log.SetLevel(cfg.Level())

	validate := validator.New()
	validators.Register(validate)

	db, err := database.Init(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	// Repos
	accountRepo := repository.NewAccountRepository(db)
	companyRepo := repository.NewCompanyRepository(db)

	// Collaborators
	tokens := token.NewService(cfg.JWTKey, cfg.JWTIssuer, cfg.JWTAudience)
	registry := receitaws.NewClient(cfg.RegistryBaseURL)
	m := metrics.New()

	// Services
	accountService := service.NewAccountService(accountRepo, validate, tokens, passhash.New(), m)
	companyService := service.NewCompanyService(companyRepo, accountRepo, validate, m)
	lookupService := service.NewLookupService(registry, validate, cfg.RegistryTimeout, m)

	// Handlers
	accountRoutes := handler.NewAccountDefault(accountService)
	companyRoutes := handler.NewCompanyDefault(companyService, lookupService)
	auth := authmiddleware.NewAuthMiddleware(&authmiddleware.AuthMiddlewareConfig{
		AccountRepo: accountRepo,
		Tokens:      tokens,
	})

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.Level())
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	handler.RegisterRoutes(e, auth, accountRoutes, companyRoutes)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	if err := e.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
