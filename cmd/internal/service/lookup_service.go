package service

import (
	"context"
	"errors"
	"localizebackend/cmd/internal/contract"
	"localizebackend/cmd/internal/infrastructure/receitaws"
	"localizebackend/cmd/internal/utils"
	"localizebackend/cmd/internal/utils/apierror"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

const (
	lookupSuccess       = "success"
	lookupInvalid       = "invalid_cnpj"
	lookupRegistryError = "registry_error"
	lookupFailed        = "failed"
)

type RegistryClient interface {
	GetByCNPJ(ctx context.Context, cnpj string) (*receitaws.CompanyResponse, error)
}

type LookupMetrics interface {
	ObserveLookup(outcome string)
}

// LookupService queries the public company registry. Nothing it returns
// is persisted.
type LookupService struct {
	Registry RegistryClient
	Validate *validator.Validate
	Timeout  time.Duration
	Metrics  LookupMetrics
}

func NewLookupService(registry RegistryClient, validate *validator.Validate, timeout time.Duration, metrics LookupMetrics) *LookupService {
	return &LookupService{
		Registry: registry,
		Validate: validate,
		Timeout:  timeout,
		Metrics:  metrics,
	}
}

func (l *LookupService) LookupCNPJ(ctx context.Context, cnpj string) (*contract.CompanyLookupResponse, apierror.ErrorResponse) {
	cnpj = utils.StripCNPJ(cnpj)
	if err := l.Validate.Var(cnpj, "required,cnpj"); err != nil {
		l.Metrics.ObserveLookup(lookupInvalid)
		return nil, apierror.InvalidCNPJError
	}

	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}

	company, err := l.Registry.GetByCNPJ(ctx, cnpj)
	if err != nil {
		var regErr *receitaws.RegistryError
		if errors.As(err, &regErr) {
			l.Metrics.ObserveLookup(lookupRegistryError)
			return nil, apierror.NewRegistryError(regErr.Message)
		}

		log.Errorf("failed to look up CNPJ %s: %v", cnpj, err)
		l.Metrics.ObserveLookup(lookupFailed)
		return nil, apierror.LookupFailedError
	}

	l.Metrics.ObserveLookup(lookupSuccess)
	return company.ToLookup(), nil
}
