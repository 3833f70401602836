package handler

import (
	"context"
	"localizebackend/cmd/internal/contract"
	"localizebackend/cmd/internal/domain/entity"
	"localizebackend/cmd/internal/utils"
	"localizebackend/cmd/internal/utils/apierror"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type CompanyService interface {
	GetCompanies() ([]*contract.CompanyResponse, apierror.ErrorResponse)
	GetOwnCompanies(actor *entity.Account) ([]*contract.CompanyResponse, apierror.ErrorResponse)
	GetCompany(rawId string) (*contract.CompanyResponse, apierror.ErrorResponse)
	CreateOrReactivate(actor *entity.Account, req *contract.CompanyRequest) (*contract.CompanyResponse, bool, apierror.ErrorResponse)
	Deactivate(rawId string) apierror.ErrorResponse
	Replace(rawId string, req *contract.ReplaceCompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse)
	Delete(rawId string) apierror.ErrorResponse
}

type LookupService interface {
	LookupCNPJ(ctx context.Context, cnpj string) (*contract.CompanyLookupResponse, apierror.ErrorResponse)
}

type DefaultCompanyRoute struct {
	CompanyService CompanyService
	LookupService  LookupService
}

func NewCompanyDefault(companyService CompanyService, lookupService LookupService) *DefaultCompanyRoute {
	return &DefaultCompanyRoute{
		CompanyService: companyService,
		LookupService:  lookupService,
	}
}

func (r *DefaultCompanyRoute) GetCompanies(c echo.Context) error {
	companies, apierr := r.CompanyService.GetCompanies()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"companies": companies}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultCompanyRoute) GetOwnCompanies(c echo.Context) error {
	account, cerr := utils.GetAccountFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	companies, apierr := r.CompanyService.GetOwnCompanies(account)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"companies": companies}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultCompanyRoute) GetCompany(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	company, apierr := r.CompanyService.GetCompany(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, company)
}

// CreateCompany answers 201 for a new registration and 200 when an
// inactive one was reactivated.
func (r *DefaultCompanyRoute) CreateCompany(c echo.Context) error {
	account, cerr := utils.GetAccountFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	company, created, apierr := r.CompanyService.CreateOrReactivate(account, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if created {
		return c.JSON(http.StatusCreated, company)
	}
	return c.JSON(http.StatusOK, company)
}

func (r *DefaultCompanyRoute) ReplaceCompany(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	var req contract.ReplaceCompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	company, apierr := r.CompanyService.Replace(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, company)
}

func (r *DefaultCompanyRoute) DeactivateCompany(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if apierr := r.CompanyService.Deactivate(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *DefaultCompanyRoute) DeleteCompany(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if apierr := r.CompanyService.Delete(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *DefaultCompanyRoute) LookupCompany(c echo.Context) error {
	cnpj := strings.TrimSpace(c.Param("cnpj"))
	if cnpj == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("cnpj"))
	}

	company, apierr := r.LookupService.LookupCNPJ(c.Request().Context(), cnpj)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, company)
}
