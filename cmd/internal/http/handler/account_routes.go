package handler

import (
	"localizebackend/cmd/internal/contract"
	"localizebackend/cmd/internal/domain/entity"
	"localizebackend/cmd/internal/utils"
	"localizebackend/cmd/internal/utils/apierror"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type AccountService interface {
	Register(req *contract.RegisterRequest) (*contract.AccountTokenResponse, apierror.ErrorResponse)
	CreateAccount(req *contract.CreateAccountRequest) (*contract.AccountResponse, apierror.ErrorResponse)
	Login(req *contract.LoginRequest) (*contract.AccountTokenResponse, apierror.ErrorResponse)
	GetAccounts() ([]*contract.AccountResponse, apierror.ErrorResponse)
	GetAccount(rawId string) (*contract.AccountResponse, apierror.ErrorResponse)
	GetProfile(actor *entity.Account) (*contract.AccountResponse, apierror.ErrorResponse)
	UpdateProfile(actor *entity.Account, req *contract.UpdateProfileRequest) (*contract.AccountIdentityResponse, apierror.ErrorResponse)
	ReplaceAccount(rawId string, req *contract.ReplaceAccountRequest) (*contract.AccountResponse, apierror.ErrorResponse)
	DeleteAccount(rawId string) apierror.ErrorResponse
}

type DefaultAccountRoute struct {
	AccountService AccountService
}

func NewAccountDefault(accountService AccountService) *DefaultAccountRoute {
	return &DefaultAccountRoute{AccountService: accountService}
}

func (a *DefaultAccountRoute) Register(c echo.Context) error {
	var req contract.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := a.AccountService.Register(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (a *DefaultAccountRoute) Login(c echo.Context) error {
	var req contract.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := a.AccountService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAccountRoute) CreateAccount(c echo.Context) error {
	var req contract.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := a.AccountService.CreateAccount(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (a *DefaultAccountRoute) GetAccounts(c echo.Context) error {
	accounts, apierr := a.AccountService.GetAccounts()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"accounts": accounts}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAccountRoute) GetAccount(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	resp, apierr := a.AccountService.GetAccount(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAccountRoute) GetProfile(c echo.Context) error {
	account, cerr := utils.GetAccountFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	resp, apierr := a.AccountService.GetProfile(account)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAccountRoute) UpdateProfile(c echo.Context) error {
	account, cerr := utils.GetAccountFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := a.AccountService.UpdateProfile(account, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAccountRoute) ReplaceAccount(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	var req contract.ReplaceAccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := a.AccountService.ReplaceAccount(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAccountRoute) DeleteAccount(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if apierr := a.AccountService.DeleteAccount(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
