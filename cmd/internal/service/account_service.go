package service

import (
	"errors"
	"localizebackend/cmd/internal/contract"
	"localizebackend/cmd/internal/domain/entity"
	"localizebackend/cmd/internal/domain/policy"
	"localizebackend/cmd/internal/utils"
	"localizebackend/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

const (
	loginSuccess            = "success"
	loginInvalidCredentials = "invalid_credentials"
	loginInactive           = "inactive"
)

type AccountRepository interface {
	FindAll() ([]*entity.Account, error)
	FindByID(id uuid.UUID) (*entity.Account, error)
	FindByEmail(email string) (*entity.Account, error)
	ExistsByEmail(email string, exceptID uuid.UUID) (bool, error)
	Create(account *entity.Account) error
	Save(account *entity.Account) error
	Delete(account *entity.Account) error
}

type TokenIssuer interface {
	Issue(accountID uuid.UUID, email, name string) (string, error)
}

type AccountMetrics interface {
	IncrementAccountsRegistered()
	ObserveLogin(outcome string)
}

type AccountService struct {
	AccountRepo    AccountRepository
	Validate       *validator.Validate
	Tokens         TokenIssuer
	Hasher         policy.PasswordHasher
	PasswordPolicy *policy.PasswordPolicy
	Metrics        AccountMetrics
	Now            func() int64
}

func NewAccountService(
	accountRepo AccountRepository,
	validate *validator.Validate,
	tokens TokenIssuer,
	hasher policy.PasswordHasher,
	metrics AccountMetrics,
) *AccountService {
	return &AccountService{
		AccountRepo:    accountRepo,
		Validate:       validate,
		Tokens:         tokens,
		Hasher:         hasher,
		PasswordPolicy: policy.NewPasswordPolicy(hasher),
		Metrics:        metrics,
		Now:            utils.NowUTC,
	}
}

// Register creates an active account and logs it in right away.
func (a *AccountService) Register(req *contract.RegisterRequest) (*contract.AccountTokenResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if apierr := validateRequest(a.Validate, req); apierr != nil {
		return nil, apierr
	}

	account, apierr := a.createAccount(req.Name, req.Email, req.Password, true)
	if apierr != nil {
		return nil, apierr
	}
	return a.issueToken(account)
}

// CreateAccount is the administrative counterpart of Register: no token
// is issued and the account may be created inactive.
func (a *AccountService) CreateAccount(req *contract.CreateAccountRequest) (*contract.AccountResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if apierr := validateRequest(a.Validate, req); apierr != nil {
		return nil, apierr
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	account, apierr := a.createAccount(req.Name, req.Email, req.Password, active)
	if apierr != nil {
		return nil, apierr
	}
	return toAccountResponse(account), nil
}

// Login never tells an unknown email apart from a wrong password.
func (a *AccountService) Login(req *contract.LoginRequest) (*contract.AccountTokenResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if apierr := validateRequest(a.Validate, req); apierr != nil {
		return nil, apierr
	}

	account, err := a.AccountRepo.FindByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch account from database: %v", err)
		return nil, apierror.InternalServerError
	}

	if account == nil || !a.PasswordPolicy.Matches(req.Password, account.PasswordHash) {
		a.Metrics.ObserveLogin(loginInvalidCredentials)
		return nil, apierror.InvalidCredentialsError
	}

	if !account.Active {
		a.Metrics.ObserveLogin(loginInactive)
		return nil, apierror.AccountInactiveError
	}

	a.Metrics.ObserveLogin(loginSuccess)
	return a.issueToken(account)
}

func (a *AccountService) GetAccounts() ([]*contract.AccountResponse, apierror.ErrorResponse) {
	accounts, err := a.AccountRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch accounts: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.AccountResponse, len(accounts))
	for i, account := range accounts {
		resp[i] = toAccountResponse(account)
	}
	return resp, nil
}

func (a *AccountService) GetAccount(rawId string) (*contract.AccountResponse, apierror.ErrorResponse) {
	account, apierr := a.fetchByID(rawId)
	if apierr != nil {
		return nil, apierr
	}
	return toAccountResponse(account), nil
}

func (a *AccountService) GetProfile(actor *entity.Account) (*contract.AccountResponse, apierror.ErrorResponse) {
	account, apierr := a.fetchByID(actor.ID.String())
	if apierr != nil {
		return nil, apierr
	}
	return toAccountResponse(account), nil
}

// UpdateProfile applies name, email and password changes of the caller.
// Blank fields are left alone.
func (a *AccountService) UpdateProfile(actor *entity.Account, req *contract.UpdateProfileRequest) (*contract.AccountIdentityResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if apierr := validateRequest(a.Validate, req); apierr != nil {
		return nil, apierr
	}

	target, apierr := a.fetchByID(actor.ID.String())
	if apierr != nil {
		return nil, apierr
	}

	updater := &accountUpdater{
		repo:   a.AccountRepo,
		policy: a.PasswordPolicy,
		target: target,
	}

	updater.setName(req.Name)
	updater.setEmail(req.Email)
	updater.setPassword(req.CurrentPassword, req.NewPassword, req.ConfirmPassword)

	if updater.err != nil {
		return nil, updater.err
	}

	if updater.dirty {
		if apierr := a.saveAccount(target); apierr != nil {
			return nil, apierr
		}
	}
	return toIdentityResponse(target), nil
}

// ReplaceAccount overwrites the mutable fields of an account.
func (a *AccountService) ReplaceAccount(rawId string, req *contract.ReplaceAccountRequest) (*contract.AccountResponse, apierror.ErrorResponse) {
	id, apierr := parseID(rawId)
	if apierr != nil {
		return nil, apierr
	}

	if req.ID != id {
		return nil, apierror.IDMismatchError
	}

	utils.Sanitize(req)
	if apierr := validateRequest(a.Validate, req); apierr != nil {
		return nil, apierr
	}

	target, apierr := a.fetchByID(rawId)
	if apierr != nil {
		return nil, apierr
	}

	if req.Email != target.Email {
		taken, err := a.AccountRepo.ExistsByEmail(req.Email, target.ID)
		if err != nil {
			log.Errorf("failed to check email availability for account %s: %v", target.ID, err)
			return nil, apierror.InternalServerError
		}

		if taken {
			return nil, apierror.EmailTakenError
		}
	}

	target.Name = req.Name
	target.Email = req.Email
	target.Active = *req.Active
	if apierr := a.saveAccount(target); apierr != nil {
		return nil, apierr
	}
	return toAccountResponse(target), nil
}

func (a *AccountService) DeleteAccount(rawId string) apierror.ErrorResponse {
	target, apierr := a.fetchByID(rawId)
	if apierr != nil {
		return apierr
	}

	if err := a.AccountRepo.Delete(target); err != nil {
		log.Errorf("failed to delete account %s: %v", target.ID, err)
		return apierror.FromStoreError(err)
	}
	return nil
}

func (a *AccountService) createAccount(name, email, password string, active bool) (*entity.Account, apierror.ErrorResponse) {
	found, err := a.AccountRepo.ExistsByEmail(email, uuid.Nil)
	if err != nil {
		log.Errorf("failed to check if account already exists: %v", err)
		return nil, apierror.InternalServerError
	}

	if found {
		return nil, apierror.EmailTakenError
	}

	now := a.Now()
	account := &entity.Account{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: a.Hasher.Digest(password),
		Active:       active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = a.AccountRepo.Create(account)
	if err != nil {
		// Lost a race against another registration with the same email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.EmailTakenError
		}
		log.Errorf("failed to create account: %v", err)
		return nil, apierror.FromStoreError(err)
	}

	a.Metrics.IncrementAccountsRegistered()
	return account, nil
}

func (a *AccountService) saveAccount(account *entity.Account) apierror.ErrorResponse {
	account.UpdatedAt = a.Now()
	err := a.AccountRepo.Save(account)
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.EmailTakenError
	}
	log.Errorf("failed to update account %s: %v", account.ID, err)
	return apierror.FromStoreError(err)
}

func (a *AccountService) issueToken(account *entity.Account) (*contract.AccountTokenResponse, apierror.ErrorResponse) {
	token, err := a.Tokens.Issue(account.ID, account.Email, account.Name)
	if err != nil {
		log.Errorf("failed to issue token for account %s: %v", account.ID, err)
		return nil, apierror.InternalServerError
	}

	return &contract.AccountTokenResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
		Token: token,
	}, nil
}

func (a *AccountService) fetchByID(rawId string) (*entity.Account, apierror.ErrorResponse) {
	id, apierr := parseID(rawId)
	if apierr != nil {
		return nil, apierr
	}

	account, err := a.AccountRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to find account (%s) by id: %v", rawId, err)
		return nil, apierror.InternalServerError
	}

	if account == nil {
		return nil, apierror.NotFoundError
	}
	return account, nil
}

func toAccountResponse(account *entity.Account) *contract.AccountResponse {
	return &contract.AccountResponse{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		Active:    account.Active,
		CreatedAt: utils.FormatEpoch(account.CreatedAt),
		UpdatedAt: utils.FormatEpoch(account.UpdatedAt),
	}
}

func toIdentityResponse(account *entity.Account) *contract.AccountIdentityResponse {
	return &contract.AccountIdentityResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
	}
}
