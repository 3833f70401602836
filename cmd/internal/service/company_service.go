package service

import (
	"errors"
	"localizebackend/cmd/internal/contract"
	"localizebackend/cmd/internal/domain/entity"
	"localizebackend/cmd/internal/utils"
	"localizebackend/cmd/internal/utils/apierror"
	"localizebackend/cmd/internal/utils/normalize"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type CompanyRepository interface {
	FindAll() ([]*entity.Company, error)
	FindByOwner(ownerID uuid.UUID) ([]*entity.Company, error)
	FindByID(id uuid.UUID) (*entity.Company, error)
	FindByCNPJAndOwner(cnpj string, ownerID uuid.UUID) (*entity.Company, error)
	Create(company *entity.Company) error
	Save(company *entity.Company) error
	Delete(company *entity.Company) error
}

type OwnerRepository interface {
	FindByID(id uuid.UUID) (*entity.Account, error)
}

type CompanyMetrics interface {
	IncrementCompaniesCreated()
	IncrementCompaniesReactivated()
}

type CompanyService struct {
	CompanyRepo CompanyRepository
	OwnerRepo   OwnerRepository
	Validate    *validator.Validate
	Metrics     CompanyMetrics
	Now         func() int64
}

func NewCompanyService(
	companyRepo CompanyRepository,
	ownerRepo OwnerRepository,
	validate *validator.Validate,
	metrics CompanyMetrics,
) *CompanyService {
	return &CompanyService{
		CompanyRepo: companyRepo,
		OwnerRepo:   ownerRepo,
		Validate:    validate,
		Metrics:     metrics,
		Now:         utils.NowUTC,
	}
}

func (s *CompanyService) GetCompanies() ([]*contract.CompanyResponse, apierror.ErrorResponse) {
	companies, err := s.CompanyRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch companies: %v", err)
		return nil, apierror.InternalServerError
	}
	return toCompanyResponses(companies), nil
}

func (s *CompanyService) GetOwnCompanies(actor *entity.Account) ([]*contract.CompanyResponse, apierror.ErrorResponse) {
	companies, err := s.CompanyRepo.FindByOwner(actor.ID)
	if err != nil {
		log.Errorf("failed to fetch companies of account %s: %v", actor.ID, err)
		return nil, apierror.InternalServerError
	}
	return toCompanyResponses(companies), nil
}

func (s *CompanyService) GetCompany(rawId string) (*contract.CompanyResponse, apierror.ErrorResponse) {
	company, apierr := s.fetchByID(rawId)
	if apierr != nil {
		return nil, apierr
	}
	return toCompanyResponse(company), nil
}

// CreateOrReactivate registers a company for an owner. A previously
// deactivated registration of the same CNPJ by the same owner is revived
// in place and keeps its ID. The returned bool is true when a new record
// was created.
func (s *CompanyService) CreateOrReactivate(actor *entity.Account, req *contract.CompanyRequest) (*contract.CompanyResponse, bool, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, false, apierr
	}

	ownerID := req.OwnerID
	if ownerID == uuid.Nil {
		ownerID = actor.ID
	}

	if apierr := s.checkOwner(ownerID); apierr != nil {
		return nil, false, apierr
	}

	cnpj := utils.CanonicalCNPJ(req.CNPJ)
	existing, err := s.CompanyRepo.FindByCNPJAndOwner(cnpj, ownerID)
	if err != nil {
		log.Errorf("failed to find company by cnpj %s: %v", cnpj, err)
		return nil, false, apierror.InternalServerError
	}

	if existing != nil {
		if existing.Active {
			return nil, false, apierror.CompanyAlreadyRegisteredError
		}
		return s.reactivate(existing, req)
	}

	now := s.Now()
	company := &entity.Company{
		ID:        uuid.New(),
		CNPJ:      cnpj,
		OwnerID:   ownerID,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyCompanyFields(company, req)

	if err = s.CompanyRepo.Create(company); err != nil {
		return nil, false, companySaveError(company, err)
	}

	s.Metrics.IncrementCompaniesCreated()
	return toCompanyResponse(company), true, nil
}

// Deactivate retires a company without deleting it.
func (s *CompanyService) Deactivate(rawId string) apierror.ErrorResponse {
	company, apierr := s.fetchByID(rawId)
	if apierr != nil {
		return apierr
	}

	company.Active = false
	company.UpdatedAt = s.Now()
	if err := s.CompanyRepo.Save(company); err != nil {
		return companySaveError(company, err)
	}
	return nil
}

// Replace overwrites a company. The body ID must match the path ID.
func (s *CompanyService) Replace(rawId string, req *contract.ReplaceCompanyRequest) (*contract.CompanyResponse, apierror.ErrorResponse) {
	id, apierr := parseID(rawId)
	if apierr != nil {
		return nil, apierr
	}

	if req.ID != id {
		return nil, apierror.IDMismatchError
	}

	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	company, apierr := s.fetchByID(rawId)
	if apierr != nil {
		return nil, apierr
	}

	if req.OwnerID != uuid.Nil && req.OwnerID != company.OwnerID {
		if apierr := s.checkOwner(req.OwnerID); apierr != nil {
			return nil, apierr
		}
		company.OwnerID = req.OwnerID
	}

	company.CNPJ = utils.CanonicalCNPJ(req.CNPJ)
	applyCompanyFields(company, &req.CompanyRequest)
	if req.Active != nil {
		company.Active = *req.Active
	}
	company.UpdatedAt = s.Now()

	if err := s.CompanyRepo.Save(company); err != nil {
		return nil, companySaveError(company, err)
	}
	return toCompanyResponse(company), nil
}

func (s *CompanyService) Delete(rawId string) apierror.ErrorResponse {
	company, apierr := s.fetchByID(rawId)
	if apierr != nil {
		return apierr
	}

	if err := s.CompanyRepo.Delete(company); err != nil {
		log.Errorf("failed to delete company %s: %v", company.ID, err)
		return apierror.FromStoreError(err)
	}
	return nil
}

func (s *CompanyService) reactivate(company *entity.Company, req *contract.CompanyRequest) (*contract.CompanyResponse, bool, apierror.ErrorResponse) {
	applyCompanyFields(company, req)
	company.Active = true
	company.UpdatedAt = s.Now()

	if err := s.CompanyRepo.Save(company); err != nil {
		return nil, false, companySaveError(company, err)
	}

	log.Debugf("reactivated company %s (cnpj %s) for account %s", company.ID, company.CNPJ, company.OwnerID)
	s.Metrics.IncrementCompaniesReactivated()
	return toCompanyResponse(company), false, nil
}

func (s *CompanyService) checkOwner(ownerID uuid.UUID) apierror.ErrorResponse {
	owner, err := s.OwnerRepo.FindByID(ownerID)
	if err != nil {
		log.Errorf("failed to find owner account %s: %v", ownerID, err)
		return apierror.InternalServerError
	}

	if owner == nil {
		return apierror.OwnerNotFoundError
	}
	return nil
}

func (s *CompanyService) fetchByID(rawId string) (*entity.Company, apierror.ErrorResponse) {
	id, apierr := parseID(rawId)
	if apierr != nil {
		return nil, apierr
	}

	company, err := s.CompanyRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to find company (%s) by id: %v", rawId, err)
		return nil, apierror.InternalServerError
	}

	if company == nil {
		return nil, apierror.NotFoundError
	}
	return company, nil
}

// applyCompanyFields copies every business and address field of req into
// company, normalized. CNPJ, owner and active flag are left to the caller.
func applyCompanyFields(company *entity.Company, req *contract.CompanyRequest) {
	address := req.Address
	if address == nil {
		address = &contract.CompanyAddressRequest{}
	}

	company.LegalName = normalize.LegalName(req.LegalName)
	company.TradeName = normalize.Text(req.TradeName)
	company.Status = normalize.Text(req.Status)
	company.OpeningDate = normalize.Text(req.OpeningDate)
	company.Type = normalize.Text(req.Type)
	company.LegalNature = normalize.Text(req.LegalNature)
	company.MainActivity = normalize.MainActivity(req.MainActivities)

	company.AddressStreet = normalize.Text(address.Street)
	company.AddressNumber = normalize.Text(address.Number)
	company.AddressComplement = normalize.Text(address.Complement)
	company.AddressNeighborhood = normalize.Text(address.Neighborhood)
	company.AddressCity = normalize.Text(address.City)
	company.AddressUF = normalize.Region(address.UF)
	company.AddressZipCode = normalize.Text(address.ZipCode)
}

func companySaveError(company *entity.Company, err error) apierror.ErrorResponse {
	// The unique index caught a registration the pre-check missed
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.CompanyAlreadyRegisteredError
	}
	log.Errorf("failed to save company %s: %v", company.ID, err)
	return apierror.FromStoreError(err)
}

func toCompanyResponses(companies []*entity.Company) []*contract.CompanyResponse {
	resp := make([]*contract.CompanyResponse, len(companies))
	for i, c := range companies {
		resp[i] = toCompanyResponse(c)
	}
	return resp
}

func toCompanyResponse(c *entity.Company) *contract.CompanyResponse {
	return &contract.CompanyResponse{
		ID:           c.ID.String(),
		LegalName:    c.LegalName,
		TradeName:    c.TradeName,
		CNPJ:         c.CNPJ,
		Status:       c.Status,
		OpeningDate:  c.OpeningDate,
		Type:         c.Type,
		LegalNature:  c.LegalNature,
		MainActivity: c.MainActivity,
		Address: contract.CompanyAddress{
			Street:       c.AddressStreet,
			Number:       c.AddressNumber,
			Complement:   c.AddressComplement,
			Neighborhood: c.AddressNeighborhood,
			City:         c.AddressCity,
			UF:           c.AddressUF,
			ZipCode:      c.AddressZipCode,
		},
		OwnerID:   c.OwnerID.String(),
		Active:    c.Active,
		CreatedAt: utils.FormatEpoch(c.CreatedAt),
		UpdatedAt: utils.FormatEpoch(c.UpdatedAt),
	}
}
