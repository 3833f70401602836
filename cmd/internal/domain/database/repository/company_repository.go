package repository

import (
	"errors"
	"localizebackend/cmd/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultCompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *DefaultCompanyRepository {
	return &DefaultCompanyRepository{db: db}
}

func (r *DefaultCompanyRepository) FindAll() ([]*entity.Company, error) {
	var companies []*entity.Company
	err := r.db.Order("created_at").Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *DefaultCompanyRepository) FindByOwner(ownerID uuid.UUID) ([]*entity.Company, error) {
	companies := []*entity.Company{}
	err := r.db.
		Where("owner_id = ?", ownerID).
		Order("created_at").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *DefaultCompanyRepository) FindByID(id uuid.UUID) (*entity.Company, error) {
	var company entity.Company
	err := r.db.Where("id = ?", id).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *DefaultCompanyRepository) FindByCNPJAndOwner(cnpj string, ownerID uuid.UUID) (*entity.Company, error) {
	var company entity.Company
	err := r.db.
		Where("cnpj = ? AND owner_id = ?", cnpj, ownerID).
		First(&company).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *DefaultCompanyRepository) Create(company *entity.Company) error {
	return translate(r.db.Create(company).Error)
}

func (r *DefaultCompanyRepository) Save(company *entity.Company) error {
	return translate(r.db.Save(company).Error)
}

func (r *DefaultCompanyRepository) Delete(company *entity.Company) error {
	return r.db.Delete(company).Error
}
