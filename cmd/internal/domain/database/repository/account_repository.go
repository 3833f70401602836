package repository

import (
	"errors"
	"localizebackend/cmd/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultAccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *DefaultAccountRepository {
	return &DefaultAccountRepository{db: db}
}

func (a *DefaultAccountRepository) FindAll() ([]*entity.Account, error) {
	var accounts []*entity.Account
	err := a.db.Order("name").Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (a *DefaultAccountRepository) FindByID(id uuid.UUID) (*entity.Account, error) {
	var account entity.Account
	err := a.db.Where("id = ?", id).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (a *DefaultAccountRepository) FindByEmail(email string) (*entity.Account, error) {
	var account entity.Account
	err := a.db.Where("email = ?", email).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &account, nil
}

// ExistsByEmail reports whether an account other than exceptID uses email.
// Pass uuid.Nil to check against every account.
func (a *DefaultAccountRepository) ExistsByEmail(email string, exceptID uuid.UUID) (bool, error) {
	var count int64
	err := a.db.Model(&entity.Account{}).
		Where("email = ? AND id <> ?", email, exceptID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (a *DefaultAccountRepository) Create(account *entity.Account) error {
	return translate(a.db.Create(account).Error)
}

func (a *DefaultAccountRepository) Save(account *entity.Account) error {
	return translate(a.db.Save(account).Error)
}

func (a *DefaultAccountRepository) Delete(account *entity.Account) error {
	return a.db.Delete(account).Error
}
