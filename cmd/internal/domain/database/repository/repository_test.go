package repository

import (
	"errors"
	"localizebackend/cmd/internal/domain/database"
	"localizebackend/cmd/internal/domain/entity"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type RepositorySuite struct {
	suite.Suite
	db        *gorm.DB
	accounts  *DefaultAccountRepository
	companies *DefaultCompanyRepository
}

func (s *RepositorySuite) SetupTest() {
	db, err := database.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), 1)
	s.Require().NoError(err)

	s.db = db
	s.accounts = NewAccountRepository(db)
	s.companies = NewCompanyRepository(db)
}

func (s *RepositorySuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) newAccount(name, email string) *entity.Account {
	account := &entity.Account{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: "digest",
		Active:       true,
		CreatedAt:    1,
		UpdatedAt:    1,
	}
	s.Require().NoError(s.accounts.Create(account))
	return account
}

func (s *RepositorySuite) newCompany(owner *entity.Account, cnpj string, createdAt int64) *entity.Company {
	company := &entity.Company{
		ID:        uuid.New(),
		LegalName: "ACME LTDA",
		CNPJ:      cnpj,
		OwnerID:   owner.ID,
		Active:    true,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	s.Require().NoError(s.companies.Create(company))
	return company
}

func (s *RepositorySuite) TestAccountLookup() {
	ana := s.newAccount("Ana", "ana@x.com")
	s.newAccount("Bruno", "bruno@x.com")

	s.Run("by id", func() {
		found, err := s.accounts.FindByID(ana.ID)
		s.Require().NoError(err)
		s.Require().NotNil(found)
		s.Equal("ana@x.com", found.Email)
		s.True(found.Active)
	})

	s.Run("by id absent", func() {
		found, err := s.accounts.FindByID(uuid.New())
		s.NoError(err)
		s.Nil(found)
	})

	s.Run("by email is exact", func() {
		found, err := s.accounts.FindByEmail("ana@x.com")
		s.Require().NoError(err)
		s.Require().NotNil(found)
		s.Equal(ana.ID, found.ID)

		found, err = s.accounts.FindByEmail("ANA@x.com")
		s.NoError(err)
		s.Nil(found)
	})

	s.Run("all ordered by name", func() {
		all, err := s.accounts.FindAll()
		s.Require().NoError(err)
		s.Require().Len(all, 2)
		s.Equal("Ana", all[0].Name)
		s.Equal("Bruno", all[1].Name)
	})
}

func (s *RepositorySuite) TestExistsByEmail() {
	ana := s.newAccount("Ana", "ana@x.com")

	exists, err := s.accounts.ExistsByEmail("ana@x.com", uuid.Nil)
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.accounts.ExistsByEmail("ana@x.com", ana.ID)
	s.Require().NoError(err)
	s.False(exists)

	exists, err = s.accounts.ExistsByEmail("carla@x.com", uuid.Nil)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *RepositorySuite) TestAccountDuplicateEmail() {
	s.newAccount("Ana", "ana@x.com")

	err := s.accounts.Create(&entity.Account{
		ID:           uuid.New(),
		Name:         "Other Ana",
		Email:        "ana@x.com",
		PasswordHash: "digest",
		Active:       true,
	})
	s.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (s *RepositorySuite) TestAccountSaveKeepsInactive() {
	ana := s.newAccount("Ana", "ana@x.com")
	ana.Active = false
	ana.Name = "Ana Souza"
	s.Require().NoError(s.accounts.Save(ana))

	found, err := s.accounts.FindByID(ana.ID)
	s.Require().NoError(err)
	s.False(found.Active)
	s.Equal("Ana Souza", found.Name)
}

func (s *RepositorySuite) TestAccountCreateInactive() {
	account := &entity.Account{
		ID:           uuid.New(),
		Name:         "Dora",
		Email:        "dora@x.com",
		PasswordHash: "digest",
		Active:       false,
	}
	s.Require().NoError(s.accounts.Create(account))

	found, err := s.accounts.FindByID(account.ID)
	s.Require().NoError(err)
	s.False(found.Active)
}

func (s *RepositorySuite) TestAccountDelete() {
	ana := s.newAccount("Ana", "ana@x.com")
	s.Require().NoError(s.accounts.Delete(ana))

	found, err := s.accounts.FindByID(ana.ID)
	s.NoError(err)
	s.Nil(found)
}

func (s *RepositorySuite) TestCompanyLookup() {
	ana := s.newAccount("Ana", "ana@x.com")
	bruno := s.newAccount("Bruno", "bruno@x.com")
	first := s.newCompany(ana, "11222333000181", 10)
	s.newCompany(ana, "11444777000161", 20)
	s.newCompany(bruno, "11222333000181", 30)

	s.Run("by id", func() {
		found, err := s.companies.FindByID(first.ID)
		s.Require().NoError(err)
		s.Require().NotNil(found)
		s.Equal("11222333000181", found.CNPJ)
		s.Nil(found.AddressUF)
	})

	s.Run("by cnpj is scoped to owner", func() {
		found, err := s.companies.FindByCNPJAndOwner("11222333000181", ana.ID)
		s.Require().NoError(err)
		s.Require().NotNil(found)
		s.Equal(first.ID, found.ID)

		found, err = s.companies.FindByCNPJAndOwner("11444777000161", bruno.ID)
		s.NoError(err)
		s.Nil(found)
	})

	s.Run("by owner", func() {
		own, err := s.companies.FindByOwner(ana.ID)
		s.Require().NoError(err)
		s.Len(own, 2)

		none, err := s.companies.FindByOwner(uuid.New())
		s.Require().NoError(err)
		s.NotNil(none)
		s.Empty(none)
	})

	s.Run("all", func() {
		all, err := s.companies.FindAll()
		s.Require().NoError(err)
		s.Len(all, 3)
	})
}

func (s *RepositorySuite) TestCompanyDuplicatePerOwner() {
	ana := s.newAccount("Ana", "ana@x.com")
	s.newCompany(ana, "11222333000181", 10)

	err := s.companies.Create(&entity.Company{
		ID:      uuid.New(),
		CNPJ:    "11222333000181",
		OwnerID: ana.ID,
		Active:  true,
	})
	s.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (s *RepositorySuite) TestCompanySaveAndDelete() {
	ana := s.newAccount("Ana", "ana@x.com")
	company := s.newCompany(ana, "11222333000181", 10)

	uf := "SP"
	company.Active = false
	company.AddressUF = &uf
	s.Require().NoError(s.companies.Save(company))

	found, err := s.companies.FindByID(company.ID)
	s.Require().NoError(err)
	s.False(found.Active)
	s.Require().NotNil(found.AddressUF)
	s.Equal("SP", *found.AddressUF)

	s.Require().NoError(s.companies.Delete(company))
	found, err = s.companies.FindByID(company.ID)
	s.NoError(err)
	s.Nil(found)
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrDuplicatedKey), gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, translate(errors.New("constraint failed: UNIQUE constraint failed: accounts.email (2067)")), gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, translate(errors.New(`ERROR: duplicate key value violates unique constraint "idx_account_email" (SQLSTATE 23505)`)), gorm.ErrDuplicatedKey)

	other := errors.New("database is locked")
	assert.Equal(t, other, translate(other))
}
