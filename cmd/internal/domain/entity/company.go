package entity

import "github.com/google/uuid"

// NotInformed is stored in place of any business field that was absent or
// blank when the company was submitted. It is a regular value, not an error marker.
const NotInformed = "Não informado"

type Company struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	LegalName    string    `gorm:"size:255"`
	TradeName    string    `gorm:"size:255"`
	CNPJ         string    `gorm:"column:cnpj;not null;size:18;uniqueIndex:idx_company_cnpj_owner"`
	Status       string    `gorm:"size:100"`
	OpeningDate  string    `gorm:"size:20"`
	Type         string    `gorm:"size:100"`
	LegalNature  string    `gorm:"size:255"`
	MainActivity string    `gorm:"size:255"`

	AddressStreet       string  `gorm:"size:255"`
	AddressNumber       string  `gorm:"size:20"`
	AddressComplement   string  `gorm:"size:255"`
	AddressNeighborhood string  `gorm:"size:100"`
	AddressCity         string  `gorm:"size:100"`
	AddressUF           *string `gorm:"column:address_uf;size:2"`
	AddressZipCode      string  `gorm:"size:15"`

	// Uniqueness is scoped per owner: the same CNPJ may be registered
	// by different accounts, but only once per account.
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_company_cnpj_owner"`
	Active    bool      `gorm:"not null"`
	CreatedAt int64     `gorm:"not null;autoCreateTime:false"`
	UpdatedAt int64     `gorm:"not null;autoUpdateTime:false"`
}
