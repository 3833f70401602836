package contract

import (
	"localizebackend/cmd/internal/utils/normalize"

	"github.com/google/uuid"
)

// CompanyRequest keeps every optional field as a pointer: an absent field
// and a blank one are normalized differently.
type CompanyRequest struct {
	LegalName      *string                `json:"legal_name"`
	TradeName      *string                `json:"trade_name"`
	CNPJ           string                 `json:"cnpj" validate:"required,notblank,cnpj"`
	Status         *string                `json:"status"`
	OpeningDate    *string                `json:"opening_date"`
	Type           *string                `json:"type"`
	LegalNature    *string                `json:"legal_nature"`
	MainActivities []normalize.Activity   `json:"main_activities"`
	Address        *CompanyAddressRequest `json:"address"`

	// OwnerID defaults to the authenticated account when omitted.
	OwnerID uuid.UUID `json:"owner_id"`
}

type CompanyAddressRequest struct {
	Street       *string `json:"street"`
	Number       *string `json:"number"`
	Complement   *string `json:"complement"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	UF           *string `json:"uf"`
	ZipCode      *string `json:"zip_code"`
}

type ReplaceCompanyRequest struct {
	CompanyRequest
	ID     uuid.UUID `json:"id"`
	Active *bool     `json:"active"`
}

type CompanyResponse struct {
	ID           string         `json:"id"`
	LegalName    string         `json:"legal_name"`
	TradeName    string         `json:"trade_name"`
	CNPJ         string         `json:"cnpj"`
	Status       string         `json:"status"`
	OpeningDate  string         `json:"opening_date"`
	Type         string         `json:"type"`
	LegalNature  string         `json:"legal_nature"`
	MainActivity string         `json:"main_activity"`
	Address      CompanyAddress `json:"address"`
	OwnerID      string         `json:"owner_id"`
	Active       bool           `json:"active"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
}

type CompanyAddress struct {
	Street       string  `json:"street"`
	Number       string  `json:"number"`
	Complement   string  `json:"complement"`
	Neighborhood string  `json:"neighborhood"`
	City         string  `json:"city"`
	UF           *string `json:"uf"`
	ZipCode      string  `json:"zip_code"`
}

// CompanyLookupResponse uses the CompanyRequest field names, so a lookup
// result can be posted back as a registration.
type CompanyLookupResponse struct {
	LegalName      string               `json:"legal_name"`
	TradeName      string               `json:"trade_name"`
	CNPJ           string               `json:"cnpj"`
	Status         string               `json:"status"`
	OpeningDate    string               `json:"opening_date"`
	Type           string               `json:"type"`
	LegalNature    string               `json:"legal_nature"`
	MainActivities []normalize.Activity `json:"main_activities"`
	Address        CompanyAddress       `json:"address"`
}
