package receitaws

import (
	"localizebackend/cmd/internal/contract"
	"localizebackend/cmd/internal/domain/entity"
	"localizebackend/cmd/internal/utils/normalize"
)

// CompanyResponse mirrors the ReceitaWS /v1/cnpj payload.
type CompanyResponse struct {
	Name           string     `json:"nome"`
	TradeName      string     `json:"fantasia"`
	CNPJ           string     `json:"cnpj"`
	Situation      string     `json:"situacao"`
	OpeningDate    string     `json:"abertura"`
	Type           string     `json:"tipo"`
	LegalNature    string     `json:"natureza_juridica"`
	MainActivities []activity `json:"atividade_principal"`
	Street         string     `json:"logradouro"`
	Number         string     `json:"numero"`
	Complement     string     `json:"complemento"`
	Neighborhood   string     `json:"bairro"`
	City           string     `json:"municipio"`
	UF             string     `json:"uf"`
	ZipCode        string     `json:"cep"`
	Status         string     `json:"status"`
	Message        string     `json:"message"`
}

type activity struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// ToLookup maps the registry payload into the same field set a company
// registration takes, with blanks replaced by entity.NotInformed.
func (c *CompanyResponse) ToLookup() *contract.CompanyLookupResponse {
	activities := make([]normalize.Activity, 0, len(c.MainActivities))
	for _, a := range c.MainActivities {
		activities = append(activities, normalize.Activity{Code: a.Code, Text: normalize.String(a.Text)})
	}

	if len(activities) == 0 {
		activities = append(activities, normalize.Activity{Code: "", Text: entity.NotInformed})
	}

	uf := normalize.String(c.UF)
	return &contract.CompanyLookupResponse{
		LegalName:      normalize.String(c.Name),
		TradeName:      normalize.String(c.TradeName),
		CNPJ:           normalize.String(c.CNPJ),
		Status:         normalize.String(c.Situation),
		OpeningDate:    normalize.String(c.OpeningDate),
		Type:           normalize.String(c.Type),
		LegalNature:    normalize.String(c.LegalNature),
		MainActivities: activities,
		Address: contract.CompanyAddress{
			Street:       normalize.String(c.Street),
			Number:       normalize.String(c.Number),
			Complement:   normalize.String(c.Complement),
			Neighborhood: normalize.String(c.Neighborhood),
			City:         normalize.String(c.City),
			UF:           &uf,
			ZipCode:      normalize.String(c.ZipCode),
		},
	}
}
