package model

const (
	NeighborhoodNotInformed = "not informed"

	MinScore = 0
	MaxScore = 10
)

type Lead struct {
	Name                string  `json:"name" bson:"nome_fantasia"`
	OwnerNames          string  `json:"owner_names,omitempty" bson:"socios_nomes"`
	Capital             float64 `json:"capital" bson:"capital_social"`
	Score               int     `json:"score" bson:"Score"`
	City                string  `json:"city" bson:"municipio_nome"`
	Neighborhood        string  `json:"neighborhood" bson:"bairro"`
	Address             string  `json:"address" bson:"endereco_completo"`
	Phones              string  `json:"phones" bson:"telefone_completo"`
	IsMicroEntrepreneur bool    `json:"is_micro_entrepreneur" bson:"opcao_mei"`
	ActivityDescription string  `json:"activity_description" bson:"cnae_fiscal_descricao"`
}

// FilterCriteria narrows the lead set. Empty City or Neighborhood means "all".
type FilterCriteria struct {
	MinScore     int    `json:"min_score" validate:"min=0,max=10"`
	City         string `json:"city,omitempty" validate:"omitempty,max=200"`
	Neighborhood string `json:"neighborhood,omitempty" validate:"omitempty,max=200"`
}

type ContactLink struct {
	WhatsAppLink  string `json:"whatsapp_link,omitempty"`
	Mobile        string `json:"mobile,omitempty"`
	MobileDisplay string `json:"mobile_display,omitempty"`
	FallbackPhone string `json:"fallback_phone,omitempty"`
}

func (c ContactLink) HasMobile() bool {
	return c.WhatsAppLink != ""
}

// LeadView is a lead enriched with everything a card needs, so renderers
// iterate it without business rules of their own.
type LeadView struct {
	Lead

	Sector         SectorLabel `json:"sector"`
	AddressIsValid bool        `json:"address_is_valid"`
	MapLink        string      `json:"map_link,omitempty"`
	Contact        ContactLink `json:"contact"`

	Status         string `json:"status"`
	StatusIcon     string `json:"status_icon"`
	StatusColor    string `json:"status_color"`
	Heat           string `json:"heat"`
	OwnerDisplay   string `json:"owner_display"`
	CapitalDisplay string `json:"capital_display"`
}
