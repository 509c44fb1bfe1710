package service

import (
	"math"
	"testing"

	"radar/internal/leads/classifier"
	"radar/internal/leads/contact"
	"radar/pkg/locale"
	"radar/pkg/model"
)

func TestHeat(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{score: 0, expected: "🌱"},
		{score: 2, expected: "🌱"},
		{score: 3, expected: "🔥"},
		{score: 5, expected: "🔥🔥🔥"},
		{score: 10, expected: "🔥🔥🔥🔥🔥🔥🔥🔥"},
	}

	for _, tt := range tests {
		if got := Heat(tt.score); got != tt.expected {
			t.Errorf("Heat(%d) = %q, want %q", tt.score, got, tt.expected)
		}
	}
}

func TestCapitalDisplay(t *testing.T) {
	tests := []struct {
		capital  float64
		expected string
	}{
		{capital: 0, expected: "R$ 0"},
		{capital: 999, expected: "R$ 999"},
		{capital: 1234, expected: "R$ 1.234"},
		{capital: 1500000.4, expected: "R$ 1.500.000"},
		{capital: 2.5, expected: "R$ 2"},
		{capital: -0.4, expected: "R$ 0"},
		{capital: -1234, expected: "R$ -1.234"},
		{capital: 1e19, expected: "R$ 10.000.000.000.000.000.000"},
		{capital: math.Inf(1), expected: "R$ 0"},
		{capital: math.NaN(), expected: "R$ 0"},
	}

	for _, tt := range tests {
		if got := CapitalDisplay(tt.capital); got != tt.expected {
			t.Errorf("CapitalDisplay(%v) = %q, want %q", tt.capital, got, tt.expected)
		}
	}
}

func TestOwnerDisplay(t *testing.T) {
	if got := OwnerDisplay(""); got != OwnerNotIdentified {
		t.Errorf("expected placeholder, got %q", got)
	}
	if got := OwnerDisplay("Maria Souza"); got != "Maria Souza" {
		t.Errorf("expected owner, got %q", got)
	}
}

func TestViewBuilder_BuildOne(t *testing.T) {
	b := NewViewBuilder(classifier.New(nil), contact.NewResolver(locale.MustLookup("BR")))

	tests := []struct {
		name   string
		lead   model.Lead
		verify func(t *testing.T, v model.LeadView)
	}{
		{
			name: "micro entrepreneur with mobile and address",
			lead: model.Lead{
				Name:                "Padaria Pão Quente",
				Score:               6,
				Address:             "Rua Principal, 45, Centro",
				Phones:              "(33) 98888-7777",
				IsMicroEntrepreneur: true,
				ActivityDescription: "Fabricação de produtos de panificação",
			},
			verify: func(t *testing.T, v model.LeadView) {
				if v.Status != StatusMicroEntrepreneur || v.StatusColor != StatusColorMicro {
					t.Errorf("unexpected status %q/%q", v.Status, v.StatusColor)
				}
				if !v.AddressIsValid || v.MapLink == "" {
					t.Errorf("expected a map link, got %+v", v)
				}
				if v.Contact.WhatsAppLink != "https://wa.me/5533988887777" {
					t.Errorf("unexpected whatsapp link %q", v.Contact.WhatsAppLink)
				}
				if v.Heat != "🔥🔥🔥🔥" {
					t.Errorf("unexpected heat %q", v.Heat)
				}
			},
		},
		{
			name: "standard company with placeholder address and landline",
			lead: model.Lead{
				Name:    "Oficina Central",
				Address: "nan",
				Phones:  "(33) 3721-1234",
			},
			verify: func(t *testing.T, v model.LeadView) {
				if v.Status != StatusStandardCompany || v.StatusColor != StatusColorStandard {
					t.Errorf("unexpected status %q/%q", v.Status, v.StatusColor)
				}
				if v.AddressIsValid || v.MapLink != "" {
					t.Errorf("placeholder address must not produce a map link")
				}
				if v.Contact.HasMobile() {
					t.Errorf("landline must not produce a whatsapp link")
				}
				if v.Contact.FallbackPhone != "(33) 3721-1234" {
					t.Errorf("unexpected fallback phone %q", v.Contact.FallbackPhone)
				}
				if v.OwnerDisplay != OwnerNotIdentified {
					t.Errorf("unexpected owner display %q", v.OwnerDisplay)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.verify(t, b.BuildOne(tt.lead))
		})
	}
}
