package service

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"radar/internal/leads/classifier"
	"radar/internal/leads/contact"
	"radar/pkg/model"
)

const (
	StatusMicroEntrepreneur = "Micro-entrepreneur (MEI)"
	StatusStandardCompany   = "Standard company (ME/EPP)"
	StatusColorMicro        = "orange"
	StatusColorStandard     = "green"
	StatusIconMicro         = "👤"
	StatusIconStandard      = "🏢"

	OwnerNotIdentified = "owner not identified"

	heatIcon     = "🔥"
	seedlingIcon = "🌱"
	heatBaseline = 2
)

// ViewBuilder turns leads into card-ready views.
type ViewBuilder struct {
	classifier *classifier.Classifier
	resolver   *contact.Resolver
}

func NewViewBuilder(c *classifier.Classifier, r *contact.Resolver) *ViewBuilder {
	return &ViewBuilder{classifier: c, resolver: r}
}

func (b *ViewBuilder) Build(leads []model.Lead) []model.LeadView {
	views := make([]model.LeadView, 0, len(leads))
	for _, l := range leads {
		views = append(views, b.BuildOne(l))
	}
	return views
}

func (b *ViewBuilder) BuildOne(l model.Lead) model.LeadView {
	valid, mapLink, link := b.resolver.Resolve(l)

	v := model.LeadView{
		Lead:           l,
		Sector:         b.classifier.Classify(l),
		AddressIsValid: valid,
		MapLink:        mapLink,
		Contact:        link,
		Heat:           Heat(l.Score),
		OwnerDisplay:   OwnerDisplay(l.OwnerNames),
		CapitalDisplay: CapitalDisplay(l.Capital),
	}

	if l.IsMicroEntrepreneur {
		v.Status, v.StatusIcon, v.StatusColor = StatusMicroEntrepreneur, StatusIconMicro, StatusColorMicro
	} else {
		v.Status, v.StatusIcon, v.StatusColor = StatusStandardCompany, StatusIconStandard, StatusColorStandard
	}
	return v
}

// Heat shows one flame per point above 2, or a seedling for cold leads.
func Heat(score int) string {
	if score > heatBaseline {
		return strings.Repeat(heatIcon, score-heatBaseline)
	}
	return seedlingIcon
}

func OwnerDisplay(owners string) string {
	if strings.TrimSpace(owners) == "" {
		return OwnerNotIdentified
	}
	return owners
}

// CapitalDisplay renders whole reais with dot thousands separators, "R$ 1.234".
// Values that are not finite show as zero.
func CapitalDisplay(capital float64) string {
	if math.IsNaN(capital) || math.IsInf(capital, 0) {
		capital = 0
	}
	rounded := math.RoundToEven(capital)
	if rounded == 0 {
		rounded = 0 // drops the sign of -0
	}
	return "R$ " + strings.ReplaceAll(humanize.Commaf(rounded), ",", ".")
}
