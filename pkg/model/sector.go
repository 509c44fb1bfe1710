package model

type SectorLabel string

const (
	SectorAgro     SectorLabel = "Agro & Rural"
	SectorRetail   SectorLabel = "Retail"
	SectorServices SectorLabel = "Services"
	SectorIndustry SectorLabel = "Industry"
	SectorFood     SectorLabel = "Food"
	SectorOther    SectorLabel = "Other"
)

var SectorLabels = []SectorLabel{
	SectorAgro,
	SectorRetail,
	SectorServices,
	SectorIndustry,
	SectorFood,
	SectorOther,
}

func (s SectorLabel) IsValid() bool {
	for _, label := range SectorLabels {
		if s == label {
			return true
		}
	}
	return false
}
