package normalizer

import (
	"math"
	"strings"

	"github.com/spf13/cast"

	"radar/pkg/model"
	"radar/pkg/sanitizer"
)

// Row is one raw spreadsheet row keyed by column name. A nil value is a null
// cell; a missing key is a column the source does not have.
type Row map[string]any

func Normalize(rows []Row) []model.Lead {
	leads := make([]model.Lead, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, NormalizeRow(row))
	}
	return leads
}

func NormalizeRow(row Row) model.Lead {
	return model.Lead{
		Name:                text(row, ColumnName),
		OwnerNames:          optionalText(row, ColumnOwners),
		Capital:             number(row, ColumnCapital),
		Score:               score(row),
		City:                optionalText(row, ColumnCity),
		Neighborhood:        neighborhood(row),
		Address:             text(row, ColumnAddress),
		Phones:              text(row, ColumnPhones),
		IsMicroEntrepreneur: flag(row, ColumnMicroEntrepreneur),
		ActivityDescription: text(row, ColumnActivityDescription),
	}
}

// text never yields a true null: absent columns become "", null cells
// become NullText.
func text(row Row, column string) string {
	v, ok := row[column]
	if !ok {
		return ""
	}
	if v == nil {
		return NullText
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return NullText
	}
	return s
}

func optionalText(row Row, column string) string {
	v, ok := row[column]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(cast.ToString(v))
}

func neighborhood(row Row) string {
	if n := optionalText(row, ColumnNeighborhood); n != "" {
		return n
	}
	return model.NeighborhoodNotInformed
}

func number(row Row, column string) float64 {
	v, ok := row[column]
	if !ok || v == nil {
		return 0
	}
	f, err := cast.ToFloat64E(strings.TrimSpace(cast.ToString(v)))
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func score(row Row) int {
	return sanitizer.ClampScore(int(number(row, ColumnScore)))
}

func flag(row Row, column string) bool {
	v, ok := row[column]
	if !ok || v == nil {
		return false
	}
	if b, isBool := v.(bool); isBool {
		return b
	}
	return number(row, column) == 1
}
