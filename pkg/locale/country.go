package locale

import "strings"

const DefaultCountry = "BR"

type Country struct {
	Code     string // ISO 3166-1 alpha-2 country code (e.g., "BR")
	Name     string
	DialCode string // international calling code without "+" (e.g., "55")
}

var Countries = map[string]Country{
	"BR": {Code: "BR", Name: "Brazil", DialCode: "55"},
	"PT": {Code: "PT", Name: "Portugal", DialCode: "351"},
	"AR": {Code: "AR", Name: "Argentina", DialCode: "54"},
	"US": {Code: "US", Name: "United States", DialCode: "1"},
	"IL": {Code: "IL", Name: "Israel", DialCode: "972"},
}

// Lookup finds a country by its ISO code, case-insensitively.
func Lookup(code string) (Country, bool) {
	c, ok := Countries[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// MustLookup returns the country for code, falling back to DefaultCountry.
func MustLookup(code string) Country {
	if c, ok := Lookup(code); ok {
		return c
	}
	return Countries[DefaultCountry]
}
