package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var phoneFormatting = strings.NewReplacer("(", "", ")", "", "-", "", " ", "")

// SplitPhones splits a comma separated phone list, keeping tokens untouched.
func SplitPhones(phones string) []string {
	return strings.Split(phones, ",")
}

// StripPhoneFormatting removes parentheses, hyphens and spaces.
func StripPhoneFormatting(phone string) string {
	return phoneFormatting.Replace(strings.TrimSpace(phone))
}

// FormatInternational renders a national number of the given region as
// "+55 38 91234-5678". Unparseable input is returned unchanged.
func FormatInternational(number, region string) string {
	if number == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(number, region)
	if err != nil {
		return number
	}
	return phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL)
}
