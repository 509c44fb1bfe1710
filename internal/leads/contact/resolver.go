package contact

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"radar/internal/leads/normalizer"
	"radar/pkg/locale"
	"radar/pkg/model"
	"radar/pkg/sanitizer"
)

const (
	MapSearchURL  = "https://www.google.com/maps/search/?api=1&query="
	WhatsAppURL   = "https://wa.me/"
	minAddressLen = 10
	minMobileLen  = 10
	mobileMarker  = "9"
)

type Resolver struct {
	country locale.Country
}

func NewResolver(country locale.Country) *Resolver {
	return &Resolver{country: country}
}

// AddressIsValid is a heuristic: long enough and free of null placeholders.
// Length is counted in characters, so "Praça" is five long.
func AddressIsValid(address string) bool {
	return utf8.RuneCountInString(address) > minAddressLen &&
		!strings.Contains(address, normalizer.NoneText) &&
		!strings.Contains(address, normalizer.NullText)
}

// MapLink encodes the whole address as the query value. Spaces become %20
// and reserved characters such as & + = are escaped.
func MapLink(address string) string {
	return MapSearchURL + strings.ReplaceAll(url.QueryEscape(address), "+", "%20")
}

// FirstMobile returns the first token that looks like a mobile number, with
// its formatting stripped. The "9" is looked up in the raw token.
func FirstMobile(phones string) (string, bool) {
	for _, token := range sanitizer.SplitPhones(phones) {
		stripped := sanitizer.StripPhoneFormatting(token)
		if strings.Contains(token, mobileMarker) && utf8.RuneCountInString(stripped) >= minMobileLen {
			return stripped, true
		}
	}
	return "", false
}

func FallbackPhone(phones string) string {
	return strings.TrimSpace(sanitizer.SplitPhones(phones)[0])
}

func (r *Resolver) WhatsAppLink(mobile string) string {
	return WhatsAppURL + r.country.DialCode + mobile
}

func (r *Resolver) ResolvePhone(phones string) model.ContactLink {
	mobile, ok := FirstMobile(phones)
	if !ok {
		return model.ContactLink{FallbackPhone: FallbackPhone(phones)}
	}

	return model.ContactLink{
		WhatsAppLink:  r.WhatsAppLink(mobile),
		Mobile:        mobile,
		MobileDisplay: sanitizer.FormatInternational(mobile, r.country.Code),
	}
}

// Resolve fills the contact part of a view: address validity, map link and
// the messaging shortcut.
func (r *Resolver) Resolve(lead model.Lead) (valid bool, mapLink string, link model.ContactLink) {
	valid = AddressIsValid(lead.Address)
	if valid {
		mapLink = MapLink(lead.Address)
	}
	return valid, mapLink, r.ResolvePhone(lead.Phones)
}
