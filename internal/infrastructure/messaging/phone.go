package messaging

import "strings"

const (
	defaultCountryCode = "256"
	localNumberLength  = 9 // Ugandan subscriber number without trunk prefix
)

// NormalizeDispatchPhone rewrites a phone number into the form the WhatsApp
// Cloud API expects: digits only, country code, no plus sign.
//
// Rules, in order:
//   - drop every non-digit character
//   - a leading trunk "0" is replaced by the country code
//   - a bare local-length number gets the country code prefixed
//
// This is presentational for the dispatch target only. Stored customer
// phone numbers are never rewritten; match keys strip whitespace and
// nothing else.
func NormalizeDispatchPhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if strings.HasPrefix(cleaned, "0") {
		return defaultCountryCode + cleaned[1:]
	}
	if !strings.HasPrefix(cleaned, defaultCountryCode) && len(cleaned) <= localNumberLength {
		return defaultCountryCode + cleaned
	}
	return cleaned
}
