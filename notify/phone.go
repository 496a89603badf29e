package notify

import "strings"

// FormatPhone normalizes a raw phone number into the vendor's expected
// international form: digits only, prefixed with the configured country
// code unless the number already carries one.
func FormatPhone(raw, countryPrefix string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	hadPlus := strings.HasPrefix(raw, "+")
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}
	if hadPlus {
		return "+" + digits.String()
	}

	prefix := strings.TrimPrefix(strings.TrimSpace(countryPrefix), "+")
	num := digits.String()
	// Leading zeros are trunk prefixes, dropped in international format.
	num = strings.TrimLeft(num, "0")
	if prefix != "" && strings.HasPrefix(num, prefix) {
		return "+" + num
	}
	return "+" + prefix + num
}
