// Package masking provides one-way partial redaction of identity fields
// before they are attached to telemetry. Masked values keep a short prefix
// for support correlation and destroy the remainder.
package masking

// Marker is appended to every masked value.
const Marker = "****"

const (
	userIDPrefixLen   = 4
	userNamePrefixLen = 2
)

// UserID masks a user identifier. Inputs longer than four characters keep
// their first four characters; shorter or equal-length inputs are kept
// whole. Empty input is returned unchanged.
func UserID(raw string) string {
	return mask(raw, userIDPrefixLen)
}

// UserName masks a display name with a two-character prefix.
func UserName(raw string) string {
	return mask(raw, userNamePrefixLen)
}

func mask(raw string, prefixLen int) string {
	if raw == "" {
		return raw
	}
	runes := []rune(raw)
	if len(runes) > prefixLen {
		return string(runes[:prefixLen]) + Marker
	}
	return raw + Marker
}
