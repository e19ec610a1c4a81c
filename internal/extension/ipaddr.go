package extension

import "regexp"

// octet accepts 0-255 with up to one optional leading 0 or 1, so "00" and
// "000" pass as well.
const octet = `([01]?\d\d?|2[0-4]\d|25[0-5])`

var ipv4Re = regexp.MustCompile(`^` + octet + `\.` + octet + `\.` + octet + `\.` + octet + `$`)

// IsValidIP reports whether s is a dotted-quad IPv4 address. s is expected to
// be trimmed already; surrounding whitespace is rejected.
func IsValidIP(s string) bool {
	if s == "" {
		return false
	}
	return ipv4Re.MatchString(s)
}

// ValidateIP returns a KindInvalidIPFormat error when s is not accepted by
// IsValidIP.
func ValidateIP(s string) error {
	if !IsValidIP(s) {
		return &Error{Kind: KindInvalidIPFormat, Path: s}
	}
	return nil
}
