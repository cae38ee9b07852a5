package session

import "strings"

const accentedLetters = "áéíóúÁÉÍÓÚñÑ"

// ValidUsername reports whether every rune of s is a Latin letter, the
// Spanish accented vowels or ñ. The empty string is valid; emptiness is
// checked separately.
func ValidUsername(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case strings.ContainsRune(accentedLetters, r):
		default:
			return false
		}
	}
	return true
}
