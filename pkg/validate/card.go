package validate

// IsCreditCard reports whether s is exactly 16 numeric digits. No checksum
// or issuer check is applied.
func IsCreditCard(s string) bool {
	return isDigits(s, 16)
}

// IsPIN reports whether s is exactly 4 numeric digits.
func IsPIN(s string) bool {
	return isDigits(s, 4)
}

// IsCUIT reports whether s is exactly 11 numeric digits.
func IsCUIT(s string) bool {
	return isDigits(s, 11)
}

func isDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
