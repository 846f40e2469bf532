package security

import "crypto/subtle"

// ZeroBytes overwrites a byte slice so key material and MAC values do not
// linger in memory after use.
func ZeroBytes(data []byte) {
	if len(data) == 0 {
		return
	}

	for i := range data {
		data[i] = 0xFF
	}
	for i := range data {
		data[i] = 0
	}
}

// Compare reports whether a and b are equal without leaking the position of
// the first differing byte through timing. Slices of different lengths
// compare unequal in constant time with respect to their contents.
func Compare(a, b []byte) bool {
	if len(a) != len(b) {
		// Burn comparable work so length mismatches do not return early.
		subtle.ConstantTimeCompare(a, a)
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
