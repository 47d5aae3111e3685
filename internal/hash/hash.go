// Package hash derives the content-addressed identity keys for users and
// addresses. Keys are pure functions of the normalized field values, so
// field-wise-equal records always collide to the same stored row.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// AddressKey hashes the normalized address fields. Normalization is
// trim + lowercase per field; an unset field contributes an empty string, so
// the key is always computable.
func AddressKey(countryID, city, state, zipCode string) string {
	return digest(normalize(countryID), normalize(city), normalize(state), normalize(zipCode))
}

// UserKey hashes the normalized email.
func UserKey(email string) string {
	return digest(normalize(email))
}

func normalize(field string) string {
	return strings.ToLower(strings.TrimSpace(field))
}

func digest(fields ...string) string {
	h := sha256.New()
	for i, f := range fields {
		if i > 0 {
			// Field separator keeps ("ab","c") and ("a","bc") apart.
			_, _ = h.Write([]byte{0})
		}
		_, _ = h.Write([]byte(f))
	}
	return hex.EncodeToString(h.Sum(nil))
}
