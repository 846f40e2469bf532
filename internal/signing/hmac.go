// Package signing maps algorithm identifiers to their HMAC constructions
// and computes or checks MACs over token signing input.
package signing

import (
	"crypto"
	"crypto/hmac"

	_ "crypto/sha256"
	_ "crypto/sha512"

	"github.com/verdantlabs/jwt/internal/security"
)

// Method is one supported HMAC construction.
type Method struct {
	name string
	hash crypto.Hash
}

var methods = map[string]*Method{
	"HS256": {"HS256", crypto.SHA256},
	"HS384": {"HS384", crypto.SHA384},
	"HS512": {"HS512", crypto.SHA512},
}

// Lookup returns the method for an algorithm identifier, or nil when the
// identifier is not supported. Matching is exact and case-sensitive.
func Lookup(alg string) *Method {
	return methods[alg]
}

// Alg returns the algorithm identifier carried in token headers.
func (m *Method) Alg() string {
	return m.name
}

// Hash returns the underlying hash function.
func (m *Method) Hash() crypto.Hash {
	return m.hash
}

// Sign computes the raw MAC of message under key.
func (m *Method) Sign(message, key []byte) []byte {
	h := hmac.New(m.hash.New, key)
	h.Write(message)
	return h.Sum(nil)
}

// Verify reports whether signature is the MAC of message under key, using a
// constant-time comparison.
func (m *Method) Verify(message, signature, key []byte) bool {
	expected := m.Sign(message, key)
	defer security.ZeroBytes(expected)

	return security.Compare(signature, expected)
}
