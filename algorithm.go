package jwt

import (
	"github.com/verdantlabs/jwt/internal/signing"
)

// Algorithm identifies a supported HMAC signing algorithm. Identifiers are
// exact, case-sensitive strings matching the values carried in token headers.
type Algorithm string

const (
	// HS256 uses HMAC with SHA-256 (the default).
	HS256 Algorithm = "HS256"

	// HS384 uses HMAC with SHA-384.
	HS384 Algorithm = "HS384"

	// HS512 uses HMAC with SHA-512.
	HS512 Algorithm = "HS512"
)

// Supported reports whether the identifier names one of the supported
// algorithms.
func (a Algorithm) Supported() bool {
	return signing.Lookup(string(a)) != nil
}

// Sign computes the raw MAC of message under key with the given algorithm.
// The output is unencoded MAC bytes; Encode frames them as base64url when
// building a token. Unknown identifiers fail with ErrUnsupportedAlgorithm.
func Sign(message, key []byte, algorithm Algorithm) ([]byte, error) {
	method := signing.Lookup(string(algorithm))
	if method == nil {
		return nil, newError(CodeUnknownAlgorithm, "unknown algorithm "+string(algorithm))
	}
	return method.Sign(message, key), nil
}
