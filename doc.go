// Package jwt implements compact, self-contained, HMAC-signed claim tokens
// compatible with the JWT wire format: three dot-joined base64url segments
// carrying a JSON header, a JSON claim set, and a MAC over the first two
// segments.
//
// The package is a set of stateless free functions. Encode builds and signs a
// token, Decode verifies and unpacks one, Sign computes a raw MAC. There is
// no shared state: keys are caller-owned, never cached or persisted, and
// every operation is safe for concurrent use.
//
//	claims := jwt.Claims{"sub": "user123", "exp": time.Now().Add(time.Hour).Unix()}
//	token, err := jwt.Encode(claims, key)
//	...
//	claims, err = jwt.Decode(token, key)
//
// Supported algorithms are HS256, HS384, and HS512. Asymmetric algorithms,
// key management, and revocation are out of scope.
//
// Failures are typed: match categories with errors.Is against the package
// sentinels (ErrMalformedToken, ErrSignature, ...) or branch on the precise
// subcode via CodeOf.
package jwt
