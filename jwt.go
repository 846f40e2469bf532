package jwt

import (
	"strings"
	"time"

	"github.com/verdantlabs/jwt/internal/codec"
	"github.com/verdantlabs/jwt/internal/security"
)

// maxTokenLength bounds the accepted token size. 8KB is generous for any
// legitimate HMAC token.
const maxTokenLength = 8192

type header struct {
	Typ string    `json:"typ"`
	Alg Algorithm `json:"alg"`
}

// EncodeOption adjusts how Encode builds a token.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	algorithm Algorithm
}

// WithAlgorithm selects the signing algorithm. The default is HS256.
func WithAlgorithm(algorithm Algorithm) EncodeOption {
	return func(o *encodeOptions) {
		o.algorithm = algorithm
	}
}

// Encode builds a signed token from a claim set: header and payload are
// serialized to JSON, base64url-encoded, joined with '.', and the MAC over
// that signing input forms the third segment.
//
// The key is used for this call only and never retained. Map iteration order
// makes the payload segment byte-unstable across calls for semantically
// equal claim sets; all such tokens remain mutually verifiable.
func Encode(claims Claims, key []byte, opts ...EncodeOption) (string, error) {
	options := encodeOptions{algorithm: HS256}
	for _, opt := range opts {
		opt(&options)
	}

	if !options.algorithm.Supported() {
		return "", newError(CodeUnknownAlgorithm, "unknown algorithm "+string(options.algorithm))
	}

	headerJSON, err := codec.Serialize(header{Typ: "JWT", Alg: options.algorithm})
	if err != nil {
		return "", wrapError(CodeNonSerializable, "cannot serialize header", err)
	}

	payloadJSON, err := codec.Serialize(claims)
	if err != nil {
		return "", wrapError(CodeNonSerializable, "cannot serialize claims", err)
	}

	signingInput := codec.EncodeSegment(headerJSON) + "." + codec.EncodeSegment(payloadJSON)

	signature, err := Sign([]byte(signingInput), key, options.algorithm)
	if err != nil {
		return "", err
	}

	return signingInput + "." + codec.EncodeSegment(signature), nil
}

// DecodeOption adjusts how Decode verifies a token.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	validateClaims bool
	leeway         time.Duration
	clock          Clock
}

// WithoutClaimValidation disables the temporal claim checks (iat, exp, nbf).
// Signature verification is unaffected: it always runs when a key is given.
func WithoutClaimValidation() DecodeOption {
	return func(o *decodeOptions) {
		o.validateClaims = false
	}
}

// WithLeeway tolerates up to d of clock skew between issuer and verifier
// when checking temporal claims. The default is zero: an iat even one second
// in the future is fatal.
func WithLeeway(d time.Duration) DecodeOption {
	return func(o *decodeOptions) {
		o.leeway = d
	}
}

// WithClock replaces the wall-clock read used for temporal claim checks.
func WithClock(clock Clock) DecodeOption {
	return func(o *decodeOptions) {
		o.clock = clock
	}
}

// Decode parses a token, verifies its signature, validates its temporal
// claims, and returns the claim set unmodified. The checks run in a strict
// order, each a potential exit point:
//
//  1. exactly three non-empty dot-separated segments (ErrMalformedToken);
//  2. header segment decodes to a JSON object (ErrMalformedToken);
//  3. payload segment decodes to a JSON object (ErrMalformedToken);
//  4. header alg is present and non-empty (ErrAlgorithm) and names a
//     supported algorithm (ErrUnsupportedAlgorithm);
//  5. the MAC recomputed over the token's literal header and payload
//     substrings matches the signature segment (ErrSignature);
//  6. iat, then exp, then nbf hold at the current time (ErrClaimTiming).
//
// A nil key skips step 5 only: the caller gets decoded but cryptographically
// unverified claims. Step 6 is skipped under WithoutClaimValidation.
// There are no partial results; on any failure no claims are returned.
func Decode(token string, key []byte, opts ...DecodeOption) (Claims, error) {
	options := decodeOptions{validateClaims: true, clock: systemClock}
	for _, opt := range opts {
		opt(&options)
	}

	if len(token) > maxTokenLength {
		return nil, newError(CodeTokenTooLarge, "token too large")
	}

	headerB64, payloadB64, signatureB64, err := splitToken(token)
	if err != nil {
		return nil, err
	}

	head, err := decodeObjectSegment(headerB64)
	if err != nil {
		return nil, err
	}

	payload, err := decodeObjectSegment(payloadB64)
	if err != nil {
		return nil, err
	}

	alg, ok := head["alg"].(string)
	if !ok || alg == "" {
		return nil, newError(CodeEmptyAlgorithm, "empty algorithm")
	}
	if !Algorithm(alg).Supported() {
		return nil, newError(CodeUnknownAlgorithm, "unknown algorithm "+alg)
	}

	if key != nil {
		if err := verifySignature(headerB64, payloadB64, signatureB64, key, Algorithm(alg)); err != nil {
			return nil, err
		}
	}

	if options.validateClaims {
		if err := Claims(payload).validateTiming(options.clock(), options.leeway); err != nil {
			return nil, err
		}
	}

	return payload, nil
}

// splitToken splits a token into its three segments, rejecting anything but
// exactly three non-empty parts.
func splitToken(token string) (string, string, string, error) {
	first := strings.IndexByte(token, '.')
	if first < 0 {
		return "", "", "", newError(CodeWrongSegmentCount, "wrong number of segments")
	}

	second := strings.IndexByte(token[first+1:], '.')
	if second < 0 {
		return "", "", "", newError(CodeWrongSegmentCount, "wrong number of segments")
	}
	second += first + 1

	head, payload, sig := token[:first], token[first+1:second], token[second+1:]
	if head == "" || payload == "" || sig == "" || strings.IndexByte(sig, '.') >= 0 {
		return "", "", "", newError(CodeWrongSegmentCount, "wrong number of segments")
	}

	return head, payload, sig, nil
}

// decodeObjectSegment unframes one base64url segment into a JSON object. All
// failure modes, including a null parse result for non-null input, surface
// as the same malformed-token code.
func decodeObjectSegment(segment string) (map[string]any, error) {
	raw, err := codec.DecodeSegment(segment)
	if err != nil {
		return nil, wrapError(CodeInvalidSegmentEncoding, "invalid segment encoding", err)
	}

	obj, err := codec.DeserializeObject(raw)
	if err != nil {
		return nil, wrapError(CodeInvalidSegmentEncoding, "invalid segment encoding", err)
	}

	return obj, nil
}

// verifySignature recomputes the MAC over the literal base64url substrings
// taken from the input token. Re-serializing the decoded objects instead
// could reorder keys or change whitespace and reject valid tokens.
func verifySignature(headerB64, payloadB64, signatureB64 string, key []byte, algorithm Algorithm) error {
	provided, err := codec.DecodeSegment(signatureB64)
	if err != nil {
		return wrapError(CodeInvalidSegmentEncoding, "invalid segment encoding", err)
	}

	expected, err := Sign([]byte(headerB64+"."+payloadB64), key, algorithm)
	if err != nil {
		return err
	}

	if !security.Compare(provided, expected) {
		return newError(CodeSignatureMismatch, "signature verification failed")
	}

	return nil
}
