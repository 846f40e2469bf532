// Package codec provides the canonical JSON serialization and base64url
// framing shared by token encoding and decoding.
package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNullResult is returned when deserialization yields a null value for
// input that is not the literal JSON null. It guards against parse
// conventions where "no error but null" would be mistaken for valid input.
var ErrNullResult = errors.New("null result with non-null input")

// Serialize renders v as compact JSON text. Unlike json.Marshal it does not
// HTML-escape <, >, or &, so non-ASCII and markup characters pass through
// verbatim; only control characters and structurally required characters are
// escaped.
func Serialize(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	// Encode appends a newline that is not part of the JSON text.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// DeserializeObject parses JSON text into a string-keyed mapping. Parse
// failures, non-object values, and the null-result case are all reported as
// errors; a nil map is never returned alongside a nil error.
func DeserializeObject(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	if m == nil {
		if isJSONNull(data) {
			return nil, fmt.Errorf("expected object, got null")
		}
		return nil, ErrNullResult
	}

	return m, nil
}

func isJSONNull(data []byte) bool {
	return string(bytes.TrimSpace(data)) == "null"
}

// EncodeSegment encodes raw bytes as unpadded base64url, the framing used
// for all three token segments.
func EncodeSegment(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeSegment reverses EncodeSegment. Input is repadded to a multiple of
// four characters before decoding, so both padded and unpadded forms are
// accepted. Invalid alphabet or length is an error.
func DecodeSegment(s string) ([]byte, error) {
	// The stdlib decoder silently skips \r and \n, so validate the alphabet
	// ourselves before handing it the repadded input.
	trimmed := strings.TrimRight(s, "=")
	if !isBase64URL(trimmed) {
		return nil, fmt.Errorf("invalid base64url alphabet")
	}

	if rem := len(trimmed) % 4; rem != 0 {
		trimmed += strings.Repeat("=", 4-rem)
	}
	return base64.URLEncoding.Strict().DecodeString(trimmed)
}

func isBase64URL(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= 'A' && c <= 'Z') ||
			(c >= 'a' && c <= 'z') ||
			(c >= '0' && c <= '9') ||
			c == '-' || c == '_') {
			return false
		}
	}
	return true
}
