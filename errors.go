package jwt

import (
	"errors"
	"fmt"
)

// Class sentinels, one per failure category. Match with errors.Is to branch
// on the category of a failure without string matching.
var (
	// ErrEncoding indicates a JSON serialization or base64url framing failure.
	ErrEncoding = errors.New("encoding error")

	// ErrUnsupportedAlgorithm indicates an algorithm identifier outside the
	// supported HS256/HS384/HS512 set, whether requested by the caller or
	// declared in a token header.
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")

	// ErrMalformedToken indicates a structural token defect: wrong segment
	// count, invalid base64url, or a segment that does not decode to JSON.
	ErrMalformedToken = errors.New("malformed token")

	// ErrAlgorithm indicates a token header with a missing or empty alg value.
	ErrAlgorithm = errors.New("invalid algorithm header")

	// ErrSignature indicates that the recomputed MAC does not match the
	// signature carried by the token.
	ErrSignature = errors.New("signature verification failed")

	// ErrClaimTiming indicates an iat, exp, or nbf claim violated at the
	// current time.
	ErrClaimTiming = errors.New("claim timing violation")
)

// Code identifies the precise failure within a category. Codes are stable;
// callers may persist or switch on them.
type Code int

const (
	// CodeNonSerializable: the payload contains values JSON cannot represent.
	CodeNonSerializable Code = iota + 1

	// CodeWrongSegmentCount: the token does not split into three non-empty
	// dot-separated segments.
	CodeWrongSegmentCount

	// CodeInvalidSegmentEncoding: the header or payload segment failed
	// base64url or JSON decoding.
	CodeInvalidSegmentEncoding

	// CodeTokenTooLarge: the token string exceeds the structural size cap.
	CodeTokenTooLarge

	// CodeEmptyAlgorithm: the header alg field is absent, empty, or not a
	// string.
	CodeEmptyAlgorithm

	// CodeUnknownAlgorithm: the algorithm identifier is not in the supported
	// set.
	CodeUnknownAlgorithm

	// CodeSignatureMismatch: the provided signature does not match the
	// recomputed one.
	CodeSignatureMismatch

	// CodeIssuedInFuture: the iat claim is later than the current time.
	CodeIssuedInFuture

	// CodeExpired: the exp claim is earlier than the current time.
	CodeExpired

	// CodeNotYetValid: the nbf claim is later than the current time.
	CodeNotYetValid

	// CodeMalformedClaim: a temporal claim is present but not numeric.
	CodeMalformedClaim
)

// class maps a code to its category sentinel.
func (c Code) class() error {
	switch c {
	case CodeNonSerializable:
		return ErrEncoding
	case CodeUnknownAlgorithm:
		return ErrUnsupportedAlgorithm
	case CodeWrongSegmentCount, CodeInvalidSegmentEncoding, CodeTokenTooLarge:
		return ErrMalformedToken
	case CodeEmptyAlgorithm:
		return ErrAlgorithm
	case CodeSignatureMismatch:
		return ErrSignature
	case CodeIssuedInFuture, CodeExpired, CodeNotYetValid, CodeMalformedClaim:
		return ErrClaimTiming
	default:
		return nil
	}
}

// Error is the concrete error type returned by every operation in this
// package. It carries the failure Code alongside a human-readable message
// and, where one exists, the underlying cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	class := e.Code.class()
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", class, e.Message, e.Err)
	}
	return fmt.Sprintf("%v: %s", class, e.Message)
}

// Is reports whether target is the class sentinel for this error's code, so
// errors.Is(err, ErrSignature) and friends work as expected.
func (e *Error) Is(target error) bool {
	return target == e.Code.class()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func wrapError(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf extracts the failure Code from an error returned by this package.
// It returns 0 for nil and for errors that did not originate here.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}
