package jwt

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Claims is the payload mapping carried inside a token: assertions about a
// subject keyed by string, holding any JSON-representable value. The keys
// iat, exp, and nbf (epoch seconds) have temporal semantics during Decode;
// no other key is schema-constrained.
type Claims map[string]any

// NewClaims builds a claim set pre-populated with a unique jti, the issuer,
// an iat of now, and an exp of now+ttl. Add custom claims directly to the
// returned map before encoding.
func NewClaims(issuer string, ttl time.Duration) Claims {
	now := time.Now()
	return Claims{
		"jti": uuid.NewString(),
		"iss": issuer,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
}

// ExpiresAt returns the exp claim as a time, if present and numeric.
func (c Claims) ExpiresAt() (time.Time, bool) {
	return c.timeClaim("exp")
}

// IssuedAt returns the iat claim as a time, if present and numeric.
func (c Claims) IssuedAt() (time.Time, bool) {
	return c.timeClaim("iat")
}

// NotBefore returns the nbf claim as a time, if present and numeric.
func (c Claims) NotBefore() (time.Time, bool) {
	return c.timeClaim("nbf")
}

func (c Claims) timeClaim(name string) (time.Time, bool) {
	sec, ok, err := c.numericClaim(name)
	if err != nil || !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(sec), 0).UTC(), true
}

// numericClaim extracts a claim as epoch seconds. Decoded tokens carry JSON
// numbers as float64; caller-built claim maps may hold Go integer types or
// json.Number, all of which are accepted. A claim that is present but not
// numeric is an error, never silently skipped.
func (c Claims) numericClaim(name string) (float64, bool, error) {
	v, ok := c[name]
	if !ok {
		return 0, false, nil
	}

	switch n := v.(type) {
	case float64:
		return n, true, nil
	case float32:
		return float64(n), true, nil
	case int:
		return float64(n), true, nil
	case int32:
		return float64(n), true, nil
	case int64:
		return float64(n), true, nil
	case uint:
		return float64(n), true, nil
	case uint64:
		return float64(n), true, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false, newError(CodeMalformedClaim, name+" is not a number")
		}
		return f, true, nil
	default:
		return 0, false, newError(CodeMalformedClaim, name+" is not a number")
	}
}

// validateTiming checks iat, then exp, then nbf against now; the first
// violated check wins and short-circuits the rest. Leeway loosens all three
// comparisons to tolerate clock skew between issuer and verifier.
func (c Claims) validateTiming(now time.Time, leeway time.Duration) error {
	nowSec := float64(now.Unix())
	skew := leeway.Seconds()

	if iat, ok, err := c.numericClaim("iat"); err != nil {
		return err
	} else if ok && iat > nowSec+skew {
		return newError(CodeIssuedInFuture, "iat in the future")
	}

	if exp, ok, err := c.numericClaim("exp"); err != nil {
		return err
	} else if ok && exp < nowSec-skew {
		return newError(CodeExpired, "token expired")
	}

	if nbf, ok, err := c.numericClaim("nbf"); err != nil {
		return err
	} else if ok && nbf > nowSec+skew {
		return newError(CodeNotYetValid, "token not yet valid")
	}

	return nil
}
