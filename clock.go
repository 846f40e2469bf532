package jwt

import "time"

// Clock supplies the current time for temporal claim validation. Inject a
// fixed clock through WithClock for deterministic expiry tests.
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now()
}
