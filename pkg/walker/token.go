package walker

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var expiryClaims = []string{"exp", "expiration", "expires_at"}

// TokenExpiry reads the expiry claim of a JWT without verifying it.
// Numeric claims above 1e12 are taken as milliseconds.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	var value any
	for _, name := range expiryClaims {
		if v, ok := claims[name]; ok && v != nil {
			value = v
			break
		}
	}

	switch v := value.(type) {
	case float64:
		return unixExpiry(v), true
	case string:
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	}

	return time.Time{}, false
}

func unixExpiry(v float64) time.Time {
	if v > 1e12 {
		return time.UnixMilli(int64(v))
	}
	return time.Unix(int64(v), 0)
}
