package hold

import (
	"crypto/rand"
	"encoding/base64"

	"field-booking/internal/pkg/errs"
)

const tokenBytes = 32

// NewToken returns an unguessable URL-safe token.
func NewToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to read random bytes for hold token")
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
