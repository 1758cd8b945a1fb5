package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	authDomain "github.com/allisson/notes/internal/auth/domain"
)

// Fingerprint computes the SHA-256 hex digest of a JWT's signing input,
// the header and claims segments joined by a dot. The signature segment is
// excluded, so re-signing the same payload yields the same fingerprint.
// Returns ErrTokenInvalid if the token has fewer than two segments.
func Fingerprint(token string) (string, error) {
	parts := strings.SplitN(token, ".", 3)
	if len(parts) < 2 {
		return "", authDomain.ErrTokenInvalid
	}

	sum := sha256.Sum256([]byte(parts[0] + "." + parts[1]))
	return hex.EncodeToString(sum[:]), nil
}
