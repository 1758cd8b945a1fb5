package service

import (
	"context"
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	apperrors "github.com/allisson/notes/internal/errors"
)

// tokenManager implements TokenManager using RS256-signed JWTs backed by a
// fingerprint allow list.
type tokenManager struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	issuer     string
	expiration time.Duration
	tokenRepo  TokenRepository
}

// NewTokenManager creates a new TokenManager from PEM-encoded RSA keys.
// Returns an error if either key fails to parse, so misconfiguration is
// surfaced at startup rather than on the first request.
func NewTokenManager(
	privateKeyPEM string,
	publicKeyPEM string,
	issuer string,
	expiration time.Duration,
	tokenRepo TokenRepository,
) (TokenManager, error) {
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to parse jwt private key")
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to parse jwt public key")
	}

	return &tokenManager{
		privateKey: privateKey,
		publicKey:  publicKey,
		issuer:     issuer,
		expiration: expiration,
		tokenRepo:  tokenRepo,
	}, nil
}

// Issue signs a new access token for the user and stores its fingerprint in
// the allow list. The allow list record is persisted before the token is
// returned, so issuance and verification cannot race.
func (m *tokenManager) Issue(ctx context.Context, userID uuid.UUID) (*authDomain.LoginOutput, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(m.expiration)

	// The token record's ID doubles as the jti claim, so a verified token's
	// claims are enough to revoke it.
	tokenID := uuid.Must(uuid.NewV7())

	claims := &authDomain.AccessClaims{
		UserID:    userID,
		TokenType: authDomain.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(m.privateKey)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign access token")
	}

	fingerprint, err := Fingerprint(signedToken)
	if err != nil {
		return nil, err
	}

	token := &authDomain.Token{
		ID:          tokenID,
		UserID:      userID,
		Fingerprint: fingerprint,
		ExpiresAt:   expiresAt,
		Revoked:     false,
		CreatedAt:   now,
	}

	if err := m.tokenRepo.Create(ctx, token); err != nil {
		return nil, err
	}

	return &authDomain.LoginOutput{
		AccessToken: signedToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// Verify validates an access token and returns its claims.
//
// Signature and expiration are checked before the allow list, so expired and
// tampered tokens are rejected without a database round trip.
func (m *tokenManager) Verify(ctx context.Context, plainToken string) (*authDomain.AccessClaims, error) {
	claims := &authDomain.AccessClaims{}

	_, err := jwt.ParseWithClaims(plainToken, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.publicKey, nil
	}, jwt.WithIssuer(m.issuer))
	if err != nil {
		if apperrors.Is(err, jwt.ErrTokenExpired) {
			return nil, authDomain.ErrTokenExpired
		}
		return nil, authDomain.ErrTokenInvalid
	}

	if claims.TokenType != authDomain.TokenTypeAccess {
		return nil, authDomain.ErrTokenInvalid
	}

	fingerprint, err := Fingerprint(plainToken)
	if err != nil {
		return nil, err
	}

	allowed, err := m.tokenRepo.IsAllowed(ctx, fingerprint)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, authDomain.ErrTokenNotAllowed
	}

	return claims, nil
}

// Revoke marks the token with the given ID as revoked. Revoking an unknown or
// already revoked ID is a no-op.
func (m *tokenManager) Revoke(ctx context.Context, tokenID uuid.UUID) error {
	return m.tokenRepo.Revoke(ctx, tokenID)
}

// CleanupExpired removes allow list records whose expiration time is strictly
// in the past.
func (m *tokenManager) CleanupExpired(ctx context.Context) (int64, error) {
	return m.tokenRepo.DeleteExpired(ctx, time.Now().UTC())
}
