package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
	"golang.org/x/crypto/blake2b"
)

// SessionTokenExpiry is how long a login session token stays valid.
const SessionTokenExpiry = 24 * time.Hour

// SessionClaims is the data carried in a session token.
type SessionClaims struct {
	DoctorName string    `json:"doctorName"`
	Language   string    `json:"language"`
	Expiry     time.Time `json:"expiry"`
}

// TokenIssuer encrypts and decrypts PASETO v2 local session tokens.
type TokenIssuer struct {
	key []byte
	now func() time.Time
}

// NewTokenIssuer derives the 32-byte symmetric key from secret.
func NewTokenIssuer(secret string) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("session secret must not be empty")
	}
	sum := blake2b.Sum256([]byte(secret))
	return &TokenIssuer{key: sum[:], now: time.Now}, nil
}

// Issue creates a session token for the doctor.
func (i *TokenIssuer) Issue(doctorName, language string) (string, error) {
	claims := SessionClaims{
		DoctorName: doctorName,
		Language:   language,
		Expiry:     i.now().Add(SessionTokenExpiry),
	}
	token, err := paseto.NewV2().Encrypt(i.key, claims, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Validate decrypts the token and checks its expiry.
func (i *TokenIssuer) Validate(token string) (*SessionClaims, error) {
	var claims SessionClaims
	if err := paseto.NewV2().Decrypt(token, i.key, &claims, nil); err != nil {
		return nil, fmt.Errorf("failed to decrypt token: %w", err)
	}
	if i.now().After(claims.Expiry) {
		return nil, errors.New("token expired")
	}
	return &claims, nil
}
