package utils

import (
	"encoding/hex"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
)

// PasetoMaker handles local (symmetric) PASETO v4 operations.
type PasetoMaker struct {
	symmetricKey paseto.V4SymmetricKey
}

// NewPasetoMaker creates a maker from an existing hex-encoded key.
func NewPasetoMaker(keyHex string) (*PasetoMaker, error) {
	key, err := paseto.V4SymmetricKeyFromHex(keyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid symmetric key: %w", err)
	}

	return &PasetoMaker{
		symmetricKey: key,
	}, nil
}

// GenerateSymmetricKey generates a fresh V4 symmetric key. Used once when no
// hex key is configured.
func GenerateSymmetricKey() string {
	key := paseto.NewV4SymmetricKey()
	return hex.EncodeToString(key.ExportBytes())
}

// CreateToken builds an encrypted local V4 token for a dashboard session.
func (m *PasetoMaker) CreateToken(accountID, username, sessionID string, duration time.Duration) (string, error) {
	token := paseto.NewToken()

	token.SetIssuedAt(time.Now())
	token.SetNotBefore(time.Now())
	token.SetExpiration(time.Now().Add(duration))
	token.SetAudience("maintenance-tech")
	token.SetIssuer("mt-service")
	token.SetSubject(accountID)

	token.SetString("username", username)
	token.SetString("jti", sessionID)

	return token.V4Encrypt(m.symmetricKey, nil), nil
}

type PayloadPaseto struct {
	AccountID string
	Username  string
	JTI       string
}

// VerifyToken decrypts and validates the token, returning its claims.
func (m *PasetoMaker) VerifyToken(tokenString string) (*PayloadPaseto, error) {
	parser := paseto.NewParser()
	parser.AddRule(paseto.NotExpired())
	parser.AddRule(paseto.ValidAt(time.Now()))

	token, err := parser.ParseV4Local(m.symmetricKey, tokenString, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired token: %w", err)
	}

	accountID, err := token.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("missing subject claim: %w", err)
	}

	username, err := token.GetString("username")
	if err != nil {
		return nil, fmt.Errorf("missing username claim: %w", err)
	}

	jti, err := token.GetString("jti")
	if err != nil {
		return nil, fmt.Errorf("missing jti claim: %w", err)
	}

	return &PayloadPaseto{
		AccountID: accountID,
		Username:  username,
		JTI:       jti,
	}, nil
}
