package apikey

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"animals-registry/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("api key not configured")
	ErrInvalidKey    = errors.New("invalid api key")
)

const DefaultOperator = "operator"

// Verifier implementa auth.AuthVerifier contra una única API key estática.
type Verifier struct {
	key      []byte
	operator string
}

func NewVerifier(key, operator string) *Verifier {
	operator = strings.TrimSpace(operator)
	if operator == "" {
		operator = DefaultOperator
	}
	return &Verifier{
		key:      []byte(strings.TrimSpace(key)),
		operator: operator,
	}
}

func (v *Verifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if v == nil || len(v.key) == 0 {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if subtle.ConstantTimeCompare([]byte(token), v.key) != 1 {
		return auth.Claims{}, ErrInvalidKey
	}
	return auth.Claims{UserID: v.operator, Method: "api_key"}, nil
}
