package auth

import "context"

// AuthVerifier valida un bearer token. Hoy la única implementación es la API key.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
