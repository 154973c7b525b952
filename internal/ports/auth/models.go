package auth

// Claims identifica a quien hace el request.
// Con API key no hay usuario real: UserID es el nombre del operador.
type Claims struct {
	UserID string
	Method string // "debug" | "api_key"
}
