package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/urbanbyte/portfolio-api/internal/apierror"
)

// Admin autentica o único usuário administrativo, cujas credenciais
// vêm do ambiente (e-mail + hash Argon2id).
type Admin struct {
	email        string
	passwordHash string
	jwt          *JWTManager
}

func NewAdmin(email, passwordHash string, jwt *JWTManager) *Admin {
	return &Admin{email: strings.ToLower(strings.TrimSpace(email)), passwordHash: passwordHash, jwt: jwt}
}

var errInvalidCredentials = apierror.New("Invalid credentials", http.StatusUnauthorized)

// Login valida e-mail e senha e emite o token de acesso.
func (a *Admin) Login(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if subtle.ConstantTimeCompare([]byte(email), []byte(a.email)) != 1 {
		// Ainda paga o custo do hash para não vazar qual campo falhou.
		_, _ = Verify(password, a.passwordHash)
		return "", errInvalidCredentials
	}

	ok, err := Verify(password, a.passwordHash)
	if err != nil || !ok {
		return "", errInvalidCredentials
	}

	token, _, err := a.jwt.GenerateAccessToken(a.email)
	if err != nil {
		return "", err
	}
	return token, nil
}
