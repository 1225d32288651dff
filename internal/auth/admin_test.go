package auth

import (
	"testing"
	"time"
)

func newTestAdmin(t *testing.T) *Admin {
	t.Helper()
	hash, err := Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	jwt := NewJWTManager("um-segredo-bem-grande-para-testes-123", time.Hour)
	return NewAdmin("Admin@Example.com", hash, jwt)
}

func TestLoginEmiteTokenValido(t *testing.T) {
	admin := newTestAdmin(t)

	token, err := admin.Login("admin@example.com", "correct horse battery staple")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	jwt := NewJWTManager("um-segredo-bem-grande-para-testes-123", time.Hour)
	claims, err := jwt.ParseAndValidate(token)
	if err != nil {
		t.Fatalf("token emitido não valida: %v", err)
	}
	if claims.Subject != "admin@example.com" {
		t.Fatalf("subject %q", claims.Subject)
	}
}

func TestLoginSenhaErrada(t *testing.T) {
	admin := newTestAdmin(t)

	if _, err := admin.Login("admin@example.com", "wrong"); err == nil {
		t.Fatal("esperava credenciais inválidas")
	}
}

func TestLoginEmailErrado(t *testing.T) {
	admin := newTestAdmin(t)

	if _, err := admin.Login("other@example.com", "correct horse battery staple"); err == nil {
		t.Fatal("esperava credenciais inválidas")
	}
}

func TestParseAndValidateRejeitaSegredoErrado(t *testing.T) {
	jwt := NewJWTManager("um-segredo-bem-grande-para-testes-123", time.Hour)
	token, _, err := jwt.GenerateAccessToken("admin@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := NewJWTManager("outro-segredo-igualmente-grande-456", time.Hour)
	if _, err := other.ParseAndValidate(token); err == nil {
		t.Fatal("token com segredo errado passou")
	}
}
