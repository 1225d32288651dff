package contact

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubMailer struct {
	sent    []string
	failFor string
}

func (s *stubMailer) Send(ctx context.Context, to, subject, body string) error {
	if s.failFor != "" && to == s.failFor {
		return errors.New("smtp: recusado")
	}
	s.sent = append(s.sent, to+"|"+subject)
	return nil
}

func validMessage() Message {
	return Message{
		FullName: "Maria Silva",
		Email:    "maria@example.com",
		Message:  "Gostei muito do portfólio!",
	}
}

func TestSubmitEnviaParaAdminERemetente(t *testing.T) {
	mailer := &stubMailer{}
	svc := NewService(mailer, "admin@example.com")

	if err := svc.Submit(context.Background(), validMessage()); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(mailer.sent) != 2 {
		t.Fatalf("esperava 2 envios, houve %d", len(mailer.sent))
	}
	if !strings.HasPrefix(mailer.sent[0], "admin@example.com|New contact from Maria Silva") {
		t.Fatalf("primeiro envio errado: %q", mailer.sent[0])
	}
	if !strings.HasPrefix(mailer.sent[1], "maria@example.com|Thank you for contacting us") {
		t.Fatalf("segundo envio errado: %q", mailer.sent[1])
	}
}

func TestSubmitValidaCampos(t *testing.T) {
	mailer := &stubMailer{}
	svc := NewService(mailer, "admin@example.com")

	msg := Message{FullName: "M", Email: "not-an-email", Message: "oi"}
	err := svc.Submit(context.Background(), msg)
	if err == nil {
		t.Fatal("esperava erro de validação")
	}
	for _, want := range []string{
		"Full name must be at least 2 characters",
		"Invalid email address",
		"Message must be at least 5 characters",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("mensagem %q não contém %q", err.Error(), want)
		}
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("envio ocorreu com payload inválido: %d", len(mailer.sent))
	}
}

func TestSubmitFalhaNoAdminPropaga(t *testing.T) {
	mailer := &stubMailer{failFor: "admin@example.com"}
	svc := NewService(mailer, "admin@example.com")

	if err := svc.Submit(context.Background(), validMessage()); err == nil {
		t.Fatal("falha no aviso ao admin deveria propagar")
	}
}

func TestSubmitFalhaNaConfirmacaoNaoPropaga(t *testing.T) {
	mailer := &stubMailer{failFor: "maria@example.com"}
	svc := NewService(mailer, "admin@example.com")

	if err := svc.Submit(context.Background(), validMessage()); err != nil {
		t.Fatalf("confirmação é melhor esforço, erro: %v", err)
	}
}
