package contact

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"
)

// Mailer envia e-mails de contato. A implementação SMTP é usada em
// produção; testes injetam um stub.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// DiscardMailer descarta mensagens; usado quando o SMTP não está
// configurado (ambiente de desenvolvimento).
type DiscardMailer struct{}

func (DiscardMailer) Send(ctx context.Context, to, subject, body string) error {
	log.Warn().Str("to", to).Str("subject", subject).Msg("contact: SMTP não configurado, mensagem descartada")
	return nil
}

// SMTPMailer entrega via SMTP autenticado (PLAIN).
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(body)

	addr := m.Host + ":" + m.Port
	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	if err := smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
