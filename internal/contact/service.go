package contact

import (
	"context"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/urbanbyte/portfolio-api/internal/apierror"
)

// Message é o payload do formulário público de contato.
type Message struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

// Service valida a mensagem e dispara os dois e-mails: aviso para o
// administrador e confirmação para o remetente.
type Service struct {
	mailer     Mailer
	adminEmail string
}

func NewService(mailer Mailer, adminEmail string) *Service {
	return &Service{mailer: mailer, adminEmail: adminEmail}
}

func (m Message) validate() error {
	var problems []string
	if len(strings.TrimSpace(m.FullName)) < 2 {
		problems = append(problems, "Full name must be at least 2 characters")
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		problems = append(problems, "Invalid email address")
	}
	if len(strings.TrimSpace(m.Message)) < 5 {
		problems = append(problems, "Message must be at least 5 characters")
	}
	if len(problems) > 0 {
		return apierror.New(strings.Join(problems, ", "), http.StatusBadRequest)
	}
	return nil
}

func (s *Service) Submit(ctx context.Context, msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}

	adminSubject := fmt.Sprintf("New contact from %s", msg.FullName)
	adminBody := fmt.Sprintf("You have received a new message from %s <%s>:\n\n%s", msg.FullName, msg.Email, msg.Message)
	if err := s.mailer.Send(ctx, s.adminEmail, adminSubject, adminBody); err != nil {
		return fmt.Errorf("contact: notify admin: %w", err)
	}

	userBody := fmt.Sprintf("Hi %s,\n\nThank you for reaching out. We received your message and will get back to you soon.\n\nBest regards,\nTeam", msg.FullName)
	if err := s.mailer.Send(ctx, msg.Email, "Thank you for contacting us", userBody); err != nil {
		// O admin já foi avisado; a confirmação é melhor esforço.
		log.Warn().Err(err).Str("to", msg.Email).Msg("contact: falha ao enviar confirmação")
	}
	return nil
}
