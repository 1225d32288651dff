package portfolio

import (
	"time"

	"github.com/google/uuid"
)

// Technology é uma tecnologia referenciada por projetos e skills.
// O logo aqui é uma URL simples informada pelo cliente, sem upload.
type Technology struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Logo       *string   `json:"logo,omitempty"`
	Level      string    `json:"level"`
	Experience *string   `json:"experience,omitempty"`
	Category   string    `json:"category"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Project é um projeto do portfólio; thumbnail é a URL durável do anexo.
type Project struct {
	ID           uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	Description  *string      `json:"description,omitempty"`
	Status       string       `json:"status"`
	Role         *string      `json:"role,omitempty"`
	Livelink     *string      `json:"livelink,omitempty"`
	Githublink   *string      `json:"githublink,omitempty"`
	Thumbnail    *string      `json:"thumbnail,omitempty"`
	Technologies []Technology `json:"technologies"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

type Skill struct {
	ID           uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	Description  *string      `json:"description,omitempty"`
	Technologies []Technology `json:"technologies"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

type Experience struct {
	ID           uuid.UUID  `json:"id"`
	Company      string     `json:"company"`
	CompanyLogo  *string    `json:"companyLogo,omitempty"`
	Position     string     `json:"position"`
	Location     *string    `json:"location,omitempty"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Achievements []string   `json:"achievements"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type Certificate struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Issuer       string     `json:"issuer"`
	Category     string     `json:"category"`
	Type         string     `json:"type"`
	Priority     Priority   `json:"priority"`
	IssuedDate   time.Time  `json:"issuedDate"`
	ValidUntil   *time.Time `json:"validUntil,omitempty"`
	CredentialID *string    `json:"credentialId,omitempty"`
	Logo         *string    `json:"logo,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Skills       []string   `json:"skills"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Categorias aceitas para certificados.
var certificateCategories = map[string]struct{}{
	"COMPETITION": {},
	"ACADEMIC":    {},
	"RECOGNITION": {},
}

func validCertificateCategory(category string) bool {
	_, ok := certificateCategories[category]
	return ok
}
