package portfolio

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const certificateColumns = `id, title, issuer, category, type, priority, issued_date, valid_until, credential_id, logo, description, skills, status, created_at, updated_at`

func scanCertificate(row pgx.Row) (Certificate, error) {
	var c Certificate
	err := row.Scan(&c.ID, &c.Title, &c.Issuer, &c.Category, &c.Type, &c.Priority,
		&c.IssuedDate, &c.ValidUntil, &c.CredentialID, &c.Logo, &c.Description,
		&c.Skills, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// CertificatePatch carrega campos de criação/atualização de certificado.
type CertificatePatch struct {
	Title        *string
	Issuer       *string
	Category     *string
	Type         *string
	Priority     *Priority
	IssuedDate   *time.Time
	ValidUntil   *time.Time
	CredentialID *string
	Description  *string
	Skills       *[]string
	Status       *string
}

func (r *Repository) CreateCertificate(ctx context.Context, patch CertificatePatch, logoURL string) (Certificate, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	skills := []string{}
	if patch.Skills != nil {
		skills = *patch.Skills
	}

	c, err := scanCertificate(r.db.QueryRow(ctx, `
		INSERT INTO certificates (title, issuer, category, type, priority, issued_date, valid_until, credential_id, logo, description, skills, status)
		VALUES ($1, $2, $3, COALESCE($4, 'certificate'), $5, $6, $7, $8, $9, $10, $11, COALESCE($12, 'active'))
		RETURNING `+certificateColumns,
		patch.Title, patch.Issuer, patch.Category, patch.Type, patch.Priority,
		patch.IssuedDate, patch.ValidUntil, patch.CredentialID, nullable(logoURL),
		patch.Description, skills, patch.Status))
	if err != nil {
		return Certificate{}, err
	}
	return c, nil
}

func (r *Repository) UpdateCertificate(ctx context.Context, id uuid.UUID, patch CertificatePatch, logoURL string) (Certificate, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	c, err := scanCertificate(r.db.QueryRow(ctx, `
		UPDATE certificates SET
			title         = COALESCE($2, title),
			issuer        = COALESCE($3, issuer),
			category      = COALESCE($4, category),
			type          = COALESCE($5, type),
			priority      = COALESCE($6, priority),
			issued_date   = COALESCE($7, issued_date),
			valid_until   = COALESCE($8, valid_until),
			credential_id = COALESCE($9, credential_id),
			logo          = COALESCE($10, logo),
			description   = COALESCE($11, description),
			skills        = COALESCE($12, skills),
			status        = COALESCE($13, status),
			updated_at    = now()
		WHERE id = $1
		RETURNING `+certificateColumns,
		id, patch.Title, patch.Issuer, patch.Category, patch.Type, patch.Priority,
		patch.IssuedDate, patch.ValidUntil, patch.CredentialID, nullable(logoURL),
		patch.Description, patch.Skills, patch.Status))
	if err != nil {
		return Certificate{}, notFoundOr(err)
	}
	return c, nil
}

// DeleteCertificate devolve o registro removido, incluindo a URL do logo
// para a remoção best-effort do blob.
func (r *Repository) DeleteCertificate(ctx context.Context, id uuid.UUID) (Certificate, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	c, err := scanCertificate(r.db.QueryRow(ctx, `
		DELETE FROM certificates WHERE id = $1 RETURNING `+certificateColumns, id))
	if err != nil {
		return Certificate{}, notFoundOr(err)
	}
	return c, nil
}

func (r *Repository) GetCertificate(ctx context.Context, id uuid.UUID) (Certificate, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	c, err := scanCertificate(r.db.QueryRow(ctx, `
		SELECT `+certificateColumns+` FROM certificates WHERE id = $1`, id))
	if err != nil {
		return Certificate{}, notFoundOr(err)
	}
	return c, nil
}

func (r *Repository) ListCertificates(ctx context.Context) ([]Certificate, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT `+certificateColumns+` FROM certificates ORDER BY priority DESC, issued_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Certificate
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
