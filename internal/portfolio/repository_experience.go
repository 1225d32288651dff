package portfolio

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const experienceColumns = `id, company, company_logo, position, location, date_from, date_to, achievements, created_at, updated_at`

func scanExperience(row pgx.Row) (Experience, error) {
	var e Experience
	err := row.Scan(&e.ID, &e.Company, &e.CompanyLogo, &e.Position, &e.Location,
		&e.From, &e.To, &e.Achievements, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// ExperiencePatch carrega campos de criação/atualização de experiência.
type ExperiencePatch struct {
	Company      *string
	Position     *string
	Location     *string
	From         *time.Time
	To           *time.Time
	Achievements *[]string
}

func (r *Repository) CreateExperience(ctx context.Context, patch ExperiencePatch, logoURL string) (Experience, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	achievements := []string{}
	if patch.Achievements != nil {
		achievements = *patch.Achievements
	}

	e, err := scanExperience(r.db.QueryRow(ctx, `
		INSERT INTO experiences (company, company_logo, position, location, date_from, date_to, achievements)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+experienceColumns,
		patch.Company, nullable(logoURL), patch.Position, patch.Location,
		patch.From, patch.To, achievements))
	if err != nil {
		return Experience{}, err
	}
	return e, nil
}

func (r *Repository) UpdateExperience(ctx context.Context, id uuid.UUID, patch ExperiencePatch, logoURL string) (Experience, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	e, err := scanExperience(r.db.QueryRow(ctx, `
		UPDATE experiences SET
			company      = COALESCE($2, company),
			company_logo = COALESCE($3, company_logo),
			position     = COALESCE($4, position),
			location     = COALESCE($5, location),
			date_from    = COALESCE($6, date_from),
			date_to      = COALESCE($7, date_to),
			achievements = COALESCE($8, achievements),
			updated_at   = now()
		WHERE id = $1
		RETURNING `+experienceColumns,
		id, patch.Company, nullable(logoURL), patch.Position, patch.Location,
		patch.From, patch.To, patch.Achievements))
	if err != nil {
		return Experience{}, notFoundOr(err)
	}
	return e, nil
}

// DeleteExperience devolve o registro removido, incluindo a URL do logo
// para a remoção best-effort do blob.
func (r *Repository) DeleteExperience(ctx context.Context, id uuid.UUID) (Experience, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	e, err := scanExperience(r.db.QueryRow(ctx, `
		DELETE FROM experiences WHERE id = $1 RETURNING `+experienceColumns, id))
	if err != nil {
		return Experience{}, notFoundOr(err)
	}
	return e, nil
}

func (r *Repository) GetExperience(ctx context.Context, id uuid.UUID) (Experience, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	e, err := scanExperience(r.db.QueryRow(ctx, `
		SELECT `+experienceColumns+` FROM experiences WHERE id = $1`, id))
	if err != nil {
		return Experience{}, notFoundOr(err)
	}
	return e, nil
}

func (r *Repository) ListExperiences(ctx context.Context) ([]Experience, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT `+experienceColumns+` FROM experiences ORDER BY date_from DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
