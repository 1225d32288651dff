package portfolio

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const technologyColumns = `id, name, logo, level, experience, category, created_at, updated_at`

func scanTechnology(row pgx.Row) (Technology, error) {
	var t Technology
	err := row.Scan(&t.ID, &t.Name, &t.Logo, &t.Level, &t.Experience, &t.Category, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *Repository) CreateTechnology(ctx context.Context, in TechnologyPatch) (Technology, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		INSERT INTO technologies (name, logo, level, experience, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+technologyColumns,
		in.Name, in.Logo, in.Level, in.Experience, in.Category)

	return scanTechnology(row)
}

// FindTechnologyByName devolve nil quando não existe tecnologia com o nome.
func (r *Repository) FindTechnologyByName(ctx context.Context, name string) (*Technology, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	t, err := scanTechnology(r.db.QueryRow(ctx, `
		SELECT `+technologyColumns+` FROM technologies WHERE name = $1`, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *Repository) GetTechnology(ctx context.Context, id uuid.UUID) (Technology, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	t, err := scanTechnology(r.db.QueryRow(ctx, `
		SELECT `+technologyColumns+` FROM technologies WHERE id = $1`, id))
	if err != nil {
		return Technology{}, notFoundOr(err)
	}
	return t, nil
}

func (r *Repository) ListTechnologies(ctx context.Context) ([]Technology, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT `+technologyColumns+` FROM technologies ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Technology
	for rows.Next() {
		t, err := scanTechnology(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// TechnologyPatch carrega campos de criação/atualização; ponteiros nil em
// update significam "não alterar".
type TechnologyPatch struct {
	Name       *string
	Logo       *string
	Level      *string
	Experience *string
	Category   *string
}

func (r *Repository) UpdateTechnology(ctx context.Context, id uuid.UUID, patch TechnologyPatch) (Technology, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	t, err := scanTechnology(r.db.QueryRow(ctx, `
		UPDATE technologies SET
			name       = COALESCE($2, name),
			logo       = COALESCE($3, logo),
			level      = COALESCE($4, level),
			experience = COALESCE($5, experience),
			category   = COALESCE($6, category),
			updated_at = now()
		WHERE id = $1
		RETURNING `+technologyColumns,
		id, patch.Name, patch.Logo, patch.Level, patch.Experience, patch.Category))
	if err != nil {
		return Technology{}, notFoundOr(err)
	}
	return t, nil
}

func (r *Repository) DeleteTechnology(ctx context.Context, id uuid.UUID) (Technology, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	t, err := scanTechnology(r.db.QueryRow(ctx, `
		DELETE FROM technologies WHERE id = $1 RETURNING `+technologyColumns, id))
	if err != nil {
		return Technology{}, notFoundOr(err)
	}
	return t, nil
}
