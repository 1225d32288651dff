package portfolio

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/urbanbyte/portfolio-api/internal/apierror"
	"github.com/urbanbyte/portfolio-api/internal/db"
)

const projectColumns = `id, title, description, status, role, livelink, githublink, thumbnail, created_at, updated_at`

func scanProject(row pgx.Row) (Project, error) {
	var p Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Status, &p.Role, &p.Livelink,
		&p.Githublink, &p.Thumbnail, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// ProjectPatch carrega campos de criação/atualização de projeto.
// As referências de tecnologia trafegam como strings cruas: ids malformados
// são rejeitados pelo próprio banco no cast ::uuid e classificados depois.
type ProjectPatch struct {
	Title        *string
	Description  *string
	Status       *string
	Role         *string
	Livelink     *string
	Githublink   *string
	Technologies *[]string
}

func (r *Repository) CreateProject(ctx context.Context, patch ProjectPatch, thumbnailURL string) (Project, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var created Project
	err := db.WithTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		p, err := scanProject(tx.QueryRow(ctx, `
			INSERT INTO projects (title, description, status, role, livelink, githublink, thumbnail)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+projectColumns,
			patch.Title, patch.Description, patch.Status, patch.Role,
			patch.Livelink, patch.Githublink, nullable(thumbnailURL)))
		if err != nil {
			return err
		}

		if patch.Technologies != nil {
			if err := replaceProjectTechnologies(ctx, tx, p.ID, *patch.Technologies); err != nil {
				return err
			}
		}

		created = p
		return nil
	})
	if err != nil {
		return Project{}, err
	}

	return r.populateProject(ctx, created)
}

func (r *Repository) UpdateProject(ctx context.Context, id uuid.UUID, patch ProjectPatch, thumbnailURL string) (Project, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var updated Project
	err := db.WithTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		p, err := scanProject(tx.QueryRow(ctx, `
			UPDATE projects SET
				title       = COALESCE($2, title),
				description = COALESCE($3, description),
				status      = COALESCE($4, status),
				role        = COALESCE($5, role),
				livelink    = COALESCE($6, livelink),
				githublink  = COALESCE($7, githublink),
				thumbnail   = COALESCE($8, thumbnail),
				updated_at  = now()
			WHERE id = $1
			RETURNING `+projectColumns,
			id, patch.Title, patch.Description, patch.Status, patch.Role,
			patch.Livelink, patch.Githublink, nullable(thumbnailURL)))
		if err != nil {
			return notFoundOr(err)
		}

		if patch.Technologies != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM project_technologies WHERE project_id = $1`, id); err != nil {
				return err
			}
			if err := replaceProjectTechnologies(ctx, tx, id, *patch.Technologies); err != nil {
				return err
			}
		}

		updated = p
		return nil
	})
	if err != nil {
		return Project{}, err
	}

	return r.populateProject(ctx, updated)
}

// DeleteProject remove o projeto e devolve o registro removido, incluindo a
// URL do thumbnail para remoção posterior do blob.
func (r *Repository) DeleteProject(ctx context.Context, id uuid.UUID) (Project, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	p, err := scanProject(r.db.QueryRow(ctx, `
		DELETE FROM projects WHERE id = $1 RETURNING `+projectColumns, id))
	if err != nil {
		return Project{}, notFoundOr(err)
	}
	return p, nil
}

func (r *Repository) GetProject(ctx context.Context, id uuid.UUID) (Project, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	p, err := scanProject(r.db.QueryRow(ctx, `
		SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		return Project{}, notFoundOr(err)
	}
	return r.populateProject(ctx, p)
}

func (r *Repository) ListProjects(ctx context.Context) ([]Project, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range projects {
		populated, err := r.populateProject(ctx, projects[i])
		if err != nil {
			return nil, err
		}
		projects[i] = populated
	}
	return projects, nil
}

func replaceProjectTechnologies(ctx context.Context, tx pgx.Tx, projectID uuid.UUID, refs []string) error {
	if len(refs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO project_technologies (project_id, technology_id)
		SELECT $1, ref::uuid FROM unnest($2::text[]) AS ref`,
		projectID, refs)
	return apierror.MarkTechnologyRef(err)
}

func (r *Repository) populateProject(ctx context.Context, p Project) (Project, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+prefixColumns("t", technologyColumns)+`
		FROM project_technologies pt
		JOIN technologies t ON t.id = pt.technology_id
		WHERE pt.project_id = $1
		ORDER BY t.name`, p.ID)
	if err != nil {
		return Project{}, err
	}
	defer rows.Close()

	p.Technologies = []Technology{}
	for rows.Next() {
		t, err := scanTechnology(rows)
		if err != nil {
			return Project{}, err
		}
		p.Technologies = append(p.Technologies, t)
	}
	return p, rows.Err()
}
