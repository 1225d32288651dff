package portfolio

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/urbanbyte/portfolio-api/internal/apierror"
	"github.com/urbanbyte/portfolio-api/internal/db"
)

const skillColumns = `id, title, description, created_at, updated_at`

func scanSkill(row pgx.Row) (Skill, error) {
	var s Skill
	err := row.Scan(&s.ID, &s.Title, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// SkillPatch carrega campos de criação/atualização de skill.
type SkillPatch struct {
	Title        *string
	Description  *string
	Technologies *[]uuid.UUID
}

func (r *Repository) CreateSkill(ctx context.Context, patch SkillPatch) (Skill, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var created Skill
	err := db.WithTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		s, err := scanSkill(tx.QueryRow(ctx, `
			INSERT INTO skills (title, description)
			VALUES ($1, $2)
			RETURNING `+skillColumns,
			patch.Title, patch.Description))
		if err != nil {
			return err
		}

		if patch.Technologies != nil {
			if err := replaceSkillTechnologies(ctx, tx, s.ID, *patch.Technologies); err != nil {
				return err
			}
		}

		created = s
		return nil
	})
	if err != nil {
		return Skill{}, err
	}

	return r.populateSkill(ctx, created)
}

func (r *Repository) UpdateSkill(ctx context.Context, id uuid.UUID, patch SkillPatch) (Skill, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var updated Skill
	err := db.WithTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		s, err := scanSkill(tx.QueryRow(ctx, `
			UPDATE skills SET
				title       = COALESCE($2, title),
				description = COALESCE($3, description),
				updated_at  = now()
			WHERE id = $1
			RETURNING `+skillColumns,
			id, patch.Title, patch.Description))
		if err != nil {
			return notFoundOr(err)
		}

		if patch.Technologies != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM skill_technologies WHERE skill_id = $1`, id); err != nil {
				return err
			}
			if err := replaceSkillTechnologies(ctx, tx, id, *patch.Technologies); err != nil {
				return err
			}
		}

		updated = s
		return nil
	})
	if err != nil {
		return Skill{}, err
	}

	return r.populateSkill(ctx, updated)
}

func (r *Repository) DeleteSkill(ctx context.Context, id uuid.UUID) (Skill, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	s, err := scanSkill(r.db.QueryRow(ctx, `
		DELETE FROM skills WHERE id = $1 RETURNING `+skillColumns, id))
	if err != nil {
		return Skill{}, notFoundOr(err)
	}
	return s, nil
}

func (r *Repository) GetSkill(ctx context.Context, id uuid.UUID) (Skill, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	s, err := scanSkill(r.db.QueryRow(ctx, `
		SELECT `+skillColumns+` FROM skills WHERE id = $1`, id))
	if err != nil {
		return Skill{}, notFoundOr(err)
	}
	return r.populateSkill(ctx, s)
}

func (r *Repository) ListSkills(ctx context.Context) ([]Skill, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT `+skillColumns+` FROM skills ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range skills {
		populated, err := r.populateSkill(ctx, skills[i])
		if err != nil {
			return nil, err
		}
		skills[i] = populated
	}
	return skills, nil
}

func replaceSkillTechnologies(ctx context.Context, tx pgx.Tx, skillID uuid.UUID, refs []uuid.UUID) error {
	if len(refs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO skill_technologies (skill_id, technology_id)
		SELECT $1, ref FROM unnest($2::uuid[]) AS ref`,
		skillID, refs)
	return apierror.MarkTechnologyRef(err)
}

func (r *Repository) populateSkill(ctx context.Context, s Skill) (Skill, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+prefixColumns("t", technologyColumns)+`
		FROM skill_technologies st
		JOIN technologies t ON t.id = st.technology_id
		WHERE st.skill_id = $1
		ORDER BY t.name`, s.ID)
	if err != nil {
		return Skill{}, err
	}
	defer rows.Close()

	s.Technologies = []Technology{}
	for rows.Next() {
		t, err := scanTechnology(rows)
		if err != nil {
			return Skill{}, err
		}
		s.Technologies = append(s.Technologies, t)
	}
	return s, rows.Err()
}
