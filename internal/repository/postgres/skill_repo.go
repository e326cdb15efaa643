package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-talent-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepository struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) ListByProfile(ctx context.Context, profileID string) ([]domain.Skill, error) {
	query := `
		SELECT id, profile_id, name, category, level, COALESCE(description, ''), created_at
		FROM skills WHERE profile_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.Name, &s.Category, &s.Level, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepository) Create(ctx context.Context, skill *domain.Skill) error {
	query := `
		INSERT INTO skills (profile_id, name, category, level, description)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		skill.ProfileID, skill.Name, skill.Category, skill.Level, skill.Description,
	).Scan(&skill.ID, &skill.CreatedAt)
}

func (r *skillRepository) Delete(ctx context.Context, id, profileID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("skill not found")
	}
	return nil
}

func (r *skillRepository) UpdateLevel(ctx context.Context, id, level string) error {
	tag, err := r.db.Exec(ctx, `UPDATE skills SET level = $1 WHERE id = $2`, level, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("skill not found")
	}
	return nil
}

// ListAll feeds the talent map; admin-owned rows are excluded so the
// aggregation only ever sees student skills.
func (r *skillRepository) ListAll(ctx context.Context) ([]domain.Skill, error) {
	query := `
		SELECT s.id, s.profile_id, s.name, s.category, s.level, COALESCE(s.description, ''), s.created_at
		FROM skills s
		JOIN profiles p ON p.id = s.profile_id
		WHERE p.role = 'user'
		ORDER BY s.created_at`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.Name, &s.Category, &s.Level, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepository) DistinctNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT name FROM skills ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skill names: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
