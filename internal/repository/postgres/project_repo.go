package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-talent-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type projectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) ListByProfile(ctx context.Context, profileID string) ([]domain.Project, error) {
	query := `
		SELECT id, profile_id, title, description, technologies, url, github_url, created_at
		FROM projects WHERE profile_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		var techs []string
		if err := rows.Scan(&p.ID, &p.ProfileID, &p.Title, &p.Description, pq.Array(&techs), &p.URL, &p.GithubURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Technologies = techs
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	// technologies is NULL (not an empty array) when the form left it blank
	var techs interface{}
	if len(project.Technologies) > 0 {
		techs = pq.Array(project.Technologies)
	}

	query := `
		INSERT INTO projects (profile_id, title, description, technologies, url, github_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		project.ProfileID, project.Title, project.Description, techs, project.URL, project.GithubURL,
	).Scan(&project.ID, &project.CreatedAt)
}

func (r *projectRepository) Delete(ctx context.Context, id, profileID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("project not found")
	}
	return nil
}
