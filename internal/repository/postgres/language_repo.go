package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-talent-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type languageRepository struct {
	db *pgxpool.Pool
}

func NewLanguageRepository(db *pgxpool.Pool) domain.LanguageRepository {
	return &languageRepository{db: db}
}

func (r *languageRepository) ListByProfile(ctx context.Context, profileID string) ([]domain.Language, error) {
	query := `SELECT id, profile_id, name, level, created_at FROM languages WHERE profile_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch languages: %w", err)
	}
	defer rows.Close()

	languages := []domain.Language{}
	for rows.Next() {
		var l domain.Language
		if err := rows.Scan(&l.ID, &l.ProfileID, &l.Name, &l.Level, &l.CreatedAt); err != nil {
			return nil, err
		}
		languages = append(languages, l)
	}
	return languages, rows.Err()
}

func (r *languageRepository) Create(ctx context.Context, language *domain.Language) error {
	query := `
		INSERT INTO languages (profile_id, name, level)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	return r.db.QueryRow(ctx, query, language.ProfileID, language.Name, language.Level).
		Scan(&language.ID, &language.CreatedAt)
}

func (r *languageRepository) Delete(ctx context.Context, id, profileID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM languages WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("language not found")
	}
	return nil
}

func (r *languageRepository) DistinctNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT name FROM languages ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch language names: %w", err)
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
