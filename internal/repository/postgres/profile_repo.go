package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-talent-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `id, user_id, first_name, last_name, email, COALESCE(bio, ''), avatar_url,
	role, verified, verified_by, verified_at, created_at, updated_at`

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Email, &p.Bio, &p.AvatarURL,
		&p.Role, &p.Verified, &p.VerifiedBy, &p.VerifiedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return scanProfile(r.db.QueryRow(ctx, query, id))
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	return scanProfile(r.db.QueryRow(ctx, query, userID))
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, first_name, last_name, email, bio, role, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false, NOW(), NOW())`
	_, err := r.db.Exec(ctx, query,
		profile.ID, profile.UserID, profile.FirstName, profile.LastName,
		profile.Email, profile.Bio, profile.Role,
	)
	return err
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `UPDATE profiles SET first_name=$1, last_name=$2, bio=$3, updated_at=NOW() WHERE id=$4`
	_, err := r.db.Exec(ctx, query, profile.FirstName, profile.LastName, profile.Bio, profile.ID)
	return err
}

func (r *profileRepository) UpdateAvatarURL(ctx context.Context, profileID string, avatarURL *string) error {
	query := `UPDATE profiles SET avatar_url=$1, updated_at=NOW() WHERE id=$2`
	_, err := r.db.Exec(ctx, query, avatarURL, profileID)
	return err
}

var likeReplacer = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes the LIKE wildcards so a search term always
// matches literally.
func escapeLike(term string) string {
	return likeReplacer.Replace(term)
}

// Search pushes the text term and verified predicate to the database;
// the structured skill/language/category filters are applied in memory
// by the directory usecase afterwards. Only user-role profiles are
// visible here.
func (r *profileRepository) Search(ctx context.Context, term string, verified *bool) ([]domain.ProfileDetails, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE role = 'user'`
	args := []interface{}{}

	if term != "" {
		args = append(args, "%"+escapeLike(term)+"%")
		n := len(args)
		query += fmt.Sprintf(` AND (first_name ILIKE $%d OR last_name ILIKE $%d OR bio ILIKE $%d)`, n, n, n)
	}
	if verified != nil {
		args = append(args, *verified)
		query += fmt.Sprintf(` AND verified = $%d`, len(args))
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}
	defer rows.Close()

	var results []domain.ProfileDetails
	var ids []string
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, domain.ProfileDetails{
			Profile:   *p,
			Skills:    []domain.Skill{},
			Languages: []domain.Language{},
			Projects:  []domain.Project{},
		})
		ids = append(ids, p.ID)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	if len(results) == 0 {
		return []domain.ProfileDetails{}, nil
	}

	if err := r.attachCollections(ctx, results, ids); err != nil {
		return nil, err
	}
	return results, nil
}

// attachCollections loads skills, languages and projects for a batch
// of profiles in three queries instead of 3xN.
func (r *profileRepository) attachCollections(ctx context.Context, profiles []domain.ProfileDetails, ids []string) error {
	index := make(map[string]*domain.ProfileDetails, len(profiles))
	for i := range profiles {
		index[profiles[i].ID] = &profiles[i]
	}

	skillRows, err := r.db.Query(ctx, `
		SELECT id, profile_id, name, category, level, COALESCE(description, ''), created_at
		FROM skills WHERE profile_id = ANY($1) ORDER BY created_at`, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch skills: %w", err)
	}
	defer skillRows.Close()
	for skillRows.Next() {
		var s domain.Skill
		if err := skillRows.Scan(&s.ID, &s.ProfileID, &s.Name, &s.Category, &s.Level, &s.Description, &s.CreatedAt); err != nil {
			return err
		}
		if p, ok := index[s.ProfileID]; ok {
			p.Skills = append(p.Skills, s)
		}
	}
	if skillRows.Err() != nil {
		return skillRows.Err()
	}

	langRows, err := r.db.Query(ctx, `
		SELECT id, profile_id, name, level, created_at
		FROM languages WHERE profile_id = ANY($1) ORDER BY created_at`, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch languages: %w", err)
	}
	defer langRows.Close()
	for langRows.Next() {
		var l domain.Language
		if err := langRows.Scan(&l.ID, &l.ProfileID, &l.Name, &l.Level, &l.CreatedAt); err != nil {
			return err
		}
		if p, ok := index[l.ProfileID]; ok {
			p.Languages = append(p.Languages, l)
		}
	}
	if langRows.Err() != nil {
		return langRows.Err()
	}

	projRows, err := r.db.Query(ctx, `
		SELECT id, profile_id, title, description, technologies, url, github_url, created_at
		FROM projects WHERE profile_id = ANY($1) ORDER BY created_at`, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch projects: %w", err)
	}
	defer projRows.Close()
	for projRows.Next() {
		var pr domain.Project
		var techs []string
		if err := projRows.Scan(&pr.ID, &pr.ProfileID, &pr.Title, &pr.Description, pq.Array(&techs), &pr.URL, &pr.GithubURL, &pr.CreatedAt); err != nil {
			return err
		}
		pr.Technologies = techs
		if p, ok := index[pr.ProfileID]; ok {
			p.Projects = append(p.Projects, pr)
		}
	}
	return projRows.Err()
}

func (r *profileRepository) ListForAdmin(ctx context.Context, verified *bool) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE role = 'user'`
	args := []interface{}{}
	if verified != nil {
		args = append(args, *verified)
		query += fmt.Sprintf(` AND verified = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := []domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

func (r *profileRepository) GetDetails(ctx context.Context, profileID string) (*domain.ProfileDetails, error) {
	profile, err := r.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	details := []domain.ProfileDetails{{
		Profile:   *profile,
		Skills:    []domain.Skill{},
		Languages: []domain.Language{},
		Projects:  []domain.Project{},
	}}
	if err := r.attachCollections(ctx, details, []string{profile.ID}); err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (r *profileRepository) SetVerification(ctx context.Context, profileID string, verified bool, verifiedBy *string, verifiedAt *time.Time) error {
	// One statement so the badge and its audit stamps never diverge
	query := `UPDATE profiles SET verified=$1, verified_by=$2, verified_at=$3, updated_at=NOW() WHERE id=$4`
	tag, err := r.db.Exec(ctx, query, verified, verifiedBy, verifiedAt, profileID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("profile not found")
	}
	return nil
}
