package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/repository/postgres"
	"go-talent-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPool connects to the database named by TEST_DATABASE_URL. The
// suite is skipped when the variable is unset so the unit tests stay
// runnable without infrastructure.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := database.NewPostgresConnection(dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

// seedProfile inserts a profile and registers its removal, skills
// included, at the end of the test.
func seedProfile(t *testing.T, pool *pgxpool.Pool, repo domain.ProfileRepository, firstName, lastName, bio, role string) *domain.Profile {
	t.Helper()
	profile := &domain.Profile{
		ID:        uuid.NewString(),
		UserID:    uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     fmt.Sprintf("%s@integration.test", uuid.NewString()),
		Bio:       bio,
		Role:      role,
	}
	require.NoError(t, repo.Create(context.Background(), profile))
	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM skills WHERE profile_id = $1`, profile.ID)
		pool.Exec(context.Background(), `DELETE FROM profiles WHERE id = $1`, profile.ID)
	})
	return profile
}

func resultIDs(results []domain.ProfileDetails) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestProfileSearchPredicates(t *testing.T) {
	pool := testPool(t)
	repo := postgres.NewProfileRepository(pool)
	ctx := context.Background()

	student := seedProfile(t, pool, repo, "Marie", "dupont", "Étudiante en informatique", domain.RoleUser)
	other := seedProfile(t, pool, repo, "Jean", "Martin", "Motivé à 100% sur chaque projet", domain.RoleUser)
	admin := seedProfile(t, pool, repo, "Dupont", "Admin", "", domain.RoleAdmin)

	t.Run("Should match the term regardless of case", func(t *testing.T) {
		results, err := repo.Search(ctx, "DUPONT", nil)
		require.NoError(t, err)
		assert.Contains(t, resultIDs(results), student.ID)
	})

	t.Run("Should treat percent and underscore as literal characters", func(t *testing.T) {
		results, err := repo.Search(ctx, "100%", nil)
		require.NoError(t, err)
		ids := resultIDs(results)
		assert.Contains(t, ids, other.ID)
		assert.NotContains(t, ids, student.ID)

		// a bare wildcard must not match everything
		results, err = repo.Search(ctx, "%", nil)
		require.NoError(t, err)
		assert.NotContains(t, resultIDs(results), student.ID)
	})

	t.Run("Should never return admin profiles", func(t *testing.T) {
		results, err := repo.Search(ctx, "Dupont", nil)
		require.NoError(t, err)
		assert.NotContains(t, resultIDs(results), admin.ID)
	})

	t.Run("Should apply the verified filter", func(t *testing.T) {
		verified := true
		results, err := repo.Search(ctx, "dupont", &verified)
		require.NoError(t, err)
		assert.NotContains(t, resultIDs(results), student.ID)

		verified = false
		results, err = repo.Search(ctx, "dupont", &verified)
		require.NoError(t, err)
		assert.Contains(t, resultIDs(results), student.ID)
	})
}

func TestSkillListAllExcludesAdmins(t *testing.T) {
	pool := testPool(t)
	profileRepo := postgres.NewProfileRepository(pool)
	skillRepo := postgres.NewSkillRepository(pool)
	ctx := context.Background()

	student := seedProfile(t, pool, profileRepo, "Lina", "Durand", "", domain.RoleUser)
	admin := seedProfile(t, pool, profileRepo, "Paul", "Moreau", "", domain.RoleAdmin)

	require.NoError(t, skillRepo.Create(ctx, &domain.Skill{
		ProfileID: student.ID, Name: "Go", Category: domain.CategoryTechnique, Level: domain.LevelAvance,
	}))
	require.NoError(t, skillRepo.Create(ctx, &domain.Skill{
		ProfileID: admin.ID, Name: "Go", Category: domain.CategoryTechnique, Level: domain.LevelExpert,
	}))

	skills, err := skillRepo.ListAll(ctx)
	require.NoError(t, err)
	for _, s := range skills {
		assert.NotEqual(t, admin.ID, s.ProfileID, "admin skill leaked into the talent map input")
	}
}
