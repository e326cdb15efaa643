package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) UpdateAvatarURL(ctx context.Context, profileID string, avatarURL *string) error {
	return m.Called(ctx, profileID, avatarURL).Error(0)
}

func (m *MockProfileRepo) Search(ctx context.Context, term string, verified *bool) ([]domain.ProfileDetails, error) {
	args := m.Called(ctx, term, verified)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfileDetails), args.Error(1)
}

func (m *MockProfileRepo) ListForAdmin(ctx context.Context, verified *bool) ([]domain.Profile, error) {
	args := m.Called(ctx, verified)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) GetDetails(ctx context.Context, profileID string) (*domain.ProfileDetails, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileDetails), args.Error(1)
}

func (m *MockProfileRepo) SetVerification(ctx context.Context, profileID string, verified bool, verifiedBy *string, verifiedAt *time.Time) error {
	return m.Called(ctx, profileID, verified, verifiedBy, verifiedAt).Error(0)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) ListByProfile(ctx context.Context, profileID string) ([]domain.Skill, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *MockSkillRepo) Delete(ctx context.Context, id, profileID string) error {
	return m.Called(ctx, id, profileID).Error(0)
}

func (m *MockSkillRepo) UpdateLevel(ctx context.Context, id, level string) error {
	return m.Called(ctx, id, level).Error(0)
}

func (m *MockSkillRepo) ListAll(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) DistinctNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockLanguageRepo struct {
	mock.Mock
}

func (m *MockLanguageRepo) ListByProfile(ctx context.Context, profileID string) ([]domain.Language, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Language), args.Error(1)
}

func (m *MockLanguageRepo) Create(ctx context.Context, language *domain.Language) error {
	return m.Called(ctx, language).Error(0)
}

func (m *MockLanguageRepo) Delete(ctx context.Context, id, profileID string) error {
	return m.Called(ctx, id, profileID).Error(0)
}

func (m *MockLanguageRepo) DistinctNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) ListByProfile(ctx context.Context, profileID string) ([]domain.Project, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id, profileID string) error {
	return m.Called(ctx, id, profileID).Error(0)
}

type MockCollabRepo struct {
	mock.Mock
}

func (m *MockCollabRepo) Create(ctx context.Context, request *domain.CollaborationRequest) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockCollabRepo) GetByID(ctx context.Context, id string) (*domain.CollaborationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollaborationRequest), args.Error(1)
}

func (m *MockCollabRepo) ListSent(ctx context.Context, fromProfileID string) ([]domain.CollaborationRequest, error) {
	args := m.Called(ctx, fromProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CollaborationRequest), args.Error(1)
}

func (m *MockCollabRepo) ListReceivedPending(ctx context.Context, toProfileID string) ([]domain.ReceivedRequest, error) {
	args := m.Called(ctx, toProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReceivedRequest), args.Error(1)
}

func (m *MockCollabRepo) UpdateStatus(ctx context.Context, id, toProfileID, status string) (int64, error) {
	args := m.Called(ctx, id, toProfileID, status)
	return args.Get(0).(int64), args.Error(1)
}

func authedCtx(profileID string) context.Context {
	return context.WithValue(context.Background(), domain.KeyProfileID, profileID)
}

func adminCtx(profileID string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyProfileID, profileID)
	return context.WithValue(ctx, domain.KeyUserRole, domain.RoleAdmin)
}

func studentWith(id string, skills []domain.Skill, languages []domain.Language) domain.ProfileDetails {
	return domain.ProfileDetails{
		Profile:   domain.Profile{ID: id, Role: domain.RoleUser},
		Skills:    skills,
		Languages: languages,
	}
}

func TestDirectorySearch(t *testing.T) {
	alice := studentWith("alice",
		[]domain.Skill{{Name: "Go", Category: domain.CategoryTechnique, Level: domain.LevelAvance}},
		[]domain.Language{{Name: "Anglais", Level: "B2"}})
	bob := studentWith("bob",
		[]domain.Skill{{Name: "Photographie", Category: domain.CategoryPassion, Level: domain.LevelIntermediaire}},
		[]domain.Language{{Name: "Espagnol", Level: "C1"}})
	chloe := studentWith("chloe",
		[]domain.Skill{
			{Name: "Go", Category: domain.CategoryTechnique, Level: domain.LevelDebutant},
			{Name: "Théâtre", Category: domain.CategoryPassion, Level: domain.LevelExpert},
		},
		[]domain.Language{{Name: "Anglais", Level: "C2"}, {Name: "Allemand", Level: "A2"}})

	newUC := func(results []domain.ProfileDetails, err error) domain.DirectoryUsecase {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("Search", mock.Anything, mock.Anything, mock.Anything).Return(results, err)
		return usecase.NewDirectoryUsecase(profileRepo, new(MockSkillRepo), new(MockLanguageRepo))
	}
	all := []domain.ProfileDetails{alice, bob, chloe}

	t.Run("Should return everything when no filters are set", func(t *testing.T) {
		uc := newUC(all, nil)
		results, err := uc.Search(context.Background(), domain.DirectoryQuery{})
		assert.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("Should OR values within the skills filter", func(t *testing.T) {
		uc := newUC(all, nil)
		results, err := uc.Search(context.Background(), domain.DirectoryQuery{
			Filters: domain.DirectoryFilters{Skills: []string{"Go", "Photographie"}},
		})
		assert.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("Should AND across filter kinds", func(t *testing.T) {
		uc := newUC(all, nil)
		results, err := uc.Search(context.Background(), domain.DirectoryQuery{
			Filters: domain.DirectoryFilters{
				Skills:    []string{"Go"},
				Languages: []string{"Allemand"},
			},
		})
		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, "chloe", results[0].ID)
	})

	t.Run("Should match categories against any skill of the profile", func(t *testing.T) {
		uc := newUC(all, nil)
		results, err := uc.Search(context.Background(), domain.DirectoryQuery{
			Filters: domain.DirectoryFilters{Categories: []string{domain.CategoryPassion}},
		})
		assert.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("Should exclude profiles missing a required filter", func(t *testing.T) {
		uc := newUC(all, nil)
		results, err := uc.Search(context.Background(), domain.DirectoryQuery{
			Filters: domain.DirectoryFilters{Skills: []string{"Rust"}},
		})
		assert.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("Should return no partial results on fetch error", func(t *testing.T) {
		uc := newUC(nil, errors.New("db down"))
		results, err := uc.Search(context.Background(), domain.DirectoryQuery{Term: "go"})
		assert.Error(t, err)
		assert.Nil(t, results)
	})

	t.Run("Should hand the term and verified flag to the store untouched", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("Search", mock.Anything, "dupont", mock.MatchedBy(func(v *bool) bool {
			return v != nil && *v
		})).Return(all, nil)
		uc := usecase.NewDirectoryUsecase(profileRepo, new(MockSkillRepo), new(MockLanguageRepo))

		verified := true
		_, err := uc.Search(context.Background(), domain.DirectoryQuery{
			Term:    "dupont",
			Filters: domain.DirectoryFilters{Verified: &verified},
		})
		assert.NoError(t, err)
		profileRepo.AssertExpectations(t)
	})
}

func TestFilterOptions(t *testing.T) {
	skillRepo := new(MockSkillRepo)
	languageRepo := new(MockLanguageRepo)
	skillRepo.On("DistinctNames", mock.Anything).Return([]string{"Go", "Photographie"}, nil)
	languageRepo.On("DistinctNames", mock.Anything).Return([]string{"Anglais", "Espagnol"}, nil)

	uc := usecase.NewDirectoryUsecase(new(MockProfileRepo), skillRepo, languageRepo)
	options, err := uc.Options(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Go", "Photographie"}, options.Skills)
	assert.Equal(t, []string{"Anglais", "Espagnol"}, options.Languages)
}

func TestTalentMapSnapshot(t *testing.T) {
	t.Run("Should count per name, category and level in one pass", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		skillRepo.On("ListAll", mock.Anything).Return([]domain.Skill{
			{Name: "Go", Category: domain.CategoryTechnique, Level: domain.LevelAvance},
			{Name: "Go", Category: domain.CategoryTechnique, Level: domain.LevelDebutant},
			{Name: "Théâtre", Category: domain.CategoryPassion, Level: domain.LevelExpert},
		}, nil)

		uc := usecase.NewTalentMapUsecase(skillRepo)
		snapshot, err := uc.Snapshot(context.Background())
		assert.NoError(t, err)

		assert.Len(t, snapshot.TopSkills, 2)
		assert.Equal(t, "Go", snapshot.TopSkills[0].Name)
		assert.Equal(t, 2, snapshot.TopSkills[0].Count)
		assert.Equal(t, domain.CategoryTechnique, snapshot.TopSkills[0].Category)

		total := 0
		for _, c := range snapshot.ByCategory {
			total += c.Count
		}
		assert.Equal(t, 3, total, "category counts must cover every row")

		assert.Equal(t, "Technique", snapshot.ByCategory[0].Label, "labels are capitalized for display")
	})

	t.Run("Should cap the skill summary at twenty entries", func(t *testing.T) {
		var rows []domain.Skill
		for i := 0; i < 25; i++ {
			name := fmt.Sprintf("Skill%02d", i)
			for j := 0; j <= i; j++ {
				rows = append(rows, domain.Skill{Name: name, Category: domain.CategoryAutre, Level: domain.LevelDebutant})
			}
		}
		skillRepo := new(MockSkillRepo)
		skillRepo.On("ListAll", mock.Anything).Return(rows, nil)

		uc := usecase.NewTalentMapUsecase(skillRepo)
		snapshot, err := uc.Snapshot(context.Background())
		assert.NoError(t, err)
		assert.Len(t, snapshot.TopSkills, 20)
		assert.Equal(t, "Skill24", snapshot.TopSkills[0].Name)
		assert.Equal(t, 25, snapshot.TopSkills[0].Count)
	})

	t.Run("Should return nothing on fetch error", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		skillRepo.On("ListAll", mock.Anything).Return(nil, errors.New("db down"))

		uc := usecase.NewTalentMapUsecase(skillRepo)
		snapshot, err := uc.Snapshot(context.Background())
		assert.Error(t, err)
		assert.Nil(t, snapshot)
	})
}

func TestCollaborationSend(t *testing.T) {
	t.Run("Should reject a request to yourself", func(t *testing.T) {
		uc := usecase.NewCollaborationUsecase(new(MockCollabRepo), new(MockProfileRepo))
		_, err := uc.Send(authedCtx("p1"), "p1", "hello")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "yourself")
	})

	t.Run("Should reject an empty message", func(t *testing.T) {
		uc := usecase.NewCollaborationUsecase(new(MockCollabRepo), new(MockProfileRepo))
		_, err := uc.Send(authedCtx("p1"), "p2", "   ")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Message is required")
	})

	t.Run("Should reject an unknown recipient", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

		uc := usecase.NewCollaborationUsecase(new(MockCollabRepo), profileRepo)
		_, err := uc.Send(authedCtx("p1"), "ghost", "hello")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("Should reject an admin recipient", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByID", mock.Anything, "adm").Return(&domain.Profile{ID: "adm", Role: domain.RoleAdmin}, nil)

		uc := usecase.NewCollaborationUsecase(new(MockCollabRepo), profileRepo)
		_, err := uc.Send(authedCtx("p1"), "adm", "hello")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("Should create a pending request", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByID", mock.Anything, "p2").Return(&domain.Profile{ID: "p2", Role: domain.RoleUser}, nil)
		collabRepo := new(MockCollabRepo)
		collabRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.CollaborationRequest) bool {
			return r.FromProfileID == "p1" && r.ToProfileID == "p2"
		})).Return(nil)

		uc := usecase.NewCollaborationUsecase(collabRepo, profileRepo)
		request, err := uc.Send(authedCtx("p1"), "p2", "Partant pour un projet?")
		assert.NoError(t, err)
		assert.Equal(t, "p1", request.FromProfileID)
		collabRepo.AssertExpectations(t)
	})

	t.Run("Should fail safely when not authenticated", func(t *testing.T) {
		uc := usecase.NewCollaborationUsecase(new(MockCollabRepo), new(MockProfileRepo))
		_, err := uc.Send(context.Background(), "p2", "hello")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})
}

func TestCollaborationRespond(t *testing.T) {
	t.Run("Should accept a pending request addressed to the caller", func(t *testing.T) {
		collabRepo := new(MockCollabRepo)
		collabRepo.On("UpdateStatus", mock.Anything, "r1", "p2", domain.CollaborationAccepted).Return(int64(1), nil)

		uc := usecase.NewCollaborationUsecase(collabRepo, new(MockProfileRepo))
		err := uc.Respond(authedCtx("p2"), "r1", domain.CollaborationAccepted)
		assert.NoError(t, err)
	})

	t.Run("Should reject a status outside accepted/rejected", func(t *testing.T) {
		uc := usecase.NewCollaborationUsecase(new(MockCollabRepo), new(MockProfileRepo))
		err := uc.Respond(authedCtx("p2"), "r1", "maybe")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "accepted or rejected")
	})

	t.Run("Should forbid anyone but the recipient", func(t *testing.T) {
		collabRepo := new(MockCollabRepo)
		collabRepo.On("UpdateStatus", mock.Anything, "r1", "intruder", domain.CollaborationRejected).Return(int64(0), nil)
		collabRepo.On("GetByID", mock.Anything, "r1").Return(&domain.CollaborationRequest{
			ID: "r1", ToProfileID: "p2", Status: domain.CollaborationPending,
		}, nil)

		uc := usecase.NewCollaborationUsecase(collabRepo, new(MockProfileRepo))
		err := uc.Respond(authedCtx("intruder"), "r1", domain.CollaborationRejected)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only the recipient")
	})

	t.Run("Should conflict on an already answered request", func(t *testing.T) {
		collabRepo := new(MockCollabRepo)
		collabRepo.On("UpdateStatus", mock.Anything, "r1", "p2", domain.CollaborationRejected).Return(int64(0), nil)
		collabRepo.On("GetByID", mock.Anything, "r1").Return(&domain.CollaborationRequest{
			ID: "r1", ToProfileID: "p2", Status: domain.CollaborationAccepted,
		}, nil)

		uc := usecase.NewCollaborationUsecase(collabRepo, new(MockProfileRepo))
		err := uc.Respond(authedCtx("p2"), "r1", domain.CollaborationRejected)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already been answered")
	})

	t.Run("Should report a missing request", func(t *testing.T) {
		collabRepo := new(MockCollabRepo)
		collabRepo.On("UpdateStatus", mock.Anything, "ghost", "p2", domain.CollaborationAccepted).Return(int64(0), nil)
		collabRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

		uc := usecase.NewCollaborationUsecase(collabRepo, new(MockProfileRepo))
		err := uc.Respond(authedCtx("p2"), "ghost", domain.CollaborationAccepted)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestVerificationToggle(t *testing.T) {
	t.Run("Should forbid non-admins", func(t *testing.T) {
		uc := usecase.NewVerificationUsecase(new(MockProfileRepo), new(MockSkillRepo))
		_, err := uc.ToggleVerification(authedCtx("p1"), "p2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only admins")
	})

	t.Run("Should stamp verifier and time when granting", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByID", mock.Anything, "p2").Return(&domain.Profile{ID: "p2", Verified: false}, nil)
		profileRepo.On("SetVerification", mock.Anything, "p2", true,
			mock.MatchedBy(func(by *string) bool { return by != nil && *by == "adm" }),
			mock.MatchedBy(func(at *time.Time) bool { return at != nil }),
		).Return(nil)

		uc := usecase.NewVerificationUsecase(profileRepo, new(MockSkillRepo))
		profile, err := uc.ToggleVerification(adminCtx("adm"), "p2")
		assert.NoError(t, err)
		assert.True(t, profile.Verified)
		assert.NotNil(t, profile.VerifiedBy)
		assert.NotNil(t, profile.VerifiedAt)
		profileRepo.AssertExpectations(t)
	})

	t.Run("Should clear both stamps when revoking", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		by := "adm"
		at := time.Now()
		profileRepo.On("GetByID", mock.Anything, "p2").Return(&domain.Profile{
			ID: "p2", Verified: true, VerifiedBy: &by, VerifiedAt: &at,
		}, nil)
		profileRepo.On("SetVerification", mock.Anything, "p2", false, (*string)(nil), (*time.Time)(nil)).Return(nil)

		uc := usecase.NewVerificationUsecase(profileRepo, new(MockSkillRepo))
		profile, err := uc.ToggleVerification(adminCtx("adm"), "p2")
		assert.NoError(t, err)
		assert.False(t, profile.Verified)
		assert.Nil(t, profile.VerifiedBy)
		assert.Nil(t, profile.VerifiedAt)
		profileRepo.AssertExpectations(t)
	})

	t.Run("Should report a missing profile", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

		uc := usecase.NewVerificationUsecase(profileRepo, new(MockSkillRepo))
		_, err := uc.ToggleVerification(adminCtx("adm"), "ghost")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestVerificationListing(t *testing.T) {
	t.Run("Should map the filter to a verified constraint", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("ListForAdmin", mock.Anything,
			mock.MatchedBy(func(v *bool) bool { return v != nil && !*v }),
		).Return([]domain.Profile{}, nil)

		uc := usecase.NewVerificationUsecase(profileRepo, new(MockSkillRepo))
		_, err := uc.ListProfiles(adminCtx("adm"), "unverified")
		assert.NoError(t, err)
		profileRepo.AssertExpectations(t)
	})

	t.Run("Should reject an unknown filter", func(t *testing.T) {
		uc := usecase.NewVerificationUsecase(new(MockProfileRepo), new(MockSkillRepo))
		_, err := uc.ListProfiles(adminCtx("adm"), "pending")
		assert.Error(t, err)
	})
}

func TestVerificationSkillLevel(t *testing.T) {
	t.Run("Should reject a level outside the closed set", func(t *testing.T) {
		uc := usecase.NewVerificationUsecase(new(MockProfileRepo), new(MockSkillRepo))
		err := uc.UpdateSkillLevel(adminCtx("adm"), "s1", "guru")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid skill level")
	})

	t.Run("Should update a valid level", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		skillRepo.On("UpdateLevel", mock.Anything, "s1", domain.LevelExpert).Return(nil)

		uc := usecase.NewVerificationUsecase(new(MockProfileRepo), skillRepo)
		err := uc.UpdateSkillLevel(adminCtx("adm"), "s1", domain.LevelExpert)
		assert.NoError(t, err)
		skillRepo.AssertExpectations(t)
	})
}

func TestProfileUpdateValidation(t *testing.T) {
	validate := validator.New()

	t.Run("Should reject a one-character first name", func(t *testing.T) {
		uc := usecase.NewProfileUsecase(new(MockProfileRepo), new(MockSkillRepo), new(MockLanguageRepo), new(MockProjectRepo), nil, validate)
		_, err := uc.UpdateMe(authedCtx("p1"), domain.UpdateProfileInput{FirstName: "A", LastName: "Martin"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "between 2 and 50")
	})

	t.Run("Should reject a skill with an unknown level", func(t *testing.T) {
		uc := usecase.NewProfileUsecase(new(MockProfileRepo), new(MockSkillRepo), new(MockLanguageRepo), new(MockProjectRepo), nil, validate)
		_, err := uc.AddSkill(authedCtx("p1"), domain.SkillInput{
			Name: "Go", Category: domain.CategoryTechnique, Level: "guru",
		})
		assert.Error(t, err)
	})

	t.Run("Should reject a project with an invalid URL", func(t *testing.T) {
		uc := usecase.NewProfileUsecase(new(MockProfileRepo), new(MockSkillRepo), new(MockLanguageRepo), new(MockProjectRepo), nil, validate)
		_, err := uc.AddProject(authedCtx("p1"), domain.ProjectInput{
			Title: "Site perso", Description: "Mon portfolio", URL: "not a url",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "valid URL")
	})

	t.Run("Should trim whitespace and keep the profile otherwise intact", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByID", mock.Anything, "p1").Return(&domain.Profile{ID: "p1", Email: "a@b.fr"}, nil)
		profileRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
			return p.FirstName == "Alice" && p.Email == "a@b.fr"
		})).Return(nil)

		uc := usecase.NewProfileUsecase(profileRepo, new(MockSkillRepo), new(MockLanguageRepo), new(MockProjectRepo), nil, validate)
		profile, err := uc.UpdateMe(authedCtx("p1"), domain.UpdateProfileInput{FirstName: "  Alice ", LastName: "Martin"})
		assert.NoError(t, err)
		assert.Equal(t, "Alice", profile.FirstName)
	})
}

func TestEnsureProfile(t *testing.T) {
	t.Run("Should be a no-op when the profile already exists", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByUserID", mock.Anything, "u1").Return(&domain.Profile{ID: "p1", UserID: "u1"}, nil)

		uc := usecase.NewProfileUsecase(profileRepo, new(MockSkillRepo), new(MockLanguageRepo), new(MockProjectRepo), nil, validator.New())
		err := uc.EnsureProfile(context.Background(), &domain.Profile{UserID: "u1"})
		assert.NoError(t, err)
		profileRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should create with defaults on first sync", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByUserID", mock.Anything, "u1").Return(nil, nil)
		profileRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
			return p.ID != "" && p.Role == domain.RoleUser
		})).Return(nil)

		uc := usecase.NewProfileUsecase(profileRepo, new(MockSkillRepo), new(MockLanguageRepo), new(MockProjectRepo), nil, validator.New())
		err := uc.EnsureProfile(context.Background(), &domain.Profile{UserID: "u1"})
		assert.NoError(t, err)
		profileRepo.AssertExpectations(t)
	})
}

func TestSplitTechnologies(t *testing.T) {
	assert.Nil(t, usecase.SplitTechnologies(""))
	assert.Nil(t, usecase.SplitTechnologies(" , ,"))
	assert.Equal(t, []string{"Go", "React"}, usecase.SplitTechnologies(" Go , React "))
}
