package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/logger"
	"go-talent-backend/pkg/storage"
	"go-talent-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	avatarMaxDimension = 512
	avatarJPEGQuality  = 80
)

type profileUsecase struct {
	profileRepo  domain.ProfileRepository
	skillRepo    domain.SkillRepository
	languageRepo domain.LanguageRepository
	projectRepo  domain.ProjectRepository
	avatars      storage.ObjectStore
	validate     *validator.Validate
}

func NewProfileUsecase(
	profileRepo domain.ProfileRepository,
	skillRepo domain.SkillRepository,
	languageRepo domain.LanguageRepository,
	projectRepo domain.ProjectRepository,
	avatars storage.ObjectStore,
	validate *validator.Validate,
) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo:  profileRepo,
		skillRepo:    skillRepo,
		languageRepo: languageRepo,
		projectRepo:  projectRepo,
		avatars:      avatars,
		validate:     validate,
	}
}

func (u *profileUsecase) Me(ctx context.Context) (*domain.ProfileDetails, error) {
	profileID, err := currentProfileID(ctx)
	if err != nil {
		return nil, err
	}
	details, err := u.profileRepo.GetDetails(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return details, nil
}

func (u *profileUsecase) UpdateMe(ctx context.Context, input domain.UpdateProfileInput) (*domain.Profile, error) {
	profileID, err := currentProfileID(ctx)
	if err != nil {
		return nil, err
	}

	if !validation.ValidateName(input.FirstName) {
		return nil, apperror.BadRequest("First name must be between 2 and 50 characters")
	}
	if !validation.ValidateName(input.LastName) {
		return nil, apperror.BadRequest("Last name must be between 2 and 50 characters")
	}
	if len(input.Bio) > 500 {
		return nil, apperror.BadRequest("Bio must be at most 500 characters")
	}

	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}

	profile.FirstName = strings.TrimSpace(input.FirstName)
	profile.LastName = strings.TrimSpace(input.LastName)
	profile.Bio = input.Bio

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// EnsureProfile creates the profile row after a Supabase signup; it is
// a no-op when the row already exists (idempotent sync).
func (u *profileUsecase) EnsureProfile(ctx context.Context, profile *domain.Profile) error {
	existing, err := u.profileRepo.GetByUserID(ctx, profile.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if profile.Role == "" {
		profile.Role = domain.RoleUser
	}
	return u.profileRepo.Create(ctx, profile)
}

func (u *profileUsecase) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	return u.profileRepo.GetByUserID(ctx, userID)
}

func (u *profileUsecase) AddSkill(ctx context.Context, input domain.SkillInput) (*domain.Skill, error) {
	profileID, err := currentProfileID(ctx)
	if err != nil {
		return nil, err
	}

	skill := &domain.Skill{
		ProfileID:   profileID,
		Name:        strings.TrimSpace(input.Name),
		Category:    input.Category,
		Level:       input.Level,
		Description: input.Description,
	}
	if err := u.validate.Struct(skill); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	if err := u.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *profileUsecase) RemoveSkill(ctx context.Context, skillID string) error {
	profileID, err := currentProfileID(ctx)
	if err != nil {
		return err
	}
	return u.skillRepo.Delete(ctx, skillID, profileID)
}

func (u *profileUsecase) AddLanguage(ctx context.Context, input domain.LanguageInput) (*domain.Language, error) {
	profileID, err := currentProfileID(ctx)
	if err != nil {
		return nil, err
	}

	language := &domain.Language{
		ProfileID: profileID,
		Name:      strings.TrimSpace(input.Name),
		Level:     input.Level,
	}
	if err := u.validate.Struct(language); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	if err := u.languageRepo.Create(ctx, language); err != nil {
		return nil, err
	}
	return language, nil
}

func (u *profileUsecase) RemoveLanguage(ctx context.Context, languageID string) error {
	profileID, err := currentProfileID(ctx)
	if err != nil {
		return err
	}
	return u.languageRepo.Delete(ctx, languageID, profileID)
}

func (u *profileUsecase) AddProject(ctx context.Context, input domain.ProjectInput) (*domain.Project, error) {
	profileID, err := currentProfileID(ctx)
	if err != nil {
		return nil, err
	}

	if !validation.ValidateURL(input.URL) {
		return nil, apperror.BadRequest("Project URL is not a valid URL")
	}
	if !validation.ValidateURL(input.GithubURL) {
		return nil, apperror.BadRequest("GitHub URL is not a valid URL")
	}

	project := &domain.Project{
		ProfileID:    profileID,
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Technologies: SplitTechnologies(input.Technologies),
	}
	if input.URL != "" {
		project.URL = &input.URL
	}
	if input.GithubURL != "" {
		project.GithubURL = &input.GithubURL
	}
	if err := u.validate.Struct(project); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	if err := u.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// SplitTechnologies turns the comma-separated form value into tags,
// trimming whitespace and discarding blanks.
func SplitTechnologies(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

func (u *profileUsecase) RemoveProject(ctx context.Context, projectID string) error {
	profileID, err := currentProfileID(ctx)
	if err != nil {
		return err
	}
	return u.projectRepo.Delete(ctx, projectID, profileID)
}

// UpdateAvatar validates, normalizes and stores the image, then points
// the profile at the new public URL. The previous object is deleted
// best-effort; a failed cleanup never fails the upload.
func (u *profileUsecase) UpdateAvatar(ctx context.Context, filename string, data []byte) (string, error) {
	profileID, err := currentProfileID(ctx)
	if err != nil {
		return "", err
	}

	if _, err := storage.ValidateAvatar(data); err != nil {
		return "", apperror.BadRequest(err.Error())
	}
	normalized, err := storage.NormalizeAvatar(data, avatarMaxDimension, avatarJPEGQuality)
	if err != nil {
		return "", apperror.BadRequest("Image could not be processed")
	}

	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", apperror.NotFound("Profile not found")
	}

	key := fmt.Sprintf("%s/%s.jpg", profileID, uuid.NewString())
	publicURL, err := u.avatars.Upload(ctx, key, "image/jpeg", normalized)
	if err != nil {
		return "", err
	}

	if err := u.profileRepo.UpdateAvatarURL(ctx, profileID, &publicURL); err != nil {
		return "", err
	}

	if profile.AvatarURL != nil && *profile.AvatarURL != "" {
		if oldKey := u.avatars.KeyFromURL(*profile.AvatarURL); oldKey != "" {
			if err := u.avatars.Delete(ctx, oldKey); err != nil {
				logger.Log.Warn("Could not delete old avatar", "key", oldKey, "error", err)
			}
		}
	}

	return publicURL, nil
}

func (u *profileUsecase) RemoveAvatar(ctx context.Context) error {
	profileID, err := currentProfileID(ctx)
	if err != nil {
		return err
	}

	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return err
	}
	if profile == nil {
		return apperror.NotFound("Profile not found")
	}
	if profile.AvatarURL == nil || *profile.AvatarURL == "" {
		return nil
	}

	if err := u.profileRepo.UpdateAvatarURL(ctx, profileID, nil); err != nil {
		return err
	}
	if key := u.avatars.KeyFromURL(*profile.AvatarURL); key != "" {
		if err := u.avatars.Delete(ctx, key); err != nil {
			logger.Log.Warn("Could not delete avatar object", "key", key, "error", err)
		}
	}
	return nil
}
