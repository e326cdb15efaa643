package usecase

import (
	"context"
	"slices"
	"time"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
)

type verificationUsecase struct {
	profileRepo domain.ProfileRepository
	skillRepo   domain.SkillRepository
}

func NewVerificationUsecase(profileRepo domain.ProfileRepository, skillRepo domain.SkillRepository) domain.VerificationUsecase {
	return &verificationUsecase{
		profileRepo: profileRepo,
		skillRepo:   skillRepo,
	}
}

// requireAdmin is the single capability check for every admin
// operation; nothing downstream re-derives the role.
func requireAdmin(ctx context.Context) (string, error) {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role != domain.RoleAdmin {
		return "", apperror.Forbidden("Only admins can perform this action")
	}
	adminProfileID, ok := ctx.Value(domain.KeyProfileID).(string)
	if !ok || adminProfileID == "" {
		return "", apperror.Unauthorized("User not authenticated")
	}
	return adminProfileID, nil
}

// ToggleVerification flips the badge. The flag and its two audit
// stamps are written by one repository call so they never diverge:
// granting sets verified_by and verified_at, revoking clears both.
func (u *verificationUsecase) ToggleVerification(ctx context.Context, profileID string) (*domain.Profile, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}

	newVerified := !profile.Verified
	var verifiedBy *string
	var verifiedAt *time.Time
	if newVerified {
		now := time.Now()
		verifiedBy = &adminID
		verifiedAt = &now
	}

	if err := u.profileRepo.SetVerification(ctx, profileID, newVerified, verifiedBy, verifiedAt); err != nil {
		return nil, err
	}

	profile.Verified = newVerified
	profile.VerifiedBy = verifiedBy
	profile.VerifiedAt = verifiedAt
	return profile, nil
}

func (u *verificationUsecase) ListProfiles(ctx context.Context, filter string) ([]domain.Profile, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	var verified *bool
	switch filter {
	case "verified":
		v := true
		verified = &v
	case "unverified":
		v := false
		verified = &v
	case "", "all":
		// no constraint
	default:
		return nil, apperror.BadRequest("Filter must be all, verified or unverified")
	}

	return u.profileRepo.ListForAdmin(ctx, verified)
}

func (u *verificationUsecase) GetStudent(ctx context.Context, profileID string) (*domain.ProfileDetails, error) {
	if _, err := requireAdmin(ctx); err != nil {
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

func (u *verificationUsecase) UpdateSkillLevel(ctx context.Context, skillID, level string) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	if !slices.Contains(domain.SkillLevels, level) {
		return apperror.BadRequest("Invalid skill level")
	}
	return u.skillRepo.UpdateLevel(ctx, skillID, level)
}
