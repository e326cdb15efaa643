package domain

import "context"

// VerificationUsecase groups the admin-only operations. Every method
// performs the admin capability check once at its entry; handlers and
// repositories do not re-derive the role.
type VerificationUsecase interface {
	// ToggleVerification flips the profile's verified flag. Flipping to
	// true stamps verified_by with the acting admin and verified_at
	// with now; flipping to false clears both. The three fields always
	// change together.
	ToggleVerification(ctx context.Context, profileID string) (*Profile, error)

	// ListProfiles filters by "all", "verified" or "unverified".
	ListProfiles(ctx context.Context, filter string) ([]Profile, error)
	GetStudent(ctx context.Context, profileID string) (*ProfileDetails, error)
	UpdateSkillLevel(ctx context.Context, skillID, level string) error
}
