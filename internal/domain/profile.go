package domain

import (
	"context"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Profile struct {
	ID         string     `json:"id"` // Supabase UUID
	UserID     string     `json:"user_id"`
	FirstName  string     `json:"first_name" validate:"required,min=2,max=50"`
	LastName   string     `json:"last_name" validate:"required,min=2,max=50"`
	Email      string     `json:"email" validate:"required,email"`
	Bio        string     `json:"bio" validate:"max=500"`
	AvatarURL  *string    `json:"avatar_url,omitempty"`
	Role       string     `json:"role"`
	Verified   bool       `json:"verified"`
	VerifiedBy *string    `json:"verified_by,omitempty"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ProfileDetails is a profile with its owned collections attached,
// the unit the search page and the admin detail page work with.
type ProfileDetails struct {
	Profile
	Skills    []Skill    `json:"skills"`
	Languages []Language `json:"languages"`
	Projects  []Project  `json:"projects"`
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
	UpdateAvatarURL(ctx context.Context, profileID string, avatarURL *string) error

	// Search returns user-role profiles with collections attached. The
	// text term and verified predicate are evaluated server-side.
	Search(ctx context.Context, term string, verified *bool) ([]ProfileDetails, error)

	// ListForAdmin returns user-role profiles without collections,
	// optionally narrowed to verified or unverified ones.
	ListForAdmin(ctx context.Context, verified *bool) ([]Profile, error)
	GetDetails(ctx context.Context, profileID string) (*ProfileDetails, error)

	// SetVerification updates verified, verified_by and verified_at in
	// a single statement. verifiedBy and verifiedAt must be nil when
	// verified is false and non-nil when it is true.
	SetVerification(ctx context.Context, profileID string, verified bool, verifiedBy *string, verifiedAt *time.Time) error
}

type ProfileUsecase interface {
	Me(ctx context.Context) (*ProfileDetails, error)
	UpdateMe(ctx context.Context, input UpdateProfileInput) (*Profile, error)
	EnsureProfile(ctx context.Context, profile *Profile) error
	// GetByUserID resolves the profile of a Supabase auth user; the
	// auth middleware uses it to attach identity and role.
	GetByUserID(ctx context.Context, userID string) (*Profile, error)

	AddSkill(ctx context.Context, input SkillInput) (*Skill, error)
	RemoveSkill(ctx context.Context, skillID string) error
	AddLanguage(ctx context.Context, input LanguageInput) (*Language, error)
	RemoveLanguage(ctx context.Context, languageID string) error
	AddProject(ctx context.Context, input ProjectInput) (*Project, error)
	RemoveProject(ctx context.Context, projectID string) error

	UpdateAvatar(ctx context.Context, filename string, data []byte) (string, error)
	RemoveAvatar(ctx context.Context) error
}

type UpdateProfileInput struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Bio       string `json:"bio"`
}
