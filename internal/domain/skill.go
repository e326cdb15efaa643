package domain

import (
	"context"
	"time"
)

// Skill categories and levels are stored as the raw French labels the
// frontend displays; they are closed sets, validated on write.
const (
	CategoryTechnique    = "technique"
	CategoryLinguistique = "linguistique"
	CategoryProjet       = "projet"
	CategoryPassion      = "passion"
	CategoryAutre        = "autre"
)

const (
	LevelDebutant      = "débutant"
	LevelIntermediaire = "intermédiaire"
	LevelAvance        = "avancé"
	LevelExpert        = "expert"
)

var SkillCategories = []string{
	CategoryTechnique, CategoryLinguistique, CategoryProjet, CategoryPassion, CategoryAutre,
}

var SkillLevels = []string{
	LevelDebutant, LevelIntermediaire, LevelAvance, LevelExpert,
}

type Skill struct {
	ID          string    `json:"id"`
	ProfileID   string    `json:"profile_id"`
	Name        string    `json:"name" validate:"required,max=100"`
	Category    string    `json:"category" validate:"required,oneof=technique linguistique projet passion autre"`
	Level       string    `json:"level" validate:"required,oneof=débutant intermédiaire avancé expert"`
	Description string    `json:"description,omitempty" validate:"max=500"`
	CreatedAt   time.Time `json:"created_at"`
}

type SkillInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Category    string `json:"category" binding:"required,oneof=technique linguistique projet passion autre"`
	Level       string `json:"level" binding:"required,oneof=débutant intermédiaire avancé expert"`
	Description string `json:"description" binding:"max=500"`
}

type SkillRepository interface {
	ListByProfile(ctx context.Context, profileID string) ([]Skill, error)
	Create(ctx context.Context, skill *Skill) error
	// Delete removes the skill only when it belongs to profileID.
	Delete(ctx context.Context, id, profileID string) error
	UpdateLevel(ctx context.Context, id, level string) error

	// ListAll returns every skill row owned by a user-role profile,
	// the input of the talent map aggregation.
	ListAll(ctx context.Context) ([]Skill, error)
	DistinctNames(ctx context.Context) ([]string, error)
}
