package domain

import (
	"context"
	"time"
)

// LanguageLevels is the CEFR-like scale the profile form offers. The
// system stores but does not order these values.
var LanguageLevels = []string{"A1", "A2", "B1", "B2", "C1", "C2", "natif"}

type Language struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	Name      string    `json:"name" validate:"required,max=50"`
	Level     string    `json:"level" validate:"required,oneof=A1 A2 B1 B2 C1 C2 natif"`
	CreatedAt time.Time `json:"created_at"`
}

type LanguageInput struct {
	Name  string `json:"name" binding:"required,max=50"`
	Level string `json:"level" binding:"required,oneof=A1 A2 B1 B2 C1 C2 natif"`
}

type LanguageRepository interface {
	ListByProfile(ctx context.Context, profileID string) ([]Language, error)
	Create(ctx context.Context, language *Language) error
	Delete(ctx context.Context, id, profileID string) error
	DistinctNames(ctx context.Context) ([]string, error)
}
