package domain

import (
	"context"
	"time"
)

type Project struct {
	ID           string    `json:"id"`
	ProfileID    string    `json:"profile_id"`
	Title        string    `json:"title" validate:"required,max=200"`
	Description  string    `json:"description" validate:"required,max=1000"`
	Technologies []string  `json:"technologies,omitempty"`
	URL          *string   `json:"url,omitempty"`
	GithubURL    *string   `json:"github_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProjectInput carries the raw form values. Technologies arrive as one
// comma-separated string and are split by the usecase.
type ProjectInput struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description" binding:"required,max=1000"`
	Technologies string `json:"technologies"`
	URL          string `json:"url"`
	GithubURL    string `json:"github_url"`
}

type ProjectRepository interface {
	ListByProfile(ctx context.Context, profileID string) ([]Project, error)
	Create(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id, profileID string) error
}
