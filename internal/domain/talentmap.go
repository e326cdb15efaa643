package domain

import "context"

// SkillCount is one entry of the per-skill-name summary. Category is
// the category of one representative row sharing the name, first seen
// wins; best-effort labeling only.
type SkillCount struct {
	Name     string `json:"name"`
	Count    int    `json:"value"`
	Category string `json:"category"`
}

// LabelCount is one entry of the per-category or per-level summary.
// Label is capitalized for display; counting is done on the raw value.
type LabelCount struct {
	Label string `json:"name"`
	Count int    `json:"value"`
}

// TalentMapSnapshot holds the three frequency summaries the talent map
// renders, each sorted descending by count.
type TalentMapSnapshot struct {
	TopSkills  []SkillCount `json:"top_skills"`
	ByCategory []LabelCount `json:"by_category"`
	ByLevel    []LabelCount `json:"by_level"`
}

type TalentMapUsecase interface {
	Snapshot(ctx context.Context) (*TalentMapSnapshot, error)
}
