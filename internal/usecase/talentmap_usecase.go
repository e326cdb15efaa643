package usecase

import (
	"context"
	"sort"
	"unicode"
	"unicode/utf8"

	"go-talent-backend/internal/domain"
)

// topSkillLimit caps the per-skill-name summary for display.
const topSkillLimit = 20

type talentMapUsecase struct {
	skillRepo domain.SkillRepository
}

func NewTalentMapUsecase(skillRepo domain.SkillRepository) domain.TalentMapUsecase {
	return &talentMapUsecase{skillRepo: skillRepo}
}

// Snapshot builds the three frequency summaries in one pass over the
// skill rows. On fetch failure nothing is returned; callers keep their
// last-known-good view rather than rendering partial counts.
func (u *talentMapUsecase) Snapshot(ctx context.Context) (*domain.TalentMapSnapshot, error) {
	skills, err := u.skillRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return buildSnapshot(skills), nil
}

func buildSnapshot(skills []domain.Skill) *domain.TalentMapSnapshot {
	skillCounts := map[string]int{}
	categoryCounts := map[string]int{}
	levelCounts := map[string]int{}
	// representative category per skill name, first occurrence wins;
	// best-effort labeling when the same name spans categories
	representative := map[string]string{}

	for _, s := range skills {
		if _, seen := representative[s.Name]; !seen {
			representative[s.Name] = s.Category
		}
		skillCounts[s.Name]++
		categoryCounts[s.Category]++
		levelCounts[s.Level]++
	}

	topSkills := make([]domain.SkillCount, 0, len(skillCounts))
	for name, count := range skillCounts {
		topSkills = append(topSkills, domain.SkillCount{
			Name:     name,
			Count:    count,
			Category: representative[name],
		})
	}
	sort.SliceStable(topSkills, func(i, j int) bool {
		if topSkills[i].Count != topSkills[j].Count {
			return topSkills[i].Count > topSkills[j].Count
		}
		return topSkills[i].Name < topSkills[j].Name
	})
	if len(topSkills) > topSkillLimit {
		topSkills = topSkills[:topSkillLimit]
	}

	return &domain.TalentMapSnapshot{
		TopSkills:  topSkills,
		ByCategory: sortedLabelCounts(categoryCounts),
		ByLevel:    sortedLabelCounts(levelCounts),
	}
}

func sortedLabelCounts(counts map[string]int) []domain.LabelCount {
	out := make([]domain.LabelCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, domain.LabelCount{Label: capitalize(label), Count: count})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// capitalize upper-cases the first letter for display; the raw stored
// value stays the grouping key.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
