package usecase

import (
	"context"

	"go-talent-backend/internal/domain"
)

type directoryUsecase struct {
	profileRepo  domain.ProfileRepository
	skillRepo    domain.SkillRepository
	languageRepo domain.LanguageRepository
}

func NewDirectoryUsecase(profileRepo domain.ProfileRepository, skillRepo domain.SkillRepository, languageRepo domain.LanguageRepository) domain.DirectoryUsecase {
	return &directoryUsecase{
		profileRepo:  profileRepo,
		skillRepo:    skillRepo,
		languageRepo: languageRepo,
	}
}

// Search narrows the directory to profiles matching every constraint.
// The free-text term and the verified flag are evaluated by the
// database; the three multi-select filters are existential predicates
// over the profile's collections, ANDed together. An absent filter
// matches everything. A fetch error returns no results at all, never
// a partial set.
func (u *directoryUsecase) Search(ctx context.Context, query domain.DirectoryQuery) ([]domain.ProfileDetails, error) {
	profiles, err := u.profileRepo.Search(ctx, query.Term, query.Filters.Verified)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.ProfileDetails, 0, len(profiles))
	for _, p := range profiles {
		if !matchesFilters(p, query.Filters) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

func matchesFilters(p domain.ProfileDetails, f domain.DirectoryFilters) bool {
	if len(f.Skills) > 0 && !hasAnySkillName(p.Skills, f.Skills) {
		return false
	}
	if len(f.Languages) > 0 && !hasAnyLanguage(p.Languages, f.Languages) {
		return false
	}
	if len(f.Categories) > 0 && !hasAnyCategory(p.Skills, f.Categories) {
		return false
	}
	return true
}

func hasAnySkillName(skills []domain.Skill, wanted []string) bool {
	for _, s := range skills {
		for _, w := range wanted {
			if s.Name == w {
				return true
			}
		}
	}
	return false
}

func hasAnyLanguage(languages []domain.Language, wanted []string) bool {
	for _, l := range languages {
		for _, w := range wanted {
			if l.Name == w {
				return true
			}
		}
	}
	return false
}

func hasAnyCategory(skills []domain.Skill, wanted []string) bool {
	for _, s := range skills {
		for _, w := range wanted {
			if s.Category == w {
				return true
			}
		}
	}
	return false
}

func (u *directoryUsecase) Options(ctx context.Context) (*domain.FilterOptions, error) {
	skills, err := u.skillRepo.DistinctNames(ctx)
	if err != nil {
		return nil, err
	}
	languages, err := u.languageRepo.DistinctNames(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.FilterOptions{Skills: skills, Languages: languages}, nil
}
