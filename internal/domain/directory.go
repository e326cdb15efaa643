package domain

import "context"

// DirectoryFilters are the structured constraints of a directory
// search. A nil/empty field imposes no constraint. Within one field
// values combine with OR, across fields with AND.
type DirectoryFilters struct {
	Skills     []string `json:"skills,omitempty" form:"skills"`
	Languages  []string `json:"languages,omitempty" form:"languages"`
	Categories []string `json:"categories,omitempty" form:"categories"`
	Verified   *bool    `json:"verified,omitempty" form:"verified"`
}

type DirectoryQuery struct {
	Term    string `json:"search,omitempty" form:"search"`
	Filters DirectoryFilters
}

// FilterOptions feeds the search page's filter pickers.
type FilterOptions struct {
	Skills    []string `json:"skills"`
	Languages []string `json:"languages"`
}

type DirectoryUsecase interface {
	Search(ctx context.Context, query DirectoryQuery) ([]ProfileDetails, error)
	Options(ctx context.Context) (*FilterOptions, error)
}
