package models

import "time"

const (
	DefaultLimit   = 10
	MaxLimit       = 100
	TrendingWindow = 7 * 24 * time.Hour
	MaxLastNDays   = 3650
)

// Viewer is the requesting identity supplied by the auth collaborator.
type Viewer struct {
	ID       string
	Username string
}

// ListParams is the loosely validated bundle handed to the listing service.
type ListParams struct {
	Offset        int
	Limit         int
	CategoryID    uint
	SortBy        string
	SortDirection string
	Search        string
	Username      string
	ProfileID     string
	Tags          []string
	Following     bool
	LastNDays     int
	All           bool
	Viewer        *Viewer
}

type TrendingParams struct {
	Offset     int
	Limit      int
	CategoryID uint
	Tags       []string
	Viewer     *Viewer
}

// ModelQuery is a validated ListParams. Empty fields mean "no filter".
type ModelQuery struct {
	Offset          int
	Limit           int
	CategoryID      uint
	Username        string
	ProfileID       string
	SearchTerms     []string
	Tags            []string
	FollowerID      string
	CreatedSince    *time.Time
	IncludeInactive bool
	Sort            SortKey
	Direction       SortDirection
	ViewerID        string
}

// Popular reports whether rows order by engagement instead of a column.
// Search always ranks by popularity.
func (q ModelQuery) Popular() bool {
	return q.Sort == SortPopular || len(q.SearchTerms) > 0
}

type TrendingQuery struct {
	Offset         int
	Limit          int
	CategoryID     uint
	Tags           []string
	FavoritedSince time.Time
	ViewerID       string
}
