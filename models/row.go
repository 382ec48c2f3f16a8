package models

import (
	"time"

	"github.com/lib/pq"
)

type ProfileSummary struct {
	ID       string  `json:"id"`
	Username *string `json:"username"`
}

type CategorySummary struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	PluralTitle string `json:"plural_title"`
}

type EngagementCount struct {
	Favorites int64 `json:"favorites"`
	Downloads int64 `json:"downloads"`
}

// ModelRow is one listed model with its relations and aggregates.
// FavoriteID is the viewer's own active favorite, when there is a viewer.
type ModelRow struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	AmpName     string          `json:"amp_name"`
	Filename    string          `json:"filename"`
	Filecount   *int            `json:"filecount"`
	Icon        string          `json:"icon"`
	Link        string          `json:"link"`
	Tags        pq.StringArray  `json:"tags"`
	LicenseID   *uint           `json:"license_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Profile     ProfileSummary  `json:"profile"`
	Category    CategorySummary `json:"category"`
	Count       EngagementCount `json:"_count"`
	FavoriteID  *uint           `json:"favorite_id,omitempty"`
}

type ModelPage struct {
	Total int64      `json:"total"`
	Data  []ModelRow `json:"data"`
}
