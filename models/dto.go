package models

// ModelListRequest is bound from the query string of GET /models. Page is
// zero based.
type ModelListRequest struct {
	Page          int      `form:"page" validate:"min=0,max=1000000"`
	Limit         int      `form:"limit" validate:"min=0,max=100"`
	Category      string   `form:"category" validate:"max=255"`
	Tags          []string `form:"tags"`
	Search        string   `form:"search" validate:"max=255"`
	SortBy        string   `form:"sortBy" validate:"omitempty,oneof=createdAt updatedAt title popular"`
	SortDirection string   `form:"sortDirection" validate:"omitempty,oneof=asc desc"`
	Username      string   `form:"username" validate:"max=36"`
	ProfileID     string   `form:"profileId"`
	Following     bool     `form:"following"`
	LastNDays     int      `form:"lastNDays" validate:"min=0,max=3650"`
	All           bool     `form:"all"`
}

type TrendingRequest struct {
	Page     int      `form:"page" validate:"min=0,max=1000000"`
	Limit    int      `form:"limit" validate:"min=0,max=100"`
	Category string   `form:"category" validate:"max=255"`
	Tags     []string `form:"tags"`
}

type CountsResponse struct {
	Counts []Counts `json:"counts"`
	Total  int      `json:"total"`
}
