package models

type SortKey string

const (
	SortCreatedAt SortKey = "createdAt"
	SortUpdatedAt SortKey = "updatedAt"
	SortTitle     SortKey = "title"
	SortPopular   SortKey = "popular"
)

var sortColumns = map[SortKey]string{
	SortCreatedAt: "models.created_at",
	SortUpdatedAt: "models.updated_at",
	SortTitle:     "models.title",
}

// ParseSortKey maps a caller supplied key onto the closed set. Empty means
// creation time.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortCreatedAt, nil
	}
	k := SortKey(s)
	if k == SortPopular {
		return k, nil
	}
	if _, ok := sortColumns[k]; !ok {
		return "", InvalidParameter("sortBy", "unknown sort field %q", s)
	}
	return k, nil
}

// Column returns the ordering column, or "" for popular which orders by
// aggregates.
func (k SortKey) Column() string {
	return sortColumns[k]
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func ParseSortDirection(s string) (SortDirection, error) {
	switch SortDirection(s) {
	case "":
		return SortDesc, nil
	case SortAsc, SortDesc:
		return SortDirection(s), nil
	}
	return "", InvalidParameter("sortDirection", "must be asc or desc, got %q", s)
}

func (d SortDirection) Desc() bool {
	return d != SortAsc
}
