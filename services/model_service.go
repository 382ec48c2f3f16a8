package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"tonehunt-catalog/metrics"
	"tonehunt-catalog/models"
	"tonehunt-catalog/repositories"
)

type ModelService interface {
	ListModels(ctx context.Context, params models.ListParams) (*models.ModelPage, error)
	ListTrending(ctx context.Context, params models.TrendingParams) (*models.ModelPage, error)
}

type modelService struct {
	modelRepo repositories.ModelRepository
	now       func() time.Time
}

func NewModelService(modelRepo repositories.ModelRepository) ModelService {
	return &modelService{
		modelRepo: modelRepo,
		now:       time.Now,
	}
}

func (s *modelService) ListModels(ctx context.Context, params models.ListParams) (*models.ModelPage, error) {
	query, err := s.buildModelQuery(params)
	if err != nil {
		recordQueryError("list", err)
		return nil, err
	}

	start := time.Now()
	page, err := s.modelRepo.List(ctx, query)
	metrics.ObserveQuery("list", start)
	if err == nil {
		err = checkWindow(page, query.Offset, query.Limit)
	}
	if err != nil {
		recordQueryError("list", err)
		log.WithError(err).WithFields(log.Fields{
			"query":  "list",
			"offset": query.Offset,
			"limit":  query.Limit,
		}).Error("list models failed")
		return nil, err
	}

	log.WithFields(log.Fields{
		"query":      "list",
		"total":      page.Total,
		"returned":   len(page.Data),
		"elapsed_ms": time.Since(start).Milliseconds(),
	}).Debug("models listed")
	return page, nil
}

func (s *modelService) ListTrending(ctx context.Context, params models.TrendingParams) (*models.ModelPage, error) {
	offset, limit, err := normalizeWindow(params.Offset, params.Limit)
	if err != nil {
		recordQueryError("trending", err)
		return nil, err
	}

	query := models.TrendingQuery{
		Offset:         offset,
		Limit:          limit,
		CategoryID:     params.CategoryID,
		Tags:           NormalizeTags(params.Tags),
		FavoritedSince: s.now().Add(-models.TrendingWindow),
		ViewerID:       viewerID(params.Viewer),
	}

	start := time.Now()
	page, err := s.modelRepo.Trending(ctx, query)
	metrics.ObserveQuery("trending", start)
	if err == nil {
		err = checkWindow(page, query.Offset, query.Limit)
	}
	if err != nil {
		recordQueryError("trending", err)
		log.WithError(err).WithFields(log.Fields{
			"query":  "trending",
			"offset": query.Offset,
			"limit":  query.Limit,
		}).Error("list trending failed")
		return nil, err
	}

	log.WithFields(log.Fields{
		"query":      "trending",
		"total":      page.Total,
		"returned":   len(page.Data),
		"elapsed_ms": time.Since(start).Milliseconds(),
	}).Debug("trending listed")
	return page, nil
}

func (s *modelService) buildModelQuery(params models.ListParams) (models.ModelQuery, error) {
	var query models.ModelQuery

	offset, limit, err := normalizeWindow(params.Offset, params.Limit)
	if err != nil {
		return query, err
	}
	sortKey, err := models.ParseSortKey(params.SortBy)
	if err != nil {
		return query, err
	}
	direction, err := models.ParseSortDirection(params.SortDirection)
	if err != nil {
		return query, err
	}
	if params.LastNDays < 0 {
		return query, models.InvalidParameter("lastNDays", "must not be negative, got %d", params.LastNDays)
	}
	if params.LastNDays > models.MaxLastNDays {
		return query, models.InvalidParameter("lastNDays", "must be at most %d, got %d", models.MaxLastNDays, params.LastNDays)
	}

	query = models.ModelQuery{
		Offset:          offset,
		Limit:           limit,
		CategoryID:      params.CategoryID,
		Username:        params.Username,
		ProfileID:       params.ProfileID,
		SearchTerms:     ParseSearchTerms(params.Search),
		Tags:            NormalizeTags(params.Tags),
		IncludeInactive: params.All,
		Sort:            sortKey,
		Direction:       direction,
		ViewerID:        viewerID(params.Viewer),
	}

	if params.Following {
		if query.ViewerID == "" {
			return query, models.InvalidParameter("following", "requires a signed in viewer")
		}
		query.FollowerID = query.ViewerID
	}
	if params.LastNDays > 0 {
		since := s.now().AddDate(0, 0, -params.LastNDays)
		query.CreatedSince = &since
	}
	return query, nil
}

// normalizeWindow rejects negative or oversized windows; a zero limit means
// the default page size.
func normalizeWindow(offset, limit int) (int, int, error) {
	if offset < 0 {
		return 0, 0, models.InvalidParameter("offset", "must not be negative, got %d", offset)
	}
	if limit < 0 {
		return 0, 0, models.InvalidParameter("limit", "must not be negative, got %d", limit)
	}
	if limit > models.MaxLimit {
		return 0, 0, models.InvalidParameter("limit", "must be at most %d, got %d", models.MaxLimit, limit)
	}
	if limit == 0 {
		limit = models.DefaultLimit
	}
	return offset, limit, nil
}

// checkWindow verifies the page is exactly the [offset, offset+limit) slice
// of a result set of size total.
func checkWindow(page *models.ModelPage, offset, limit int) error {
	remaining := page.Total - int64(offset)
	if remaining < 0 {
		remaining = 0
	}
	want := min(remaining, int64(limit))
	if got := int64(len(page.Data)); got != want {
		return fmt.Errorf("%w: total %d offset %d limit %d returned %d",
			models.ErrConsistencyViolation, page.Total, offset, limit, got)
	}
	return nil
}

func viewerID(v *models.Viewer) string {
	if v == nil {
		return ""
	}
	return v.ID
}

func recordQueryError(query string, err error) {
	metrics.QueryErrors.WithLabelValues(query, errorClass(err)).Inc()
}

func errorClass(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidParameter):
		return "invalid_parameter"
	case errors.Is(err, models.ErrStoreUnavailable):
		return "store_unavailable"
	case errors.Is(err, models.ErrConsistencyViolation):
		return "consistency_violation"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	return "other"
}
