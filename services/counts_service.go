package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"tonehunt-catalog/metrics"
	"tonehunt-catalog/models"
	"tonehunt-catalog/repositories"
)

// CountsCache holds the denormalized counts between reads. A miss returns
// (nil, nil).
type CountsCache interface {
	Get(ctx context.Context) ([]models.Counts, error)
	Set(ctx context.Context, counts []models.Counts) error
}

type CountsService interface {
	GetCounts(ctx context.Context) (*models.CountsResponse, error)
}

type countsService struct {
	countsRepo repositories.CountsRepository
	cache      CountsCache
}

// NewCountsService reads through cache when it is non-nil.
func NewCountsService(countsRepo repositories.CountsRepository, cache CountsCache) CountsService {
	return &countsService{
		countsRepo: countsRepo,
		cache:      cache,
	}
}

func (s *countsService) GetCounts(ctx context.Context) (*models.CountsResponse, error) {
	if s.cache != nil {
		counts, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			metrics.CountsCache.WithLabelValues("error").Inc()
			log.WithError(err).Warn("counts cache read failed")
		case counts != nil:
			metrics.CountsCache.WithLabelValues("hit").Inc()
			return newCountsResponse(counts), nil
		default:
			metrics.CountsCache.WithLabelValues("miss").Inc()
		}
	}

	counts, err := s.countsRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, counts); err != nil {
			log.WithError(err).Warn("counts cache write failed")
		}
	}
	return newCountsResponse(counts), nil
}

func newCountsResponse(counts []models.Counts) *models.CountsResponse {
	res := &models.CountsResponse{Counts: counts}
	for _, c := range counts {
		res.Total += c.Count
	}
	return res
}

const countsCacheKey = "catalog:counts"

type redisCountsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCountsCache(rdb *redis.Client, ttl time.Duration) CountsCache {
	return &redisCountsCache{rdb: rdb, ttl: ttl}
}

func (c *redisCountsCache) Get(ctx context.Context) ([]models.Counts, error) {
	raw, err := c.rdb.Get(ctx, countsCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	counts := []models.Counts{}
	if err := json.Unmarshal(raw, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (c *redisCountsCache) Set(ctx context.Context, counts []models.Counts) error {
	raw, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, countsCacheKey, raw, c.ttl).Err()
}
