package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"concert-ticketing-platform/internal/models"
	"concert-ticketing-platform/internal/repositories"
)

// ConcertStore is the catalog's persistence interface
type ConcertStore interface {
	GetByID(id int) (*models.Concert, error)
	List(filters repositories.ConcertFilters) ([]*models.Concert, error)
	ListGenres() ([]string, error)
}

// CatalogService provides read access to concerts and venues. Listings are
// cached in Redis when a client is configured; the service degrades to
// direct database reads when the client is nil or unreachable.
type CatalogService struct {
	concerts ConcertStore
	cache    *redis.Client
	ttl      time.Duration
}

// NewCatalogService creates a new catalog service. cache may be nil.
func NewCatalogService(concerts ConcertStore, cache *redis.Client, ttl time.Duration) *CatalogService {
	return &CatalogService{concerts: concerts, cache: cache, ttl: ttl}
}

const catalogCachePrefix = "catalog:"

// ListConcerts returns active concerts, filtered by genre and/or a
// title/artist search term, ordered by event date
func (s *CatalogService) ListConcerts(ctx context.Context, genre, search string) ([]*models.Concert, error) {
	key := fmt.Sprintf("%slist:%s:%s", catalogCachePrefix, genre, search)

	var cached []*models.Concert
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	concerts, err := s.concerts.List(repositories.ConcertFilters{
		Genre:      genre,
		Search:     search,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, concerts)
	return concerts, nil
}

// GetConcert returns one concert with its venue and live availability
func (s *CatalogService) GetConcert(ctx context.Context, id int) (*models.Concert, error) {
	key := fmt.Sprintf("%sconcert:%d", catalogCachePrefix, id)

	var cached models.Concert
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	concert, err := s.concerts.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, concert)
	return concert, nil
}

// ListGenres returns the distinct genres of active concerts
func (s *CatalogService) ListGenres(ctx context.Context) ([]string, error) {
	key := catalogCachePrefix + "genres"

	var cached []string
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	genres, err := s.concerts.ListGenres()
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, genres)
	return genres, nil
}

// Invalidate drops all cached catalog entries. Called after admin writes
// and after checkout changes availability.
func (s *CatalogService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}

	iter := s.cache.Scan(ctx, 0, catalogCachePrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("catalog cache: scan failed: %v", err)
		return
	}

	if len(keys) > 0 {
		if err := s.cache.Del(ctx, keys...).Err(); err != nil {
			log.Printf("catalog cache: invalidation failed: %v", err)
		}
	}
}

func (s *CatalogService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}

	data, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("catalog cache: get %s failed: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("catalog cache: corrupt entry %s: %v", key, err)
		return false
	}

	return true
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, key, data, s.ttl).Err(); err != nil {
		log.Printf("catalog cache: set %s failed: %v", key, err)
	}
}
