// Package session keeps recently generated results in memory so they can
// be fetched again for download packaging without a second upstream call.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"studio/internal/domain"
)

// ErrNotFound is returned when a result id is unknown or has expired.
var ErrNotFound = errors.New("result not found or expired")

// Result is a stored generation outcome keyed by id.
type Result struct {
	ID        string                 `json:"id"`
	Feature   string                 `json:"feature"`
	ImageURLs []string               `json:"image_urls,omitempty"`
	Text      string                 `json:"text,omitempty"`
	Slides    []domain.CarouselSlide `json:"slides,omitempty"`
	Caption   string                 `json:"caption,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// Store is a TTL-bound in-memory result store.
type Store struct {
	cache *cache.Cache
}

// NewStore builds a store whose entries expire after ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{cache: cache.New(ttl, ttl)}
}

// Save assigns the result a fresh id and stores it until expiry.
func (s *Store) Save(res Result) Result {
	res.ID = uuid.NewString()
	res.CreatedAt = time.Now().UTC()
	s.cache.SetDefault(res.ID, res)
	return res
}

// Get fetches a stored result by id.
func (s *Store) Get(id string) (Result, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return Result{}, ErrNotFound
	}
	res, ok := v.(Result)
	if !ok {
		return Result{}, ErrNotFound
	}
	return res, nil
}
