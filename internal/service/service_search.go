// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
)

type cachedResult struct {
	records  []models.FileRecord
	storedAt time.Time
}

type searchService struct {
	index store.CatalogIndex

	limit    int
	debounce time.Duration
	ttl      time.Duration

	inFlight *semaphore.Weighted

	mu         sync.Mutex
	cache      map[string]cachedResult
	generation uint64
	timer      *time.Timer

	logger *logger.Logger
	now    func() time.Time
}

func NewSearchService(index store.CatalogIndex, cfg config.Search, logger *logger.Logger) SearchService {
	return &searchService{
		index:    index,
		limit:    cfg.Limit,
		debounce: cfg.Debounce,
		ttl:      cfg.CacheTTL,
		inFlight: semaphore.NewWeighted(1),
		cache:    make(map[string]cachedResult),
		logger:   logger,
		now:      time.Now,
	}
}

// Search answers filter from the cache when possible. Otherwise it queries
// the catalog index, unless another query is already running, in which case
// the call is dropped with ErrSearchInProgress.
func (s *searchService) Search(ctx context.Context, filter models.SearchFilter) (models.SearchResult, error) {
	start := s.now()
	key := filter.CacheKey()

	if records, ok := s.lookup(key); ok {
		return models.SearchResult{Records: records, Cached: true, Elapsed: s.now().Sub(start)}, nil
	}

	if !s.inFlight.TryAcquire(1) {
		return models.SearchResult{}, ErrSearchInProgress
	}
	defer s.inFlight.Release(1)

	s.mu.Lock()
	generation := s.generation
	s.mu.Unlock()

	records, err := s.index.SearchFilesFast(ctx, models.SearchQuery{
		Filename:   strings.TrimSpace(filter.Name),
		Extensions: filter.Type.Extensions(),
		Panel:      filter.Panel,
		Limit:      uint64(s.limit),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "searchService.Search").Msg("catalog index search failed")
		return models.SearchResult{}, err
	}

	// a capped result set may be incomplete and is never cached
	if len(records) < s.limit {
		s.store(key, records, generation)
	}

	return models.SearchResult{Records: records, Elapsed: s.now().Sub(start)}, nil
}

// Schedule restarts the quiet period on every call. When it elapses the last
// scheduled filter is searched and callback receives the outcome.
func (s *searchService) Schedule(filter models.SearchFilter, callback func(models.SearchResult, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		result, err := s.Search(context.Background(), filter)
		if callback != nil {
			callback(result, err)
		}
	})
}

func (s *searchService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	clear(s.cache)
}

func (s *searchService) lookup(key string) ([]models.FileRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cache[key]
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && s.now().Sub(entry.storedAt) > s.ttl {
		delete(s.cache, key)
		return nil, false
	}

	// callers own what they get back
	return slices.Clone(entry.records), true
}

// store keeps records unless the cache was invalidated while they were
// being fetched.
func (s *searchService) store(key string, records []models.FileRecord, generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return
	}
	s.cache[key] = cachedResult{records: slices.Clone(records), storedAt: s.now()}
}
