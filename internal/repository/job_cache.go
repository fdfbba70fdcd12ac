package repository

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"internhub/internal/domain/job"
	"internhub/internal/domain/page"
)

const jobStatusCachePrefix = "jobs:status:"

type PageCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// CachedJobRepository serves FindByStatus pages from a cache and drops every
// cached page whenever a job is created or updated. Cache failures fall
// through to the wrapped repository.
//
// Keys carry a generation bumped on every write, so a page read before a
// write and stored after it lands under a key no later reader asks for.
// Writes made by other processes are only bounded by the TTL.
type CachedJobRepository struct {
	job.Repository

	cache  PageCache
	ttl    time.Duration
	logger *log.Logger
	gen    atomic.Uint64
}

var _ job.Repository = (*CachedJobRepository)(nil)

func NewCachedJobRepository(inner job.Repository, cache PageCache, ttl time.Duration, logger *log.Logger) *CachedJobRepository {
	return &CachedJobRepository{Repository: inner, cache: cache, ttl: ttl, logger: logger}
}

func (r *CachedJobRepository) FindByStatus(ctx context.Context, status job.Status, req page.Request) (page.Page[job.Job], error) {
	if r.cache == nil || !status.Valid() || req.Validate() != nil {
		return r.Repository.FindByStatus(ctx, status, req)
	}

	key := fmt.Sprintf("%s:g%d", JobStatusCacheKey(status, req), r.gen.Load())
	var cached page.Page[job.Job]
	hit, err := r.cache.GetJSON(ctx, key, &cached)
	if err == nil && hit {
		r.logf("[Jobs] Cache HIT: %s", key)
		return cached, nil
	}
	r.logf("[Jobs] Cache MISS: %s", key)

	p, err := r.Repository.FindByStatus(ctx, status, req)
	if err != nil {
		return page.Page[job.Job]{}, err
	}
	if err := r.cache.SetJSON(ctx, key, p, r.ttl); err != nil {
		r.logf("[Jobs] Cache SET failed: %s err=%v", key, err)
	}
	return p, nil
}

func (r *CachedJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	created, err := r.Repository.Create(ctx, j)
	if err != nil {
		return job.Job{}, err
	}
	r.invalidate(ctx)
	return created, nil
}

func (r *CachedJobRepository) Update(ctx context.Context, j job.Job) (job.Job, error) {
	updated, err := r.Repository.Update(ctx, j)
	if err != nil {
		return job.Job{}, err
	}
	r.invalidate(ctx)
	return updated, nil
}

func (r *CachedJobRepository) invalidate(ctx context.Context) {
	r.gen.Add(1)
	if r.cache == nil {
		return
	}
	if err := InvalidateJobPages(ctx, r.cache); err != nil {
		r.logf("[Jobs] Cache invalidate failed: %v", err)
	}
}

// InvalidateJobPages drops every cached job listing page.
func InvalidateJobPages(ctx context.Context, cache PageCache) error {
	return cache.DeleteByPattern(ctx, jobStatusCachePrefix+"*")
}

func (r *CachedJobRepository) logf(format string, args ...any) {
	if r.logger != nil {
		r.logger.Printf(format, args...)
	}
}

// JobStatusCacheKey normalises the sort so equivalent requests share a key.
func JobStatusCacheKey(status job.Status, req page.Request) string {
	field := strings.ToLower(strings.TrimSpace(req.Sort.Field))
	if field == "" {
		field = jobSort.def.Field
	}
	dir, err := page.ParseDirection(string(req.Sort.Direction), jobSort.def.Direction)
	if err != nil {
		dir = page.Direction(strings.ToUpper(string(req.Sort.Direction)))
	}
	return fmt.Sprintf("%s%s:%d:%d:%s:%s", jobStatusCachePrefix, status, req.Page, req.Size, field, strings.ToLower(string(dir)))
}
