package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SAP-F-2025/quiz-service/internal/cache"
)

const keyPrefix = "quiz:session:"

// CacheStore keeps sessions in a shared cache so several server processes
// can grade each other's quizzes. A zero ttl never expires sessions.
type CacheStore struct {
	cache cache.CacheService
	ttl   time.Duration
}

func NewCacheStore(c cache.CacheService, ttl time.Duration) *CacheStore {
	return &CacheStore{cache: c, ttl: ttl}
}

func (s *CacheStore) Create(ctx context.Context, questionIDs []string) (string, error) {
	id := newID()
	if questionIDs == nil {
		questionIDs = []string{}
	}
	if err := s.cache.Set(ctx, keyPrefix+id, questionIDs, s.ttl); err != nil {
		return "", fmt.Errorf("failed to store quiz session: %w", err)
	}
	return id, nil
}

func (s *CacheStore) Resolve(ctx context.Context, id string) ([]string, error) {
	var ids []string
	err := s.cache.Get(ctx, keyPrefix+id, &ids)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz session: %w", err)
	}
	return ids, nil
}

// Clear drops every stored session.
func (s *CacheStore) Clear(ctx context.Context) error {
	return s.cache.DeletePattern(ctx, keyPrefix+"*")
}
