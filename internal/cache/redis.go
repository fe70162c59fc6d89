package cache

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// attemptWindow bounds how long failed-login counts are remembered.
const attemptWindow = 15 * time.Minute

// AttemptStore counts consecutive failed logins per email. The count is
// informational (it drives the forgot-password hint), not a hard lockout,
// so best-effort accuracy under concurrency is acceptable.
type AttemptStore interface {
	Increment(ctx context.Context, email string) (int64, error)
	Reset(ctx context.Context, email string) error
}

type redisAttemptStore struct {
	client *redis.Client
}

// NewRedisAttemptStore connects to REDIS_URL and verifies the connection.
func NewRedisAttemptStore() (AttemptStore, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisAttemptStore{client: client}, nil
}

func attemptKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}

func (s *redisAttemptStore) Increment(ctx context.Context, email string) (int64, error) {
	key := attemptKey(email)
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment login attempts: %w", err)
	}
	if count == 1 {
		s.client.Expire(ctx, key, attemptWindow)
	}
	return count, nil
}

func (s *redisAttemptStore) Reset(ctx context.Context, email string) error {
	return s.client.Del(ctx, attemptKey(email)).Err()
}

type memoryEntry struct {
	count     int64
	expiresAt time.Time
}

type memoryAttemptStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemoryAttemptStore is the fallback when no Redis is configured, and
// what the tests use. Counts do not survive a restart.
func NewMemoryAttemptStore() AttemptStore {
	return &memoryAttemptStore{entries: make(map[string]memoryEntry)}
}

func (s *memoryAttemptStore) Increment(_ context.Context, email string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entries[email]
	if entry.count == 0 || time.Now().After(entry.expiresAt) {
		entry = memoryEntry{expiresAt: time.Now().Add(attemptWindow)}
	}
	entry.count++
	s.entries[email] = entry
	return entry.count, nil
}

func (s *memoryAttemptStore) Reset(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, email)
	return nil
}
