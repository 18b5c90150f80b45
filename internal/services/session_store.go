package services

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/example/essence/internal/config"
)

// SessionStore tracks revoked session tokens in Redis so logout takes
// effect before the JWT expires. A nil client disables revocation
// checks; logout then only clears the cookie.
type SessionStore struct {
	rdb *redis.Client
}

// NewSessionStore connects to Redis. Returns a store with a nil client
// when the server is unreachable so the application degrades gracefully.
func NewSessionStore(cfg *config.Config) *SessionStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, session revocation disabled: %v", err)
		return &SessionStore{}
	}

	return &SessionStore{rdb: client}
}

func revocationKey(jti string) string {
	return "session:revoked:" + jti
}

// Revoke denylists a token ID until its natural expiry.
func (s *SessionStore) Revoke(ctx context.Context, jti string, until time.Time) error {
	if s.rdb == nil || jti == "" {
		return nil
	}

	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}

	return s.rdb.Set(ctx, revocationKey(jti), "1", ttl).Err()
}

// IsRevoked reports whether a token ID has been denylisted. Redis
// errors are treated as "not revoked" so an outage does not lock
// everyone out.
func (s *SessionStore) IsRevoked(ctx context.Context, jti string) bool {
	if s.rdb == nil || jti == "" {
		return false
	}

	exists, err := s.rdb.Exists(ctx, revocationKey(jti)).Result()
	if err != nil {
		log.Printf("redis exists check failed: %v", err)
		return false
	}

	return exists > 0
}
