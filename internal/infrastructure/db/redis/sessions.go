package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRevocationTTL = 24 * time.Hour

// SessionStore records when a user's tokens were revoked. Tokens issued
// before that instant are rejected; tokens issued afterwards, for example
// after reactivation, are not. A mark lives as long as the longest token that
// could predate it. Key format: revoked:<user_id> -> unix seconds.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionStore creates a SessionStore; ttl should match the token lifetime.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultRevocationTTL
	}
	return &SessionStore{client: client, ttl: ttl, now: time.Now}
}

// Revoke rejects every token of userID issued up to now.
func (s *SessionStore) Revoke(ctx context.Context, userID string) error {
	at := strconv.FormatInt(s.now().Unix(), 10)
	if err := s.client.Set(ctx, s.key(userID), at, s.ttl).Err(); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	return nil
}

// IsRevoked reports whether a token of userID issued at issuedAt predates the
// user's last revocation.
func (s *SessionStore) IsRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error) {
	raw, err := s.client.Get(ctx, s.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check revocation: %w", err)
	}
	return issuedBefore(raw, issuedAt)
}

// issuedBefore compares a token's issue time with a stored revocation mark.
// Both have second precision, so a token issued in the same second as the
// revocation counts as revoked.
func issuedBefore(mark string, issuedAt time.Time) (bool, error) {
	sec, err := strconv.ParseInt(mark, 10, 64)
	if err != nil {
		return false, fmt.Errorf("check revocation: malformed mark %q: %w", mark, err)
	}
	return issuedAt.Unix() <= sec, nil
}

func (s *SessionStore) key(userID string) string {
	return fmt.Sprintf("revoked:%s", userID)
}
