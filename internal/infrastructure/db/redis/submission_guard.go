package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultSubmissionTTL = 10 * time.Minute

// SubmissionGuard rejects repeated contact form submissions backed by Redis.
// Key format: contact:dedup:<sha256(lower(email) + "\n" + message)>
type SubmissionGuard struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewSubmissionGuard creates a SubmissionGuard wrapping the given Redis client.
func NewSubmissionGuard(client redis.Cmdable, ttl time.Duration) *SubmissionGuard {
	if ttl <= 0 {
		ttl = defaultSubmissionTTL
	}
	return &SubmissionGuard{client: client, ttl: ttl}
}

// Claim records the submission and reports whether it is the first one seen
// within the TTL. Check and mark happen in a single SETNX.
func (g *SubmissionGuard) Claim(ctx context.Context, email, message string) (bool, error) {
	ok, err := g.client.SetNX(ctx, SubmissionKey(email, message), "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("submission guard: %w", err)
	}
	return ok, nil
}

// Release deletes the claim for a submission that was not stored, so the
// sender can retry right away.
func (g *SubmissionGuard) Release(ctx context.Context, email, message string) error {
	if err := g.client.Del(ctx, SubmissionKey(email, message)).Err(); err != nil {
		return fmt.Errorf("submission guard: %w", err)
	}
	return nil
}

// SubmissionKey derives the dedup key for a submission. Emails compare
// case-insensitively; the message must match exactly.
func SubmissionKey(email, message string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email)) + "\n" + message))
	return "contact:dedup:" + hex.EncodeToString(sum[:])
}
