package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/polls-backend/internal/domain"
)

const reportKeyPrefix = "polls:contrast:"

// jitter spreads expirations so reports computed together do not all
// expire in the same instant.
const jitter = 0.1

// ReportCache stores contrast reports per (subject, viewer) pair.
type ReportCache struct {
	client Client
	ttl    time.Duration
}

// NewReportCache creates a cache whose entries live about ttl.
func NewReportCache(client Client, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl}
}

// Get returns the cached report, or false on a miss.
func (c *ReportCache) Get(ctx context.Context, subject, viewer string) (*domain.ContrastReport, bool, error) {
	raw, err := c.client.Get(ctx, reportKey(subject, viewer)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached report: %w", err)
	}

	var r domain.ContrastReport
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, false, fmt.Errorf("decode cached report: %w", err)
	}
	return &r, true, nil
}

// Set stores r for the pair.
func (c *ReportCache) Set(ctx context.Context, subject, viewer string, r *domain.ContrastReport) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := c.client.Set(ctx, reportKey(subject, viewer), raw, c.expiration()).Err(); err != nil {
		return fmt.Errorf("set cached report: %w", err)
	}
	return nil
}

func (c *ReportCache) expiration() time.Duration {
	spread := float64(c.ttl) * jitter
	return c.ttl + time.Duration((rand.Float64()*2-1)*spread)
}

func reportKey(subject, viewer string) string {
	return reportKeyPrefix + subject + ":" + viewer
}
