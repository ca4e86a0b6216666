package usecase

import (
	"context"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	sessions *SessionStore
	redis    *goredis.Client
	scanner  string
	contact  func() bool
}

// NewHealthUsecase reports on the parts the site depends on. redisClient may
// be nil when rate limiting runs in memory.
func NewHealthUsecase(sessions *SessionStore, redisClient *goredis.Client, scannerName string, contactAvailable func() bool) HealthUsecase {
	return &healthUsecase{
		sessions: sessions,
		redis:    redisClient,
		scanner:  scannerName,
		contact:  contactAvailable,
	}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	report := map[string]string{
		"status":  "ok",
		"scanner": u.scanner,
		"redis":   "disabled",
		"contact": "disabled",
	}
	if u.sessions != nil {
		report["sessions"] = strconv.Itoa(u.sessions.Len())
	}
	if u.contact != nil && u.contact() {
		report["contact"] = "enabled"
	}
	if u.redis != nil {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := u.redis.Ping(ctx).Err(); err != nil {
			// The limiter falls back to memory, the site stays up
			report["redis"] = "unreachable"
		} else {
			report["redis"] = "ok"
		}
	}
	return report
}
