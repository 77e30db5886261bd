package config

import (
	"github.com/redis/rueidis"
)

// NewRedisClient connects to the redis instance backing the sweep
// leader lock. Redis is optional; callers only reach here when
// REDIS_ADDR is configured, so a failure is returned rather than fatal.
func NewRedisClient(addr string) (rueidis.Client, error) {
	return rueidis.NewClient(rueidis.ClientOption{
		InitAddress: []string{addr},
	})
}
