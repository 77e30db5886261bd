package locking

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

type RedisSweepLock struct {
	client rueidis.Client
	key    string
	ttl    time.Duration
}

func NewRedisSweepLock(client rueidis.Client, key string, ttl time.Duration) *RedisSweepLock {
	return &RedisSweepLock{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (l *RedisSweepLock) Acquire(ctx context.Context) error {
	cmd := l.client.B().Set().Key(l.key).Value("1").
		Nx().Px(l.ttl).Build()
	result := l.client.Do(ctx, cmd)

	if err := result.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return ErrLockHeld
		}
		return err
	}

	return nil
}

func (l *RedisSweepLock) Release(ctx context.Context) error {
	cmd := l.client.B().Del().Key(l.key).Build()
	return l.client.Do(ctx, cmd).Error()
}
