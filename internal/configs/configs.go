package config

import (
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	AppHost string `env:"APP_HOST" env-default:"127.0.0.1"`
	AppPort string `env:"APP_PORT" env-default:"8080"`

	DatabaseDSN string `env:"DATABASE_DSN" env-default:"taskdesk.db"`

	JWTSecret string        `env:"JWT_SECRET" env-required:"true"`
	JWTTTL    time.Duration `env:"JWT_TTL" env-default:"24h"`

	SweepInterval        time.Duration `env:"SWEEP_INTERVAL" env-default:"1m"`
	ScheduleGraceMinutes int           `env:"SCHEDULE_GRACE_MINUTES" env-default:"30"`

	RateLimit       int           `env:"RATE_LIMIT_PER_MINUTE" env-default:"60"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"20s"`

	// Optional; when set, the sweep takes a redis leader lock each tick.
	RedisAddr         string        `env:"REDIS_ADDR" env-default:""`
	RedisSweepLockKey string        `env:"REDIS_SWEEP_LOCK_KEY" env-default:"taskdesk_sweep_lock"`
	RedisSweepLockTTL time.Duration `env:"REDIS_SWEEP_LOCK_TTL" env-default:"50s"`
}

func Load() Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to read config from env: %v", err)
	}

	validate(cfg)
	return cfg
}

func (c Config) AppURL() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

func (c Config) GraceWindow() time.Duration {
	return time.Duration(c.ScheduleGraceMinutes) * time.Minute
}

func validate(cfg Config) {
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.SweepInterval <= 0 {
		log.Fatal("SWEEP_INTERVAL must be greater than 0")
	}
	if cfg.ScheduleGraceMinutes < 0 {
		log.Fatal("SCHEDULE_GRACE_MINUTES must not be negative")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
}
