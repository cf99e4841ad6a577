package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
}

type Config struct {
	Port      string
	JWTSecret string

	Database DatabaseConfig
	Redis    RedisConfig

	KafkaBroker        string
	OutboxPollInterval time.Duration

	Attendance struct {
		Timezone      string
		BoardCacheTTL time.Duration
		FetchTimeout  time.Duration
	}

	RateLimit struct {
		RPS   float64
		Burst int
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load reads the process environment. Call godotenv.Load before it to pick up a .env file.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Port = getEnv("PORT", "3000")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")

	cfg.Database.Driver = getEnv("DB_DRIVER", "postgres")
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = os.Getenv("DB_PASSWORD")
	cfg.Database.Name = getEnv("DB_NAME", "academy")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	switch cfg.Database.Driver {
	case "postgres":
		cfg.Database.Port = getEnv("DB_PORT", "5432")
	case "mysql":
		cfg.Database.Port = getEnv("DB_PORT", "3306")
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")

	cfg.KafkaBroker = os.Getenv("KAFKA_BROKER")

	var err error
	if cfg.OutboxPollInterval, err = getDuration("OUTBOX_POLL_INTERVAL", 3*time.Second); err != nil {
		return nil, err
	}

	cfg.Attendance.Timezone = getEnv("ATTENDANCE_TIMEZONE", "Asia/Seoul")
	if cfg.Attendance.BoardCacheTTL, err = getDuration("BOARD_CACHE_TTL", 36*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Attendance.FetchTimeout, err = getDuration("ATTENDANCE_FETCH_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	cfg.RateLimit.RPS = 5
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q", v)
		}
		cfg.RateLimit.RPS = rps
	}
	cfg.RateLimit.Burst = 10
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_BURST %q", v)
		}
		cfg.RateLimit.Burst = burst
	}

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return d, nil
}
