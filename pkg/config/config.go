package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Redis   RedisConfig
	NATS    NATSConfig
	Session SessionConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	CORSOrigins  []string
}

// BackendConfig points at the pension booking API this client consumes.
// The backend owns availability, bookings, and authorization; this
// service never talks to its database directly.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

type NATSConfig struct {
	URL     string
	Enabled bool
}

type SessionConfig struct {
	// TokenKey is the fixed store key the bearer token lives under.
	TokenKey string
}

type BookingConfig struct {
	MinHeadcount int
	MaxHeadcount int
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 5*time.Second),
			// Write timeout must outlast the 30s backend ceiling the
			// chat proxy waits on.
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 35*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			CORSOrigins:  []string{getEnv("CORS_ORIGIN", "http://localhost:5173")},
		},
		Backend: BackendConfig{
			BaseURL: getEnv("BACKEND_BASE_URL", "https://www.penbot.site"),
			Timeout: getDuration("BACKEND_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		NATS: NATSConfig{
			URL:     getEnv("NATS_URL", "nats://localhost:4222"),
			Enabled: getBool("NATS_ENABLED", false),
		},
		Session: SessionConfig{
			TokenKey: getEnv("SESSION_TOKEN_KEY", "jwt"),
		},
		Booking: BookingConfig{
			MinHeadcount: getInt("BOOKING_MIN_HEADCOUNT", 6),
			MaxHeadcount: getInt("BOOKING_MAX_HEADCOUNT", 15),
		},
	}
}

func getEnv(key, fallback string) string {
	// Empty counts as unset so blanking a variable restores the default.
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
