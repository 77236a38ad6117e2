package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	Env        string
	Timezone   string

	SessionTTL        time.Duration
	SuccessMessageTTL time.Duration
	ErrorMessageTTL   time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RateLimitPerMin int
	SweepSchedule   string
	CORSOrigins     []string
}

// Load lê o .env (se existir) e depois as variáveis de ambiente.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Env:        getEnv("APP_ENV", "development"),
		Timezone:   getEnv("TIMEZONE", "America/Sao_Paulo"),

		SessionTTL:        getDuration("SESSION_TTL", 30*time.Minute),
		SuccessMessageTTL: getDuration("SUCCESS_MESSAGE_TTL", 4*time.Second),
		ErrorMessageTTL:   getDuration("ERROR_MESSAGE_TTL", 3*time.Second),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),

		RateLimitPerMin: getInt("RATE_LIMIT_PER_MIN", 120),
		SweepSchedule:   getEnv("SWEEP_SCHEDULE", "@every 1m"),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "*")),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnv(key, "")); err == nil && d > 0 {
		return d
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) UseRedis() bool {
	return c.RedisAddr != ""
}
