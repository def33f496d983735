package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	AccessTokenSecret      string
	RefreshTokenSecret     string
	AccessTokenExpiry      time.Duration
	RefreshTokenExpiry     time.Duration
	BcryptCost             int
	RateLimit              int
	RedisAddr              string
	RedisLimiterPrefix     string
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", getEnv("PORT", "8080"))

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "tasks.db"),
		AccessTokenSecret:      getEnv("ACCESS_TOKEN_SECRET", "access-secret"),
		RefreshTokenSecret:     getEnv("REFRESH_TOKEN_SECRET", "refresh-secret"),
		AccessTokenExpiry:      getEnvAsDuration("ACCESS_TOKEN_EXPIRY", 15*time.Minute),
		RefreshTokenExpiry:     getEnvAsDuration("REFRESH_TOKEN_EXPIRY", 7*24*time.Hour),
		BcryptCost:             getEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RedisAddr:              getEnv("REDIS_ADDR", ""),
		RedisLimiterPrefix:     getEnv("REDIS_LIMITER_PREFIX", "rate_limit"),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.AccessTokenSecret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET must not be empty")
	}
	if cfg.RefreshTokenSecret == "" {
		log.Fatal("REFRESH_TOKEN_SECRET must not be empty")
	}
	if cfg.AccessTokenExpiry <= 0 {
		log.Fatal("ACCESS_TOKEN_EXPIRY must be greater than 0")
	}
	if cfg.RefreshTokenExpiry <= 0 {
		log.Fatal("REFRESH_TOKEN_EXPIRY must be greater than 0")
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		log.Fatalf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid duration value for %s", key)
		}
		return d
	}
	return defaultVal
}
