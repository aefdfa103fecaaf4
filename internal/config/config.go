package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// DevJWTSecret is the fallback secret. Only the memory driver accepts it.
const DevJWTSecret = "dev-secret-change-me"

type Config struct {
	ServerPort    string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	StorageDriver string
	JWTSecret     string
	TokenTTL      time.Duration
	// PasswordHash selects the algorithm for new hashes: "argon2id" or "bcrypt".
	PasswordHash     string
	BcryptCost       int
	MaxMessageLength int
	LogLevel         string
}

func Load() *Config {
	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "missive"),
		DBPassword:       getEnv("DB_PASSWORD", "missive_dev_password"),
		DBName:           getEnv("DB_NAME", "missive"),
		StorageDriver:    getEnv("STORAGE_DRIVER", StorageDriverPostgres),
		JWTSecret:        getEnv("JWT_SECRET", DevJWTSecret),
		TokenTTL:         getEnvDuration("TOKEN_TTL", time.Hour),
		PasswordHash:     getEnv("PASSWORD_HASH", "argon2id"),
		BcryptCost:       getEnvInt("BCRYPT_COST", 10),
		MaxMessageLength: getEnvInt("MAX_MSG_LENGTH", 1000),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must not be empty"))
	} else if c.JWTSecret == DevJWTSecret && c.StorageDriver == StorageDriverPostgres {
		errs = append(errs, errors.New("JWT_SECRET must be set when using the postgres driver"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	if c.MaxMessageLength <= 0 {
		errs = append(errs, errors.New("MAX_MSG_LENGTH must be positive"))
	}
	if c.StorageDriver != StorageDriverPostgres && c.StorageDriver != StorageDriverMemory {
		errs = append(errs, errors.New("STORAGE_DRIVER must be postgres or memory"))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return d
}
