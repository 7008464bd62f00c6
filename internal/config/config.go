package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	RedisHost     string
	RedisPort     string
	SessionSecret string
	GinMode       string

	// VideoUploadMinAccountAge is how old an account must be before the
	// dashboard shows the video upload prompt. Policy input, not a
	// hard-coded rule.
	VideoUploadMinAccountAge time.Duration
}

func Load() *Config {
	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "mysql"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBUser:        getEnv("DB_USER", "dashuser"),
		DBPassword:    getEnv("DB_PASSWORD", "dashpassword"),
		DBName:        getEnv("DB_NAME", "creator_dashboard"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:       getEnv("GIN_MODE", "debug"),

		VideoUploadMinAccountAge: time.Duration(getEnvInt("VIDEO_UPLOAD_MIN_ACCOUNT_AGE_DAYS", 21)) * 24 * time.Hour,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
