package config

import (
	"os"
)

type Config struct {
	HTTPPort      string
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	SessionStore  string
	RedisHost     string
	RedisPort     string
	SessionSecret string
	GinMode       string
	LogLevel      string
	LogFormat     string
	OpenAIAPIKey  string
}

func Load() *Config {
	return &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		DBDriver:      getEnv("DB_DRIVER", "mysql"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBUser:        getEnv("DB_USER", "employeeuser"),
		DBPassword:    getEnv("DB_PASSWORD", "employeepassword"),
		DBName:        getEnv("DB_NAME", "employee_management"),
		SessionStore:  getEnv("SESSION_STORE", "redis"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
	}
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// RedisAddr returns host:port of the session redis.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
