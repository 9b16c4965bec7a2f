package config

import (
	"net"
	"os"
	"strconv"
)

// Config holds the environment-driven service configuration.
type Config struct {
	ListenAddr string
	RedisHost  string
	RedisPort  string
	RedisDB    int
	LogLevel   string
}

// Load reads configuration from the environment, falling back to
// defaults that match a local Redis.
func Load() *Config {
	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8000"),
		RedisHost:  getEnv("REDIS_HOST", "localhost"),
		RedisPort:  getEnv("REDIS_PORT", "6379"),
		RedisDB:    getEnvInt("REDIS_DB", 0),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

// RedisAddr returns the host:port address of the key-value store.
func (c *Config) RedisAddr() string {
	return net.JoinHostPort(c.RedisHost, c.RedisPort)
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
