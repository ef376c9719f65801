package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   int
	StoragePath  string // empty means in-memory store
	JWTSecretKey string
	TokenTTL     time.Duration
	// LatencyFactor scales the simulated request latency; 0 disables it.
	LatencyFactor float64
	SeedData      bool
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:    getEnvAsInt("SERVER_PORT", 8080),
		StoragePath:   getEnv("STORAGE_PATH", "retrorank.db"),
		JWTSecretKey:  getEnv("JWT_SECRET_KEY", ""),
		TokenTTL:      parseDuration(getEnv("TOKEN_TTL", "1h"), time.Hour),
		LatencyFactor: getEnvAsFloat("LATENCY_FACTOR", 1.0),
		SeedData:      getEnvBool("SEED_DATA", true),
	}
}
