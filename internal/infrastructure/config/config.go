package config

import (
	"fmt"
	"os"
	"strconv"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type RateSourceConfig struct {
	// ScrapeURL is the published daily-rates page the scraper parses.
	ScrapeURL string
	// DefaultRate is the last-resort annual rate in percent when both the
	// scrape and the AI fallback are unavailable.
	DefaultRate float64
	// OpenAIAPIKey enables the AI fallback when non-empty.
	OpenAIAPIKey string
}

type Config struct {
	GRPCPort    int
	HTTPPort    int
	DB          DatabaseConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	RateSource  RateSourceConfig
	LogLevel    string
	LogFormat   string
	ServiceName string
}

func Load() Config {
	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9092),
		HTTPPort: getEnvInt("HTTP_PORT", 8092),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "affordability"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "affordability"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			Topic:   getEnv("KAFKA_TOPIC", "affordability.events"),
		},
		RateSource: RateSourceConfig{
			ScrapeURL:    getEnv("RATE_SCRAPE_URL", "https://www.fhatoday.example.com/daily-rates"),
			DefaultRate:  getEnvFloat("RATE_DEFAULT", 7.0),
			OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		},
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		ServiceName: "affordability-service",
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func (c Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
