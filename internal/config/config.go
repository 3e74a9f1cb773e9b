package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	HTTPPort        string
	MongoURI        string
	MongoDBName     string
	RedisAddr       string
	RedisPassword   string
	TokenSecret     string
	StripeSecretKey string
	AllowedOrigins  []string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func Load() *Config {
	return &Config{
		HTTPPort:        getEnv("PORT", "5000"),
		MongoURI:        mongoURI(),
		MongoDBName:     getEnv("MONGO_DB_NAME", "cakeDB"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		TokenSecret:     os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		AllowedOrigins:  allowedOrigins(),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// mongoURI prefers an explicit MONGO_URI and otherwise assembles the
// hosted cluster URI from the database credentials.
func mongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@cluster0.cqpfzla.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0",
		os.Getenv("DB_USER"), os.Getenv("DB_PASS"),
	)
}

func allowedOrigins() []string {
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		return strings.Split(origins, ",")
	}
	return []string{
		"https://cupcake-two.vercel.app",
		"http://localhost:5173",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
