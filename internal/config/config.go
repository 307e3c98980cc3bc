package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv     string
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string

	FrontendURL string

	OpenAIAPIKey     string
	OpenAIAPIURL     string
	CommentModel     string
	InsightsModel    string
	AITimeoutSeconds int
	AIConcurrency    int

	ParasutClientID     string
	ParasutClientSecret string
	ParasutUsername     string
	ParasutPassword     string
	ParasutCompanyID    string

	WebhookSecret string
}

func Load() *Config {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "exportiq"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", "super-secret-key-change-me"),

		FrontendURL: getEnv("FRONTEND_URL", ""),

		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIAPIURL:     getEnv("OPENAI_API_URL", "https://api.openai.com/v1"),
		CommentModel:     getEnv("OPENAI_COMMENT_MODEL", "gpt-4o-mini"),
		InsightsModel:    getEnv("OPENAI_INSIGHTS_MODEL", "gpt-4o"),
		AITimeoutSeconds: getEnvInt("AI_TIMEOUT_SECONDS", 60),
		AIConcurrency:    getEnvInt("AI_CONCURRENCY", 4),

		ParasutClientID:     getEnv("PARASUT_CLIENT_ID", ""),
		ParasutClientSecret: getEnv("PARASUT_CLIENT_SECRET", ""),
		ParasutUsername:     getEnv("PARASUT_USERNAME", ""),
		ParasutPassword:     getEnv("PARASUT_PASSWORD", ""),
		ParasutCompanyID:    getEnv("PARASUT_COMPANY_ID", ""),

		WebhookSecret: getEnv("WEBHOOK_SECRET", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
