package configs

import (
	"os"
	"time"

	"github.com/Hamdan-B/FoodiesHub/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string
	Port      string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration

	// the account that gets the admin panel
	AdminEmail string

	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string

	UploadDir     string
	PublicBaseURL string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logger.L().Info("no .env file, using process environment")
	}

	return &Config{
		Env:           getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", "8000"),
		DBSource:      getEnv("DB_SOURCE", "foodieshub.db"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        24 * time.Hour,
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		LLMAPIKey:     os.Getenv("GEMINI_API_KEY"),
		LLMBaseURL:    getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		LLMModel:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
