package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at process start and passed to every component that
// needs it. Nothing reads the environment after LoadConfig returns.
type Config struct {
	ServerPort  string
	DatabaseDSN string

	AccessSecret string
	TokenTTL     time.Duration

	AllowOrigins string

	UploadDir         string
	MaxFileSize       int64
	AllowedExtensions string // comma-separated, e.g. "pdf,zip,jpg,jpeg,png"

	AdminEmail    string
	AdminPassword string

	XAIAPIKey  string
	XAIModel   string
	GroqAPIKey string
	GroqModel  string

	IdeaQuota int

	KafkaBroker   string
	KafkaTopic    string
	KafkaUsername string
	KafkaPassword string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	return Config{
		ServerPort:  getEnv("SERVER_PORT", ":8000"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		AccessSecret: os.Getenv("ACCESS_SECRET"),
		TokenTTL:     getEnvDuration("TOKEN_TTL", 30*24*time.Hour),

		AllowOrigins: getEnv("ALLOW_ORIGINS", "http://localhost:5173"),

		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		MaxFileSize:       getEnvInt64("MAX_FILE_SIZE", 10*1024*1024),
		AllowedExtensions: getEnv("ALLOWED_EXTENSIONS", "pdf,zip,jpg,jpeg,png"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		XAIAPIKey:  os.Getenv("XAI_API_KEY"),
		XAIModel:   getEnv("XAI_MODEL", "grok-2-latest"),
		GroqAPIKey: os.Getenv("GROQ_API_KEY"),
		GroqModel:  getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),

		IdeaQuota: getEnvInt("IDEA_QUOTA", 50),

		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    os.Getenv("KAFKA_TOPIC"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %s", key, v, fallback)
		return fallback
	}
	return d
}
