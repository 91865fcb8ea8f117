package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBName    string
	JWTKey    string
	SaltRound int

	EmailSender    string
	SendGridAPIKey string

	BaseURL string

	ImageApiURL string
	ImageApiKey string

	// Workflow tunables
	ReviewDelayMinutes     int    // wait before a submitted task becomes reviewable
	InternshipDurationDays int    // enrollment end date offset
	RepoLinkMarker         string // substring a repository link must contain to pass review
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBName:    getEnv("DB_NAME", "internhub"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		EmailSender:    getEnv("EMAIL_SENDER", ""),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),

		BaseURL: getEnv("BASE_URL", "http://localhost:3000"),

		ImageApiURL: getEnv("IMAGE_API_URL", ""),
		ImageApiKey: getEnv("IMAGE_API_KEY", ""),

		ReviewDelayMinutes:     getEnvInt("REVIEW_DELAY_MINUTES", 10),
		InternshipDurationDays: getEnvInt("INTERNSHIP_DURATION_DAYS", 30),
		RepoLinkMarker:         getEnv("REPO_LINK_MARKER", "github.com"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.SendGridAPIKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Outgoing emails will be skipped.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
