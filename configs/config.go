package configs

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port     string
	AppEnv   string
	MongoURI string
	DBName   string

	LogLevel string

	// StorageBackend selects where uploaded images live: "s3" or "gridfs".
	StorageBackend string
	S3Bucket       string
	AWSRegion      string
}

// Load reads the .env file if one exists and builds the Config with defaults.
func Load() Config {
	// Missing .env is fine in deployed environments, real env vars win.
	_ = godotenv.Load()

	return Config{
		Port:           getEnv("PORT", "5000"),
		AppEnv:         getEnv("APP_ENV", "development"),
		MongoURI:       getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:         getEnv("DB_NAME", "repairShop"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		StorageBackend: getEnv("STORAGE_BACKEND", "gridfs"),
		S3Bucket:       getEnv("S3_BUCKET", "smartphonecity-images"),
		AWSRegion:      getEnv("AWS_REGION", "eu-west-3"),
	}
}

// IsProduction controls whether error responses carry diagnostic detail.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
