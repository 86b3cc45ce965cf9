package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB.
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Sessions.
	JWTSecret  string        `mapstructure:"JWT_SECRET"`
	AdminToken string        `mapstructure:"ADMIN_TOKEN"`
	SessionTTL time.Duration `mapstructure:"SESSION_TTL"`
	// Absolute token lifetime; SessionTTL is the sliding idle timeout inside it.
	SessionMaxAge time.Duration `mapstructure:"SESSION_MAX_AGE"`

	// Redis configuration.
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB        int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB       int    `mapstructure:"REDIS_QUEUE_DB"`
	CleanupQueue       bool   `mapstructure:"CLEANUP_QUEUE_ENABLED"`
	CleanupConcurrency int    `mapstructure:"CLEANUP_CONCURRENCY"`

	// Blob storage: "cloudinary" or "firebase".
	StorageBackend      string `mapstructure:"STORAGE_BACKEND"`
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
	FirebaseCredentials string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	FirebaseBucket      string `mapstructure:"FIREBASE_STORAGE_BUCKET"`
	ImageMaxWidth       int    `mapstructure:"IMAGE_MAX_WIDTH"`

	// Booking rules.
	StrictNumericInput bool          `mapstructure:"STRICT_NUMERIC_INPUT"`
	BookingLockTTL     time.Duration `mapstructure:"BOOKING_LOCK_TTL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "weddingconsole")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("ADMIN_TOKEN", "")
	viper.SetDefault("SESSION_TTL", "24h")
	viper.SetDefault("SESSION_MAX_AGE", "168h")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 3)
	viper.SetDefault("CLEANUP_QUEUE_ENABLED", true)
	viper.SetDefault("CLEANUP_CONCURRENCY", 5)
	viper.SetDefault("STORAGE_BACKEND", "cloudinary")
	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	viper.SetDefault("FIREBASE_STORAGE_BUCKET", "")
	viper.SetDefault("IMAGE_MAX_WIDTH", 1600)
	viper.SetDefault("STRICT_NUMERIC_INPUT", false)
	viper.SetDefault("BOOKING_LOCK_TTL", "30s")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
