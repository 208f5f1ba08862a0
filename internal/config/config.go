package config

import (
	"os"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	MySQLDSN    string
	JWTSecret   string
	BaseURL     string
	UploadsDir  string
	AssetsDir   string
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/wanderlog?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		UploadsDir:  getEnv("UPLOADS_DIR", "./uploads"),
		AssetsDir:   getEnv("ASSETS_DIR", "./assets"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

// PlaceholderImageURL is the image substituted when a story is edited
// without one.
func (c *Config) PlaceholderImageURL() string {
	return c.BaseURL + "/assets/placeholder.png"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
