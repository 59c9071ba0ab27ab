package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Env              string
	ResumeFolder     string
	SkillsFile       string
	ArchiveProcessed bool
	LogLevel         string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		App: AppConfig{
			Env:              getEnv("ENV", "development"),
			ResumeFolder:     getEnv("RESUME_FOLDER", "resumes"),
			SkillsFile:       getEnv("SKILLS_FILE", ""),
			ArchiveProcessed: getEnvAsBool("ARCHIVE_PROCESSED", false),
			LogLevel:         getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "interviewees"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}
}

// Validate reports configuration that cannot produce a working run.
// Called once at startup; any error here is fatal.
func (c *Config) Validate() error {
	if c.App.ResumeFolder == "" {
		return fmt.Errorf("RESUME_FOLDER must not be empty")
	}
	if c.Database.Host == "" || c.Database.Port == "" {
		return fmt.Errorf("DB_HOST and DB_PORT must not be empty")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("DB_NAME must not be empty")
	}
	if _, err := strconv.Atoi(c.Database.Port); err != nil {
		return fmt.Errorf("DB_PORT must be numeric, got %q", c.Database.Port)
	}
	return nil
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
