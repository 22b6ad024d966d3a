package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	// Database is optional: driver "" keeps the in-memory store
	Database struct {
		Driver   string `yaml:"driver"` // "", "mysql" or "postgres"
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"sslMode"`
	} `yaml:"database"`

	Groq struct {
		APIKey         string `yaml:"apiKey"` // GROQ_API_KEY env wins
		BaseURL        string `yaml:"baseURL"`
		VisionModel    string `yaml:"visionModel"`
		ReasoningModel string `yaml:"reasoningModel"`
	} `yaml:"groq"`

	Upload struct {
		MaxImages    int   `yaml:"maxImages"`
		MaxFileBytes int64 `yaml:"maxFileBytes"`
	} `yaml:"upload"`

	Pipeline struct {
		StageTimeoutSeconds int `yaml:"stageTimeoutSeconds"`
	} `yaml:"pipeline"`

	// Minio is optional: empty endpoint disables report archiving
	Minio struct {
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
	} `yaml:"minio"`
}

// Load reads config.yaml plus .env/environment overrides. A missing config
// file is fine; every knob has a default. A missing API key is NOT a load
// error: it is surfaced at call time as a classified configuration error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if uerr := yaml.Unmarshal(data, &cfg); uerr != nil {
			return nil, fmt.Errorf("parse %s: %w", path, uerr)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		cfg.Groq.APIKey = v
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Upload.MaxImages == 0 {
		cfg.Upload.MaxImages = 5
	}
	if cfg.Upload.MaxFileBytes == 0 {
		cfg.Upload.MaxFileBytes = 2_990_000
	}
	if cfg.Pipeline.StageTimeoutSeconds == 0 {
		cfg.Pipeline.StageTimeoutSeconds = 120
	}
	return &cfg, nil
}

func (c *Config) StageTimeout() time.Duration {
	return time.Duration(c.Pipeline.StageTimeoutSeconds) * time.Second
}

// MySQLDSN builds the MySQL connection string
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

// PostgresDSN builds the lib/pq connection string
func (c *Config) PostgresDSN() string {
	ssl := c.Database.SSLMode
	if ssl == "" {
		ssl = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		ssl,
	)
}
