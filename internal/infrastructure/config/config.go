package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Registry backend types.
const (
	RegistryTypeLocal    = "local"
	RegistryTypePostgres = "postgres"
)

// Config represents the feature store configuration
type Config struct {
	Project  string
	Registry RegistryConfig
	Database DatabaseConfig
}

// RegistryConfig selects and configures the registry backend
type RegistryConfig struct {
	Type string // "local" (embedded BadgerDB) or "postgres"
	Path string // local registry directory, relative to the store repo
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// InitConfig initializes viper configuration for a feature store repo.
// repoPath is the directory that may contain feature_store.yaml; a missing
// file is fine, defaults and FEATSTORE_* environment variables apply.
func InitConfig(repoPath string) error {
	if repoPath == "" {
		repoPath = "."
	}
	if _, err := os.Stat(repoPath); err != nil {
		return fmt.Errorf("invalid store repo path: %w", err)
	}

	viper.SetConfigName("feature_store")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(repoPath)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read feature_store.yaml: %w", err)
		}
	}

	// Environment variables take precedence over config file
	viper.SetEnvPrefix("featstore")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("project", "ai_ml_platform")
	viper.SetDefault("registry.type", RegistryTypeLocal)
	viper.SetDefault("registry.path", ".featstore/registry")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "featstore")
	viper.SetDefault("database.name", "featstore_registry")
	viper.SetDefault("database.sslmode", "disable")

	return nil
}

// Load loads configuration from viper
func Load() (*Config, error) {
	config := &Config{
		Project: viper.GetString("project"),
		Registry: RegistryConfig{
			Type: viper.GetString("registry.type"),
			Path: viper.GetString("registry.path"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("database.host"),
			Port:     viper.GetInt("database.port"),
			User:     viper.GetString("database.user"),
			Password: viper.GetString("database.password"),
			Database: viper.GetString("database.name"),
			SSLMode:  viper.GetString("database.sslmode"),
		},
	}

	if config.Project == "" {
		return nil, fmt.Errorf("project is required")
	}

	switch config.Registry.Type {
	case RegistryTypeLocal:
		if config.Registry.Path == "" {
			return nil, fmt.Errorf("registry.path is required for the local registry")
		}
	case RegistryTypePostgres:
		// database.password is required for security
		if config.Database.Password == "" {
			return nil, fmt.Errorf("database.password is required for the postgres registry (set FEATSTORE_DATABASE_PASSWORD or feature_store.yaml)")
		}
	default:
		return nil, fmt.Errorf("unknown registry type: %s", config.Registry.Type)
	}

	return config, nil
}

// ConnectionString returns PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Database,
		c.SSLMode,
	)
}
