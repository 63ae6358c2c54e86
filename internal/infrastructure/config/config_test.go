package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "standard configuration",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				Database: "testdb",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable",
		},
		{
			name: "production configuration",
			cfg: DatabaseConfig{
				Host:     "db.example.com",
				Port:     5433,
				User:     "produser",
				Password: "securepass123",
				Database: "proddb",
				SSLMode:  "require",
			},
			want: "host=db.example.com port=5433 user=produser password=securepass123 dbname=proddb sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.ConnectionString(); got != tt.want {
				t.Errorf("DatabaseConfig.ConnectionString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInitConfig(t *testing.T) {
	tests := []struct {
		name     string
		repoPath string
		wantErr  bool
	}{
		{
			name:     "current directory",
			repoPath: ".",
			wantErr:  false,
		},
		{
			name:     "empty path defaults to current directory",
			repoPath: "",
			wantErr:  false,
		},
		{
			name:     "missing directory",
			repoPath: "does/not/exist",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			viper.Reset()

			err := InitConfig(tt.repoPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("InitConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			// Verify default values are set
			if !tt.wantErr {
				if viper.GetString("project") != "ai_ml_platform" {
					t.Errorf("InitConfig() project = %v, want ai_ml_platform", viper.GetString("project"))
				}
				if viper.GetString("registry.type") != RegistryTypeLocal {
					t.Errorf("InitConfig() registry.type = %v, want %v", viper.GetString("registry.type"), RegistryTypeLocal)
				}
				if viper.GetString("registry.path") != ".featstore/registry" {
					t.Errorf("InitConfig() registry.path = %v, want .featstore/registry", viper.GetString("registry.path"))
				}
				if viper.GetString("database.host") != "localhost" {
					t.Errorf("InitConfig() database.host = %v, want localhost", viper.GetString("database.host"))
				}
				if viper.GetInt("database.port") != 5432 {
					t.Errorf("InitConfig() database.port = %v, want 5432", viper.GetInt("database.port"))
				}
			}
		})
	}
}

func TestInitConfig_ReadsFeatureStoreYAML(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	repo := t.TempDir()
	yaml := []byte("project: ride_hailing\nregistry:\n  type: local\n  path: custom/registry\n")
	if err := os.WriteFile(filepath.Join(repo, "feature_store.yaml"), yaml, 0o644); err != nil {
		t.Fatalf("Failed to write feature_store.yaml: %v", err)
	}

	if err := InitConfig(repo); err != nil {
		t.Fatalf("InitConfig() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Project != "ride_hailing" {
		t.Errorf("Load() Project = %v, want ride_hailing", cfg.Project)
	}
	if cfg.Registry.Path != "custom/registry" {
		t.Errorf("Load() Registry.Path = %v, want custom/registry", cfg.Registry.Path)
	}
}

func TestInitConfig_MalformedYAML(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	repo := t.TempDir()
	if err := os.WriteFile(filepath.Join(repo, "feature_store.yaml"), []byte("project: [broken\n"), 0o644); err != nil {
		t.Fatalf("Failed to write feature_store.yaml: %v", err)
	}

	if err := InitConfig(repo); err == nil {
		t.Error("InitConfig() error = nil, want parse error for malformed yaml")
	}
}

func TestLoad(t *testing.T) {
	setupDefaults := func() {
		viper.SetDefault("project", "ai_ml_platform")
		viper.SetDefault("registry.type", RegistryTypeLocal)
		viper.SetDefault("registry.path", ".featstore/registry")
		viper.SetDefault("database.host", "localhost")
		viper.SetDefault("database.port", 5432)
		viper.SetDefault("database.user", "featstore")
		viper.SetDefault("database.name", "featstore_registry")
		viper.SetDefault("database.sslmode", "disable")
	}

	tests := []struct {
		name        string
		setupEnv    func()
		wantErr     bool
		wantErrMsg  string
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "local registry defaults",
			setupEnv: func() {
				viper.Reset()
				setupDefaults()
			},
			wantErr: false,
			validateCfg: func(t *testing.T, cfg *Config) {
				if cfg.Project != "ai_ml_platform" {
					t.Errorf("Load() Project = %v, want ai_ml_platform", cfg.Project)
				}
				if cfg.Registry.Type != RegistryTypeLocal {
					t.Errorf("Load() Registry.Type = %v, want local", cfg.Registry.Type)
				}
				if cfg.Registry.Path != ".featstore/registry" {
					t.Errorf("Load() Registry.Path = %v, want .featstore/registry", cfg.Registry.Path)
				}
			},
		},
		{
			name: "postgres registry with password",
			setupEnv: func() {
				viper.Reset()
				setupDefaults()
				viper.Set("registry.type", RegistryTypePostgres)
				viper.Set("database.password", "testpassword")
			},
			wantErr: false,
			validateCfg: func(t *testing.T, cfg *Config) {
				if cfg.Registry.Type != RegistryTypePostgres {
					t.Errorf("Load() Registry.Type = %v, want postgres", cfg.Registry.Type)
				}
				if cfg.Database.Password != "testpassword" {
					t.Errorf("Load() Database.Password = %v, want testpassword", cfg.Database.Password)
				}
				if cfg.Database.Database != "featstore_registry" {
					t.Errorf("Load() Database.Database = %v, want featstore_registry", cfg.Database.Database)
				}
			},
		},
		{
			name: "postgres registry without password",
			setupEnv: func() {
				viper.Reset()
				setupDefaults()
				viper.Set("registry.type", RegistryTypePostgres)
			},
			wantErr:    true,
			wantErrMsg: "database.password is required for the postgres registry (set FEATSTORE_DATABASE_PASSWORD or feature_store.yaml)",
		},
		{
			name: "unknown registry type",
			setupEnv: func() {
				viper.Reset()
				setupDefaults()
				viper.Set("registry.type", "dynamodb")
			},
			wantErr:    true,
			wantErrMsg: "unknown registry type: dynamodb",
		},
		{
			name: "empty project",
			setupEnv: func() {
				viper.Reset()
				setupDefaults()
				viper.Set("project", "")
			},
			wantErr:    true,
			wantErrMsg: "project is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupEnv()
			defer viper.Reset()

			cfg, err := Load()
			if (err != nil) != tt.wantErr {
				t.Errorf("Load() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if err.Error() != tt.wantErrMsg {
					t.Errorf("Load() error = %v, want %v", err.Error(), tt.wantErrMsg)
				}
				return
			}

			if tt.validateCfg != nil {
				tt.validateCfg(t, cfg)
			}
		})
	}
}
