package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("nonexistent.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.Mode != "development" {
		t.Errorf("expected development mode, got %s", cfg.Server.Mode)
	}
	if cfg.Database.DBName != "staffdesk" {
		t.Errorf("expected default database name, got %s", cfg.Database.DBName)
	}
	if !cfg.Seed.Enabled {
		t.Error("expected seeding enabled by default")
	}
	if cfg.IsProduction() {
		t.Error("development mode must not report production")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	content := `
server:
  port: "9000"
  mode: production
database:
  host: db.internal
  dbname: staff
logging:
  level: debug
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != "9000" {
		t.Errorf("expected port from file, got %s", cfg.Server.Port)
	}
	if !cfg.IsProduction() {
		t.Error("expected production mode")
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("expected host from file, got %s", cfg.Database.Host)
	}
	// Values absent from the file keep their defaults.
	if cfg.Database.Port != "5432" {
		t.Errorf("expected default database port, got %s", cfg.Database.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logging.Level)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	content := `
server:
  port: "9000"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DB_HOST", "override.internal")
	t.Setenv("DB_MAX_OPEN_CONNS", "42")
	t.Setenv("SEED_ENABLED", "false")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("expected env port to win, got %s", cfg.Server.Port)
	}
	if cfg.Database.Host != "override.internal" {
		t.Errorf("expected env host, got %s", cfg.Database.Host)
	}
	if cfg.Database.MaxOpenConns != 42 {
		t.Errorf("expected env max open conns, got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.Seed.Enabled {
		t.Error("expected seeding disabled via env")
	}
}

func TestLoadConfigInvalidDuration(t *testing.T) {
	t.Setenv("DB_CONN_MAX_LIFETIME", "soon")

	if _, err := LoadConfig("nonexistent.yaml"); err == nil {
		t.Fatal("expected error for invalid conn_max_lifetime")
	}
}

func TestLoadConfigInvalidBoolEnv(t *testing.T) {
	t.Setenv("SEED_ENABLED", "maybe")

	if _, err := LoadConfig("nonexistent.yaml"); err == nil {
		t.Fatal("expected error for invalid boolean env value")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "staff"
	cfg.Database.Password = "secret"
	cfg.Database.Host = "db"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "staffdesk"

	want := "postgres://staff:secret@db:5433/staffdesk?sslmode=disable"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
