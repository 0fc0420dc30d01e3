package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"STORE_DRIVER", "STORE_PATH", "STORE_NAMESPACE", "LISTEN_ADDR", "SEED_ON_START"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.Driver != "sqlite3" {
		t.Errorf("expected driver sqlite3, got %q", cfg.Driver)
	}
	if cfg.Namespace != "storefront" {
		t.Errorf("expected namespace storefront, got %q", cfg.Namespace)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("expected listen addr :8080, got %q", cfg.ListenAddr)
	}
	if !cfg.SeedOnStart {
		t.Error("expected seeding to default to true")
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	for _, key := range []string{"STORE_DRIVER", "DBNAME", "SEED_ON_START"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	path := filepath.Join(t.TempDir(), "test.env")
	content := "STORE_DRIVER=mysql\nDBNAME=shop\nSEED_ON_START=false\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("Failed to load env file: %v", err)
	}

	cfg := Load()
	if cfg.Driver != "mysql" {
		t.Errorf("expected driver mysql, got %q", cfg.Driver)
	}
	if cfg.DBName != "shop" {
		t.Errorf("expected db name shop, got %q", cfg.DBName)
	}
	if cfg.SeedOnStart {
		t.Error("expected seeding disabled")
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "absent.env")); err == nil {
		t.Error("expected error for missing env file")
	}
}
