package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE_DRIVER", "STORE_TIMEOUT", "ID_BLOCK_SIZE", "MONGO_DATABASE", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.Server.Port != "9000" {
		t.Errorf("expected port 9000, got %q", cfg.Server.Port)
	}
	if cfg.Store.Driver != DriverMongo {
		t.Errorf("expected driver %q, got %q", DriverMongo, cfg.Store.Driver)
	}
	if cfg.Store.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %s", cfg.Store.Timeout)
	}
	if cfg.Store.IDBlockSize != 1 {
		t.Errorf("expected block size 1, got %d", cfg.Store.IDBlockSize)
	}
	if cfg.Mongo.Database != "HMS27" {
		t.Errorf("expected mongo database HMS27, got %q", cfg.Mongo.Database)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate, got %v", err)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("STORE_TIMEOUT", "250ms")
	t.Setenv("ID_BLOCK_SIZE", "20")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test,,")

	cfg := LoadConfig()

	if cfg.Server.Port != "8081" {
		t.Errorf("expected port 8081, got %q", cfg.Server.Port)
	}
	if cfg.Store.Driver != DriverPostgres {
		t.Errorf("expected driver %q, got %q", DriverPostgres, cfg.Store.Driver)
	}
	if cfg.Store.Timeout != 250*time.Millisecond {
		t.Errorf("expected timeout 250ms, got %s", cfg.Store.Timeout)
	}
	if cfg.Store.IDBlockSize != 20 {
		t.Errorf("expected block size 20, got %d", cfg.Store.IDBlockSize)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("unexpected origins: %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("STORE_TIMEOUT", "soon")
	t.Setenv("ID_BLOCK_SIZE", "0")

	cfg := LoadConfig()

	if cfg.Store.Timeout != 5*time.Second {
		t.Errorf("expected fallback timeout 5s, got %s", cfg.Store.Timeout)
	}
	if cfg.Store.IDBlockSize != 1 {
		t.Errorf("expected fallback block size 1, got %d", cfg.Store.IDBlockSize)
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := &Config{
		Store:  StoreConfig{Driver: "cassandra"},
		Server: ServerConfig{Port: "9000"},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown driver")
	}
}
