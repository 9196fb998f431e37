package database

import (
	"context"
	"io"
	"testing"

	"hospital-records-service/internal/config"

	"github.com/rs/zerolog"
)

func sqlConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			Host:     "db.internal",
			Port:     "5432",
			User:     "hms",
			Password: "secret",
			Database: "records",
			SSLMode:  "require",
		},
	}
}

func TestMySQLDSN(t *testing.T) {
	cfg := sqlConfig()
	cfg.Database.Port = "3306"

	want := "hms:secret@tcp(db.internal:3306)/records?charset=utf8mb4&parseTime=True&loc=UTC"
	if got := MySQLDSN(cfg); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPostgresDSN(t *testing.T) {
	want := "host=db.internal port=5432 user=hms password=secret dbname=records sslmode=require TimeZone=UTC"
	if got := PostgresDSN(sqlConfig()); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestConnect_Memory(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.DriverMemory}}

	store, err := Connect(context.Background(), cfg, zerolog.New(io.Discard))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if store.Patients == nil || store.Doctors == nil || store.Sequences == nil {
		t.Error("expected memory store to wire every repository")
	}
	if err := store.Ping(context.Background()); err != nil {
		t.Errorf("expected memory ping to succeed, got %v", err)
	}
}

func TestConnect_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "sqlite"}}

	if _, err := Connect(context.Background(), cfg, zerolog.New(io.Discard)); err == nil {
		t.Error("expected error for unknown driver")
	}
}
