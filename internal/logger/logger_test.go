package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"hospital-records-service/internal/config"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{
		Log:    config.LogConfig{Level: "debug", Format: "json"},
		Server: config.ServerConfig{GinMode: "debug"},
	}

	log := NewWithWriter(cfg, &buf)
	log.Debug().Int64("id", 7).Msg("patient created")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "patient created" {
		t.Errorf("expected message 'patient created', got %v", entry["message"])
	}
	if entry["service"] != "hospital-records-service" {
		t.Errorf("expected service field, got %v", entry["service"])
	}
}

func TestNewWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{
		Log:    config.LogConfig{Level: "warn", Format: "json"},
		Server: config.ServerConfig{GinMode: "release"},
	}

	log := NewWithWriter(cfg, &buf)
	log.Info().Msg("dropped")

	if buf.Len() != 0 {
		t.Errorf("expected info to be filtered at warn level, got %q", buf.String())
	}
}

func TestNewWithWriter_BadLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{
		Log:    config.LogConfig{Level: "loud", Format: "json"},
		Server: config.ServerConfig{GinMode: "release"},
	}

	log := NewWithWriter(cfg, &buf)
	log.Debug().Msg("dropped")
	log.Info().Msg("kept")

	if !bytes.Contains(buf.Bytes(), []byte("kept")) || bytes.Contains(buf.Bytes(), []byte("dropped")) {
		t.Errorf("expected info level, got %q", buf.String())
	}
}
