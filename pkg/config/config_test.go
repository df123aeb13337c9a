package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Clear any env vars that might be set
	os.Unsetenv("API_PORT")
	os.Unsetenv("STORAGE_DRIVER")
	os.Unsetenv("RABBITMQ_URL")
	os.Unsetenv("REORDER_BUFFER")
	os.Unsetenv("REORDER_THRESHOLD")
	os.Unsetenv("COMPLETION_GRACE")
	os.Unsetenv("SEED_DATA")

	cfg := Load()

	if cfg.APIPort != "8080" {
		t.Errorf("unexpected APIPort: %s", cfg.APIPort)
	}
	if cfg.StorageDriver != "memory" {
		t.Errorf("unexpected StorageDriver: %s", cfg.StorageDriver)
	}
	if cfg.RabbitMQURL != "" {
		t.Errorf("expected relay disabled by default, got %s", cfg.RabbitMQURL)
	}
	if cfg.ReorderBuffer != 10 {
		t.Errorf("unexpected ReorderBuffer: %d", cfg.ReorderBuffer)
	}
	if cfg.ReorderThreshold != 0.2 {
		t.Errorf("unexpected ReorderThreshold: %g", cfg.ReorderThreshold)
	}
	if cfg.CompletionGrace != 168*time.Hour {
		t.Errorf("unexpected CompletionGrace: %s", cfg.CompletionGrace)
	}
	if !cfg.SeedData {
		t.Error("expected SeedData enabled by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("API_PORT", "9090")
	os.Setenv("STORAGE_DRIVER", "postgres")
	os.Setenv("REORDER_BUFFER", "25")
	os.Setenv("REORDER_THRESHOLD", "0.5")
	os.Setenv("COMPLETION_GRACE", "48h")
	os.Setenv("SEED_DATA", "false")
	defer func() {
		os.Unsetenv("API_PORT")
		os.Unsetenv("STORAGE_DRIVER")
		os.Unsetenv("REORDER_BUFFER")
		os.Unsetenv("REORDER_THRESHOLD")
		os.Unsetenv("COMPLETION_GRACE")
		os.Unsetenv("SEED_DATA")
	}()

	cfg := Load()

	if cfg.APIPort != "9090" {
		t.Errorf("unexpected APIPort: %s", cfg.APIPort)
	}
	if cfg.StorageDriver != "postgres" {
		t.Errorf("unexpected StorageDriver: %s", cfg.StorageDriver)
	}
	if cfg.ReorderBuffer != 25 {
		t.Errorf("unexpected ReorderBuffer: %d", cfg.ReorderBuffer)
	}
	if cfg.ReorderThreshold != 0.5 {
		t.Errorf("unexpected ReorderThreshold: %g", cfg.ReorderThreshold)
	}
	if cfg.CompletionGrace != 48*time.Hour {
		t.Errorf("unexpected CompletionGrace: %s", cfg.CompletionGrace)
	}
	if cfg.SeedData {
		t.Error("expected SeedData disabled")
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	os.Setenv("REORDER_BUFFER", "lots")
	os.Setenv("REORDER_THRESHOLD", "tiny")
	os.Setenv("COMPLETION_GRACE", "a week")
	defer func() {
		os.Unsetenv("REORDER_BUFFER")
		os.Unsetenv("REORDER_THRESHOLD")
		os.Unsetenv("COMPLETION_GRACE")
	}()

	cfg := Load()

	if cfg.ReorderBuffer != 10 {
		t.Errorf("expected fallback buffer 10, got %d", cfg.ReorderBuffer)
	}
	if cfg.ReorderThreshold != 0.2 {
		t.Errorf("expected fallback threshold 0.2, got %g", cfg.ReorderThreshold)
	}
	if cfg.CompletionGrace != 168*time.Hour {
		t.Errorf("expected fallback grace 168h, got %s", cfg.CompletionGrace)
	}
}

func TestGetEnvFallback(t *testing.T) {
	os.Unsetenv("NONEXISTENT_KEY")
	val := getEnv("NONEXISTENT_KEY", "fallback-value")
	if val != "fallback-value" {
		t.Errorf("expected fallback-value, got %s", val)
	}
}
