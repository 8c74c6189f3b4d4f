package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig with missing file: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Fatalf("default port: got=%q want=%q", cfg.Server.Port, "8000")
	}
	if cfg.Storage.TablePath != "courses.json" || cfg.Storage.UploadDir != "pdf_files" {
		t.Fatalf("default storage: got=%+v", cfg.Storage)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Fatalf("default origins: got=%v", cfg.CORS.AllowedOrigins)
	}
	if cfg.ReadTimeout() != 10*time.Second || cfg.ShutdownTimeout() != 10*time.Second {
		t.Fatalf("default timeouts: read=%v shutdown=%v", cfg.ReadTimeout(), cfg.ShutdownTimeout())
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: "9100"
  mode: production
  read_timeout: 5s
storage:
  table_path: /var/lib/cartable/courses.json
  upload_dir: /var/lib/cartable/pdf_files
logging:
  level: debug
  format: text
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "9100" || cfg.Server.Mode != "production" {
		t.Fatalf("server config: got=%+v", cfg.Server)
	}
	if cfg.ReadTimeout() != 5*time.Second {
		t.Fatalf("read timeout: got=%v want=5s", cfg.ReadTimeout())
	}
	if cfg.Storage.TablePath != "/var/lib/cartable/courses.json" {
		t.Fatalf("table path: got=%q", cfg.Storage.TablePath)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Server.WriteTimeout != "10s" {
		t.Fatalf("write timeout default: got=%q want=%q", cfg.Server.WriteTimeout, "10s")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9200")
	t.Setenv("STORAGE_UPLOAD_DIR", "/tmp/uploads")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "9200" {
		t.Fatalf("env port override: got=%q want=%q", cfg.Server.Port, "9200")
	}
	if cfg.Storage.UploadDir != "/tmp/uploads" {
		t.Fatalf("env upload dir override: got=%q", cfg.Storage.UploadDir)
	}
	want := []string{"http://a.example", "http://b.example"}
	if len(cfg.CORS.AllowedOrigins) != 2 ||
		cfg.CORS.AllowedOrigins[0] != want[0] || cfg.CORS.AllowedOrigins[1] != want[1] {
		t.Fatalf("env origins override: got=%v want=%v", cfg.CORS.AllowedOrigins, want)
	}
}

func TestInvalidDurationRejected(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "not-a-duration")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("LoadConfig with bad duration: got nil error, want validation failure")
	}
}

func TestEmptyTablePathRejected(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("storage:\n  table_path: \"\"\n"), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Fatal("LoadConfig with empty table path: got nil error, want validation failure")
	}
}
