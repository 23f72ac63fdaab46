package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeFile(t, "mechcfg.yaml", `
parser:
  max_file_size: 1048576
logging:
  level: "debug"
  format: "json"
metrics:
  enabled: false
history:
  enabled: true
  driver: "sqlite3"
  path: "./runs.db"
  retention_days: 14
cache:
  ttl: "30s"
watch:
  debounce: "1s"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Parser.MaxFileSize != 1048576 {
		t.Errorf("expected max file size 1048576, got %d", cfg.Parser.MaxFileSize)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("expected debug/json logging, got %s/%s", cfg.Logging.Level, cfg.Logging.Format)
	}
	if cfg.Metrics.Enabled {
		t.Error("expected metrics to be disabled")
	}
	if !cfg.History.Enabled || cfg.History.Driver != "sqlite3" || cfg.History.Path != "./runs.db" {
		t.Errorf("unexpected history config: %+v", cfg.History)
	}
	if cfg.History.RetentionDays != 14 {
		t.Errorf("expected retention 14 days, got %d", cfg.History.RetentionDays)
	}
	if cfg.Cache.TTL != 30*time.Second {
		t.Errorf("expected cache TTL %v, got %v", 30*time.Second, cfg.Cache.TTL)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("expected debounce %v, got %v", time.Second, cfg.Watch.Debounce)
	}

	// Omitted sections keep their defaults.
	if !cfg.Cache.Enabled {
		t.Error("expected cache to stay enabled")
	}
	if cfg.Tracing.Exporter != DefaultTracingExporter {
		t.Errorf("expected exporter %q, got %q", DefaultTracingExporter, cfg.Tracing.Exporter)
	}
}

func TestLoadConfig_TOML(t *testing.T) {
	path := writeFile(t, "mechcfg.toml", `
[logging]
level = "warn"
format = "console"

[tracing]
enabled = true
exporter = "stdout"
sampler = "ratio"
sample_ratio = 0.5

[history]
driver = "memory"
max_records = 100

[git]
ref = "release"
depth = 0
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Errorf("expected warn/console logging, got %s/%s", cfg.Logging.Level, cfg.Logging.Format)
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.Exporter != "stdout" {
		t.Errorf("unexpected tracing config: %+v", cfg.Tracing)
	}
	if cfg.Tracing.Sampler != "ratio" || cfg.Tracing.SampleRatio != 0.5 {
		t.Errorf("expected ratio sampler at 0.5, got %s at %v", cfg.Tracing.Sampler, cfg.Tracing.SampleRatio)
	}
	if cfg.History.Driver != "memory" || cfg.History.MaxRecords != 100 {
		t.Errorf("unexpected history config: %+v", cfg.History)
	}
	if cfg.Git.Ref != "release" {
		t.Errorf("expected git ref %q, got %q", "release", cfg.Git.Ref)
	}
	// A zero depth in the file is indistinguishable from an omitted one.
	if cfg.Git.Depth != DefaultGitDepth {
		t.Errorf("expected git depth %d, got %d", DefaultGitDepth, cfg.Git.Depth)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			file:    "bad.yaml",
			content: "logging: [unclosed",
			wantErr: "failed to parse",
		},
		{
			name:    "malformed toml",
			file:    "bad.toml",
			content: "[logging\nlevel = ",
			wantErr: "failed to parse",
		},
		{
			name:    "invalid value",
			file:    "invalid.yaml",
			content: "logging:\n  level: verbose\n",
			wantErr: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	path := writeFile(t, "mechcfg.yaml", `
logging:
  level: "info"
history:
  driver: "sqlite"
`)

	t.Setenv("MECHCFG_LOGGING_LEVEL", "error")
	t.Setenv("MECHCFG_HISTORY_DRIVER", "memory")
	t.Setenv("MECHCFG_HISTORY_MAX_RECORDS", "250")
	t.Setenv("MECHCFG_CACHE_TTL", "2m")
	t.Setenv("MECHCFG_TRACING_SAMPLE_RATIO", "0.1")
	t.Setenv("MECHCFG_METRICS_ENABLED", "false")
	t.Setenv("MECHCFG_GIT_TOKEN", "secret-token")
	t.Setenv("MECHCFG_GIT_DEPTH", "not-a-number")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Level != "error" {
		t.Errorf("expected logging level %q, got %q", "error", cfg.Logging.Level)
	}
	if cfg.History.Driver != "memory" {
		t.Errorf("expected history driver %q, got %q", "memory", cfg.History.Driver)
	}
	if cfg.History.MaxRecords != 250 {
		t.Errorf("expected max records 250, got %d", cfg.History.MaxRecords)
	}
	if cfg.Cache.TTL != 2*time.Minute {
		t.Errorf("expected cache TTL %v, got %v", 2*time.Minute, cfg.Cache.TTL)
	}
	if cfg.Tracing.SampleRatio != 0.1 {
		t.Errorf("expected sample ratio 0.1, got %v", cfg.Tracing.SampleRatio)
	}
	if cfg.Metrics.Enabled {
		t.Error("expected metrics to be disabled by environment")
	}
	if cfg.Git.Token != "secret-token" {
		t.Errorf("expected git token from environment, got %q", cfg.Git.Token)
	}
	if cfg.Git.Depth != DefaultGitDepth {
		t.Errorf("expected unparsable depth to be ignored, got %d", cfg.Git.Depth)
	}
}

func TestLoadConfigWithEnvOverrides_NoFile(t *testing.T) {
	t.Setenv("MECHCFG_LOGGING_FORMAT", "json")

	cfg, err := LoadConfigWithEnvOverrides("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected logging format %q, got %q", "json", cfg.Logging.Format)
	}
	if cfg.Parser.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("expected default max file size, got %d", cfg.Parser.MaxFileSize)
	}
}

func TestLoadConfigWithEnvOverrides_InvalidOverride(t *testing.T) {
	t.Setenv("MECHCFG_TRACING_EXPORTER", "jaeger")

	_, err := LoadConfigWithEnvOverrides("")
	if err == nil {
		t.Fatal("expected validation error after override")
	}
	if !strings.Contains(err.Error(), "after environment overrides") {
		t.Errorf("expected override validation error, got %v", err)
	}
}
