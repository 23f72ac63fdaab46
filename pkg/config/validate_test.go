package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			modify: func(*Config) {},
		},
		{
			name:    "zero max file size",
			modify:  func(c *Config) { c.Parser.MaxFileSize = 0 },
			wantErr: "parser.max_file_size",
		},
		{
			name:    "negative context lines",
			modify:  func(c *Config) { c.Parser.ContextLines = -1 },
			wantErr: "parser.context_lines",
		},
		{
			name:    "unknown logging level",
			modify:  func(c *Config) { c.Logging.Level = "trace" },
			wantErr: "logging.level",
		},
		{
			name:    "unknown logging format",
			modify:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name:    "metrics path without slash",
			modify:  func(c *Config) { c.Metrics.Path = "metrics" },
			wantErr: "metrics.path",
		},
		{
			name: "metrics disabled ignores path",
			modify: func(c *Config) {
				c.Metrics.Enabled = false
				c.Metrics.Path = "metrics"
			},
		},
		{
			name:    "unknown exporter",
			modify:  func(c *Config) { c.Tracing.Exporter = "zipkin" },
			wantErr: "tracing.exporter",
		},
		{
			name: "otlp without endpoint",
			modify: func(c *Config) {
				c.Tracing.Enabled = true
				c.Tracing.Endpoint = ""
			},
			wantErr: "tracing.endpoint",
		},
		{
			name: "stdout without endpoint",
			modify: func(c *Config) {
				c.Tracing.Enabled = true
				c.Tracing.Exporter = "stdout"
				c.Tracing.Endpoint = ""
			},
		},
		{
			name:    "unknown sampler",
			modify:  func(c *Config) { c.Tracing.Sampler = "sometimes" },
			wantErr: "tracing.sampler",
		},
		{
			name:    "sample ratio above one",
			modify:  func(c *Config) { c.Tracing.SampleRatio = 1.5 },
			wantErr: "tracing.sample_ratio",
		},
		{
			name:    "unknown history driver",
			modify:  func(c *Config) { c.History.Driver = "postgres" },
			wantErr: "history.driver",
		},
		{
			name:    "sqlite without path",
			modify:  func(c *Config) { c.History.Path = "" },
			wantErr: "history.path",
		},
		{
			name: "memory without path",
			modify: func(c *Config) {
				c.History.Driver = "memory"
				c.History.Path = ""
			},
		},
		{
			name:    "negative retention",
			modify:  func(c *Config) { c.History.RetentionDays = -1 },
			wantErr: "history.retention_days",
		},
		{
			name:    "negative max records",
			modify:  func(c *Config) { c.History.MaxRecords = -10 },
			wantErr: "history.max_records",
		},
		{
			name:    "bad prune schedule",
			modify:  func(c *Config) { c.History.PruneSchedule = "every day" },
			wantErr: "history.prune_schedule",
		},
		{
			name:   "descriptor prune schedule",
			modify: func(c *Config) { c.History.PruneSchedule = "@weekly" },
		},
		{
			name:    "zero cache ttl",
			modify:  func(c *Config) { c.Cache.TTL = 0 },
			wantErr: "cache.ttl",
		},
		{
			name: "disabled cache ignores ttl",
			modify: func(c *Config) {
				c.Cache.Enabled = false
				c.Cache.TTL = 0
			},
		},
		{
			name:    "negative debounce",
			modify:  func(c *Config) { c.Watch.Debounce = -time.Second },
			wantErr: "watch.debounce",
		},
		{
			name:    "negative git depth",
			modify:  func(c *Config) { c.Git.Depth = -1 },
			wantErr: "git.depth",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error mentioning %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	cfg.Tracing.Sampler = "maybe"
	cfg.Git.Depth = -2

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(verr.Errors) != 3 {
		t.Errorf("expected 3 field errors, got %d: %v", len(verr.Errors), verr.Errors)
	}
	if !strings.Contains(err.Error(), "with 3 errors") {
		t.Errorf("expected summary of 3 errors, got %q", err.Error())
	}
}

func TestFieldError_Error(t *testing.T) {
	err := FieldError{Field: "logging.level", Message: "logging level is required"}
	want := "logging.level: logging level is required"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestValidationError_Single(t *testing.T) {
	err := ValidationError{Errors: []FieldError{{Field: "git.depth", Message: "depth must not be negative"}}}
	want := "configuration validation failed: git.depth: depth must not be negative"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
