package config

import (
	"slices"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE_BACKEND", "TRACING_EXPORTER", "SEED_ON_START", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8081" {
		t.Errorf("Port: got %q, want 8081", cfg.Port)
	}
	if cfg.StoreBackend != BackendPostgres {
		t.Errorf("StoreBackend: got %q, want %q", cfg.StoreBackend, BackendPostgres)
	}
	if cfg.Tracing.Exporter != ExporterNone {
		t.Errorf("Tracing.Exporter: got %q, want %q", cfg.Tracing.Exporter, ExporterNone)
	}
	if !cfg.SeedOnStart {
		t.Error("SeedOnStart should default to true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("SEED_ON_START", "false")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg := Load()
	if cfg.StoreBackend != BackendRedis {
		t.Errorf("StoreBackend: got %q, want %q", cfg.StoreBackend, BackendRedis)
	}
	if cfg.SeedOnStart {
		t.Error("SeedOnStart: got true, want false")
	}
	want := []string{"https://a.example", "https://b.example"}
	if !slices.Equal(cfg.AllowedOrigins, want) {
		t.Errorf("AllowedOrigins: got %v, want %v", cfg.AllowedOrigins, want)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:         "8081",
			StoreBackend: BackendPostgres,
			DatabaseURL:  "postgres://localhost/inkoop",
			Tracing:      TracingConfig{Exporter: ExporterNone},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown backend", mutate: func(c *Config) { c.StoreBackend = "sqlite" }, wantErr: true},
		{name: "redis without url", mutate: func(c *Config) { c.StoreBackend = BackendRedis }, wantErr: true},
		{name: "redis with url", mutate: func(c *Config) { c.StoreBackend = BackendRedis; c.RedisURL = "redis://x" }},
		{name: "unknown exporter", mutate: func(c *Config) { c.Tracing.Exporter = "jaeger" }, wantErr: true},
		{name: "otlp without endpoint", mutate: func(c *Config) { c.Tracing.Exporter = ExporterOTLP }, wantErr: true},
		{name: "empty port", mutate: func(c *Config) { c.Port = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsProduction(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"production", true},
		{"development", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := (&Config{Env: tt.env}).IsProduction(); got != tt.want {
			t.Errorf("IsProduction(%q): got %v, want %v", tt.env, got, tt.want)
		}
	}
}
