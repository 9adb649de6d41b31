package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "config.yaml", `fleet:
  - type: "car"
    conf:
      id: 1
      name: "Toyota Avanza"
      daily_rate: 200
      passengers: 7
  - type: "electric"
    conf:
      id: 3
      name: "Tesla Model 3"
      daily_rate: 350
      battery_kwh: 75
      charge_kwh: 5
audit:
  backend: "jsonl"
  path: "audit.jsonl"
metrics:
  prometheus_addr: ":9100"
  sinks:
    - type: "nop"
telemetry:
  enabled: false
  broker: "tcp://localhost:1883"
  client_id: "rental"
api:
  enabled: true
  addr: ":8081"
  token: "secret"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"fleet_len", len(cfg.Fleet), 2},
		{"fleet_type", cfg.Fleet[0].Type, "car"},
		{"fleet_name", cfg.Fleet[0].Conf["name"], "Toyota Avanza"},
		{"audit_backend", cfg.Audit.Backend, "jsonl"},
		{"audit_path", cfg.Audit.Path, "audit.jsonl"},
		{"metrics_sink", len(cfg.Metrics.Sinks) == 1 && cfg.Metrics.Sinks[0].Type == "nop", true},
		{"prometheus_addr", cfg.Metrics.PrometheusAddr, ":9100"},
		{"telemetry_broker", cfg.Telemetry.Broker, "tcp://localhost:1883"},
		{"api_enabled", cfg.API.Enabled, true},
		{"api_addr", cfg.API.Addr, ":8081"},
		{"api_token", cfg.API.Token, "secret"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
  "audit": {"backend": "sqlite", "path": "audit.db"},
  "api": {"token": "tok"}
}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Audit.Backend != "sqlite" || cfg.Audit.Path != "audit.db" {
		t.Fatalf("audit section: %+v", cfg.Audit)
	}
	if cfg.API.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.API.Addr)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "config.yaml", "api:\n  enabled: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Audit.Backend != "text" || cfg.Audit.Path != "rental_log.txt" {
		t.Fatalf("audit defaults: %+v", cfg.Audit)
	}
	if cfg.API.Addr != ":8080" {
		t.Fatalf("api default addr: %q", cfg.API.Addr)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "config.yaml", "audit:\n  backend: \"jsonl\"\n  path: \"audit.jsonl\"\n")
	t.Setenv("RENTAL_AUDIT__BACKEND", "sqlite")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Audit.Backend != "sqlite" {
		t.Fatalf("env override lost: %q", cfg.Audit.Backend)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeConfig(t, "config.toml", "x = 1\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestLoadBadBackend(t *testing.T) {
	path := writeConfig(t, "config.yaml", "audit:\n  backend: \"bogus\"\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected backend validation error")
	}
}

func TestLoadTelemetryValidation(t *testing.T) {
	path := writeConfig(t, "config.yaml", "telemetry:\n  enabled: true\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected telemetry validation error")
	}
}
