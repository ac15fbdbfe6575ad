package config

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_DIR": "/tmp/tedcar-test",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "4200" {
		t.Fatalf("expected port 4200, got %s", cfg.Port)
	}
	if cfg.Backend.URL != "http://localhost:8000" || cfg.Backend.Timeout != 15*time.Second {
		t.Fatalf("unexpected backend config: %+v", cfg.Backend)
	}
	if cfg.Session.Driver != DriverFile || cfg.Session.KeyPrefix != "tedcar" {
		t.Fatalf("unexpected session config: %+v", cfg.Session)
	}
	if cfg.Import.Workers != 4 {
		t.Fatalf("expected 4 import workers, got %d", cfg.Import.Workers)
	}
	if cfg.Production() {
		t.Fatalf("default env should not be production")
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":             "production",
		"BACKEND_URL":     "https://api.tedcar.example",
		"BACKEND_TIMEOUT": "2s",
		"SESSION_DRIVER":  " Redis ",
		"SESSION_DIR":     "/tmp/tedcar-test",
		"REDIS_ADDR":      "cache:6379",
		"REDIS_DB":        "3",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Production() {
		t.Fatalf("expected production")
	}
	if cfg.Backend.URL != "https://api.tedcar.example" || cfg.Backend.Timeout != 2*time.Second {
		t.Fatalf("unexpected backend config: %+v", cfg.Backend)
	}
	if cfg.Session.Driver != DriverRedis {
		t.Fatalf("expected normalized redis driver, got %q", cfg.Session.Driver)
	}
	if cfg.Redis.Addr != "cache:6379" || cfg.Redis.DB != 3 {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
}

func TestLoad_UnknownDriver(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_DRIVER": "sqlite",
	}))
	if err == nil || !strings.Contains(err.Error(), "SESSION_DRIVER") {
		t.Fatalf("expected driver error, got %v", err)
	}
}

func TestLoad_DefaultSessionDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Session.Dir != filepath.Join(home, ".tedcar") {
		t.Fatalf("unexpected session dir %s", cfg.Session.Dir)
	}
}
