package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Server.Port != 8080 {
		t.Fatalf("unexpected port %d", c.Server.Port)
	}
	if c.Server.ReadTimeout != 10*time.Second {
		t.Fatalf("unexpected read timeout %v", c.Server.ReadTimeout)
	}
	if c.Cache.Backend != "memory" || c.Cache.MaxEntries != 256 {
		t.Fatalf("unexpected cache config %+v", c.Cache)
	}
	if len(c.Dashboard.IndianTickers) != 6 || c.Dashboard.IndianTickers[0] != "RELIANCE.NS" {
		t.Fatalf("unexpected indian tickers %v", c.Dashboard.IndianTickers)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
environment: production
server:
  port: 9090
  read_timeout: 3s
cache:
  backend: layered
dashboard:
  indian_tickers: ["WIPRO.NS"]
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Environment != "production" || c.Server.Port != 9090 {
		t.Fatalf("yaml not applied: %+v", c.Server)
	}
	if c.Server.ReadTimeout != 3*time.Second {
		t.Fatalf("unexpected read timeout %v", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout != 30*time.Second {
		t.Fatalf("default lost: %v", c.Server.WriteTimeout)
	}
	if c.Cache.Backend != "layered" {
		t.Fatalf("unexpected backend %s", c.Cache.Backend)
	}
	if len(c.Dashboard.IndianTickers) != 1 || c.Dashboard.IndianTickers[0] != "WIPRO.NS" {
		t.Fatalf("unexpected tickers %v", c.Dashboard.IndianTickers)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("cache:\n  backend: disk\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("FINADVISOR_PORT", "7000")
	t.Setenv("INDIAN_TICKERS", "TCS.NS,INFY.NS")
	c, err := LoadWithEnv(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Server.Port != 7000 {
		t.Fatalf("unexpected port %d", c.Server.Port)
	}
	if len(c.Dashboard.IndianTickers) != 2 {
		t.Fatalf("unexpected tickers %v", c.Dashboard.IndianTickers)
	}
}

func TestLayeredBackendRequiresRedisTTL(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Cache.Redis.TTL != 24*time.Hour {
		t.Fatalf("unexpected redis ttl %v", c.Cache.Redis.TTL)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "cache:\n  backend: layered\n  redis:\n    ttl: 0s\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for entries without expiry")
	}
}
