package server

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"FinAdvisor/pkg/cache"
	"FinAdvisor/pkg/config"
)

type closeCounter struct {
	cache.Service
	closed int
}

func (c *closeCounter) Close() error {
	c.closed++
	return nil
}

func testConfig(t *testing.T, port int) *config.Config {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = port
	cfg.Server.ShutdownTimeout = time.Second
	return cfg
}

func TestRunContextFailsWhenPortIsTaken(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer busy.Close()

	c := &closeCounter{}
	app := New(testConfig(t, busy.Addr().(*net.TCPAddr).Port), nil, nil, c)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	began := time.Now()
	if err := app.RunContext(ctx); err == nil {
		t.Fatalf("expected bind error")
	}
	if time.Since(began) > 2*time.Second {
		t.Fatalf("bind error should be returned immediately")
	}
	if c.closed != 1 {
		t.Fatalf("cache should be closed on startup failure, closed=%d", c.closed)
	}
}

func TestRunContextStopsOnCancel(t *testing.T) {
	c := &closeCounter{}
	app := New(testConfig(t, 0), nil, nil, c)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := app.RunContext(ctx); err != nil {
		t.Fatalf("clean shutdown expected, got %v", err)
	}
	if c.closed != 1 {
		t.Fatalf("cache should be closed on shutdown, closed=%d", c.closed)
	}
}
