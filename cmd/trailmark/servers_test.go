package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	in := ServersConfig{
		Active: "prod",
		Servers: map[string]Server{
			"prod":  {URL: "https://analytics.example.com"},
			"local": {URL: "http://localhost:8000"},
		},
	}
	if err := saveServersConfig(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := loadServersConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Active != "prod" {
		t.Errorf("Active = %q, want %q", got.Active, "prod")
	}
	if got.Servers["prod"].URL != "https://analytics.example.com" {
		t.Errorf("prod server = %+v, wrong values", got.Servers["prod"])
	}
	if got.Servers == nil {
		t.Error("Servers map must not be nil after load")
	}
}

func TestLoadServersConfig_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadServersConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Active != "" || len(cfg.Servers) != 0 {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestSaveServersConfig_Permissions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := saveServersConfig(ServersConfig{Servers: map[string]Server{}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	path, _ := serverConfigPath()
	check := func(p string, want os.FileMode) {
		t.Helper()
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("stat %s: %v", p, err)
		}
		if got := info.Mode().Perm(); got != want {
			t.Errorf("%s permissions = %04o, want %04o", p, got, want)
		}
	}
	check(path, 0o600)
	check(filepath.Dir(path), 0o700)
}

func TestServerLifecycle(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	mustRun := func(fn func() error) {
		t.Helper()
		if err := fn(); err != nil {
			t.Fatal(err)
		}
	}

	mustRun(func() error { return serverAddCmd.RunE(serverAddCmd, []string{"local", "http://localhost:8000"}) })
	mustRun(func() error { return serverAddCmd.RunE(serverAddCmd, []string{"local", "http://localhost:8000"}) }) // upsert

	mustRun(func() error { return serverUseCmd.RunE(serverUseCmd, []string{"local"}) })

	cfg, _ := loadServersConfig()
	if cfg.Active != "local" {
		t.Fatalf("Active = %q, want %q", cfg.Active, "local")
	}

	// list should mark active with *
	var buf bytes.Buffer
	serverListCmd.SetOut(&buf)
	mustRun(func() error { return serverListCmd.RunE(serverListCmd, nil) })
	if !strings.Contains(buf.String(), "* local") {
		t.Errorf("list missing active marker; got:\n%s", buf.String())
	}

	// show (active) should include name, URL, and (active)
	buf.Reset()
	serverShowCmd.SetOut(&buf)
	mustRun(func() error { return serverShowCmd.RunE(serverShowCmd, nil) })
	out := buf.String()
	if !strings.Contains(out, "local") || !strings.Contains(out, "http://localhost:8000") || !strings.Contains(out, "(active)") {
		t.Errorf("show missing expected content; got:\n%s", out)
	}

	// show by explicit name
	buf.Reset()
	mustRun(func() error { return serverShowCmd.RunE(serverShowCmd, []string{"local"}) })
	if !strings.Contains(buf.String(), "http://localhost:8000") {
		t.Errorf("show by name missing URL; got:\n%s", buf.String())
	}

	// remove should clear active
	mustRun(func() error { return serverRemoveCmd.RunE(serverRemoveCmd, []string{"local"}) })
	cfg, _ = loadServersConfig()
	if _, ok := cfg.Servers["local"]; ok {
		t.Error("server 'local' should be gone")
	}
	if cfg.Active != "" {
		t.Errorf("Active should be cleared, got %q", cfg.Active)
	}
}

func TestServerErrorCases(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"use unknown", func() error { return serverUseCmd.RunE(serverUseCmd, []string{"ghost"}) }},
		{"remove unknown", func() error { return serverRemoveCmd.RunE(serverRemoveCmd, []string{"ghost"}) }},
		{"show no active", func() error { return serverShowCmd.RunE(serverShowCmd, nil) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			if err := tc.fn(); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}
