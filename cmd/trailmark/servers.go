package main

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// ServersConfig holds all named server profiles and tracks which one is active.
type ServersConfig struct {
	Active  string            `toml:"active"`
	Servers map[string]Server `toml:"servers"`
}

// Server is a named server profile.
type Server struct {
	URL string `toml:"url"`
}

func serverConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".local", "state", "trailmark")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "servers.toml"), nil
}

func loadServersConfig() (ServersConfig, error) {
	path, err := serverConfigPath()
	if err != nil {
		return ServersConfig{}, err
	}
	var cfg ServersConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return ServersConfig{Servers: map[string]Server{}}, nil
		}
		return ServersConfig{}, err
	}
	if cfg.Servers == nil {
		cfg.Servers = map[string]Server{}
	}
	return cfg, nil
}

func saveServersConfig(cfg ServersConfig) error {
	path, err := serverConfigPath()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// Cached active server URL, loaded once per process.
var (
	serverOnce      sync.Once
	cachedServerURL string
)

func activeServerURL() string {
	serverOnce.Do(func() {
		cfg, err := loadServersConfig()
		if err != nil || cfg.Active == "" {
			return
		}
		s, ok := cfg.Servers[cfg.Active]
		if !ok {
			return
		}
		cachedServerURL = s.URL
	})
	return cachedServerURL
}
