package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultServerURL is used when no config file sets server_url.
const DefaultServerURL = "http://localhost:3000"

type Config struct {
	ServerURL string `koanf:"server_url"` // song share base URL
	SongsPath string `koanf:"songs_path"` // listing path under the base URL
	Icons     string `koanf:"icons"`      // "nerd", "unicode", or "none"
	CacheDir  string `koanf:"cache_dir"`  // downloaded-track cache, empty = xdg default

	// Spotlight cards shown beside the library. Each card targets an
	// artist section, explicitly via `artist` or implicitly via its
	// title or position.
	Cards []CardConfig `koanf:"cards"`
}

// CardConfig is one spotlight card.
type CardConfig struct {
	Title  string `koanf:"title"`
	Artist string `koanf:"artist"` // optional explicit artist tag
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		ServerURL: DefaultServerURL,
		SongsPath: "songs",
		Icons:     "unicode",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.ServerURL = strings.TrimSuffix(cfg.ServerURL, "/")
	cfg.SongsPath = strings.Trim(cfg.SongsPath, "/")

	if cfg.CacheDir != "" {
		cfg.CacheDir = expandPath(cfg.CacheDir)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/strum/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "strum", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
