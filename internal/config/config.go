package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

const appName = "spotstat"

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.spotstatrc, $XDG_CONFIG_HOME/spotstat/config.toml
// Keys present in the file override the defaults, zero values included.
func Load() (*Config, error) {
	cfg := Default()

	path := findConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultPath returns the path `config init` writes to.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

// Path returns the config file in use, or DefaultPath when none exists.
func Path() string {
	if p := findConfigFile(); p != "" {
		return p
	}
	return DefaultPath()
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".spotstatrc"))
	}
	paths = append(paths, DefaultPath())

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// loadDotEnv loads a .env file if present. Variables already set in the
// environment are left alone.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return godotenv.Load(path)
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Spotify
	if v := firstEnv("SPOTSTAT_SPOTIFY_CLIENT_ID", "SPOTIFY_ID"); v != "" {
		cfg.Spotify.ClientID = v
	}
	if v := firstEnv("SPOTSTAT_SPOTIFY_CLIENT_SECRET", "SPOTIFY_SECRET"); v != "" {
		cfg.Spotify.ClientSecret = v
	}
	if v := os.Getenv("SPOTSTAT_SPOTIFY_BACKEND"); v != "" {
		cfg.Spotify.Backend = v
	}
	if v := os.Getenv("SPOTSTAT_SPOTIFY_MARKET"); v != "" {
		cfg.Spotify.Market = v
	}

	// Playlist
	if v := os.Getenv("SPOTSTAT_PLAYLIST_ID"); v != "" {
		cfg.Playlist.ID = v
	}

	// Output
	if v := os.Getenv("SPOTSTAT_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("SPOTSTAT_OUTPUT_HEAD"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Output.Head = i
		}
	}

	// Log
	if v := os.Getenv("SPOTSTAT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SPOTSTAT_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
