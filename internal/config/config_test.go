package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

// clearEnv blanks overrides that may leak in from the developer's shell.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SPOTSTAT_SPOTIFY_CLIENT_ID", "SPOTSTAT_SPOTIFY_CLIENT_SECRET",
		"SPOTIFY_ID", "SPOTIFY_SECRET", "SPOTSTAT_SPOTIFY_BACKEND",
		"SPOTSTAT_SPOTIFY_MARKET", "SPOTSTAT_PLAYLIST_ID", "SPOTSTAT_OUTPUT_DIR",
		"SPOTSTAT_OUTPUT_HEAD", "SPOTSTAT_LOG_LEVEL", "SPOTSTAT_LOG_FILE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadFrom(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[spotify]
client_id = "id_123"
client_secret = "secret_456"
backend = "sdk"

[playlist]
id = "37i9dQZF1DXcBWIGoYBM5M"

[output]
head = 10
plot_format = "svg"
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Spotify.ClientID != "id_123" {
		t.Errorf("ClientID = %q, want %q", cfg.Spotify.ClientID, "id_123")
	}
	if cfg.Spotify.Backend != "sdk" {
		t.Errorf("Backend = %q, want %q", cfg.Spotify.Backend, "sdk")
	}
	if cfg.Playlist.ID != "37i9dQZF1DXcBWIGoYBM5M" {
		t.Errorf("Playlist.ID = %q", cfg.Playlist.ID)
	}
	if cfg.Output.Head != 10 {
		t.Errorf("Output.Head = %d, want 10", cfg.Output.Head)
	}
	if cfg.Output.PlotFormat != "svg" {
		t.Errorf("Output.PlotFormat = %q, want svg", cfg.Output.PlotFormat)
	}
	// Defaults fill the rest
	if cfg.Output.PlotWidth != 6 || cfg.Output.PlotHeight != 4 {
		t.Errorf("plot size = %vx%v, want 6x4", cfg.Output.PlotWidth, cfg.Output.PlotHeight)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if !cfg.Spotify.HasCredentials() {
		t.Error("HasCredentials() = false, want true")
	}
}

func TestLoadFromDefaultsPlaylist(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Playlist.ID != Hot100PlaylistID {
		t.Errorf("Playlist.ID = %q, want %q", cfg.Playlist.ID, Hot100PlaylistID)
	}
	if cfg.Spotify.Backend != "rest" {
		t.Errorf("Backend = %q, want rest", cfg.Spotify.Backend)
	}
}

func TestLoadFromHead(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"unset", "", 5},
		{"explicit zero", "[output]\nhead = 0\n", 0},
		{"explicit value", "[output]\nhead = 20\n", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg, err := LoadFrom(writeConfig(t, tt.body))
			if err != nil {
				t.Fatalf("LoadFrom() error = %v", err)
			}
			if cfg.Output.Head != tt.want {
				t.Errorf("Output.Head = %d, want %d", cfg.Output.Head, tt.want)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestLoadFromInvalidTOML(t *testing.T) {
	path := writeConfig(t, "[spotify\nclient_id = ")
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() expected error for malformed TOML")
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SPOTSTAT_SPOTIFY_CLIENT_ID", "env_id")
	t.Setenv("SPOTIFY_SECRET", "legacy_secret")
	t.Setenv("SPOTSTAT_SPOTIFY_CLIENT_SECRET", "")
	t.Setenv("SPOTSTAT_PLAYLIST_ID", "env_playlist")
	t.Setenv("SPOTSTAT_OUTPUT_HEAD", "3")
	t.Setenv("SPOTSTAT_LOG_LEVEL", "debug")

	path := writeConfig(t, `
[spotify]
client_id = "file_id"
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Spotify.ClientID != "env_id" {
		t.Errorf("ClientID = %q, want env_id", cfg.Spotify.ClientID)
	}
	if cfg.Spotify.ClientSecret != "legacy_secret" {
		t.Errorf("ClientSecret = %q, want legacy_secret", cfg.Spotify.ClientSecret)
	}
	if cfg.Playlist.ID != "env_playlist" {
		t.Errorf("Playlist.ID = %q, want env_playlist", cfg.Playlist.ID)
	}
	if cfg.Output.Head != 3 {
		t.Errorf("Output.Head = %d, want 3", cfg.Output.Head)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("SPOTSTAT_TEST_DOTENV=from_file\n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv("SPOTSTAT_TEST_DOTENV", "")
	os.Unsetenv("SPOTSTAT_TEST_DOTENV")

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv() error = %v", err)
	}
	if got := os.Getenv("SPOTSTAT_TEST_DOTENV"); got != "from_file" {
		t.Errorf("SPOTSTAT_TEST_DOTENV = %q, want from_file", got)
	}

	// Missing file is not an error
	if err := loadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("loadDotEnv() missing file error = %v", err)
	}
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("SPOTSTAT_TEST_KEEP=from_file\n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv("SPOTSTAT_TEST_KEEP", "from_env")

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv() error = %v", err)
	}
	if got := os.Getenv("SPOTSTAT_TEST_KEEP"); got != "from_env" {
		t.Errorf("SPOTSTAT_TEST_KEEP = %q, want from_env", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "bad backend",
			mutate:  func(c *Config) { c.Spotify.Backend = "grpc" },
			wantErr: "invalid backend",
		},
		{
			name:    "bad market",
			mutate:  func(c *Config) { c.Spotify.Market = "USA" },
			wantErr: "invalid market",
		},
		{
			name:    "negative head",
			mutate:  func(c *Config) { c.Output.Head = -1 },
			wantErr: "head must be non-negative",
		},
		{
			name:    "bad plot format",
			mutate:  func(c *Config) { c.Output.PlotFormat = "gif" },
			wantErr: "invalid plot_format",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "trace" },
			wantErr: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Spotify.Backend = "nope"
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() error = nil, want joined errors")
	}
	msg := err.Error()
	if !strings.Contains(msg, "spotify:") || !strings.Contains(msg, "log:") {
		t.Errorf("Validate() = %q, want both sections reported", msg)
	}
}

func TestPathPrefersHomeRC(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	rc := filepath.Join(home, ".spotstatrc")
	if err := os.WriteFile(rc, []byte("[playlist]\nid = \"abc\"\n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if got := Path(); got != rc {
		t.Errorf("Path() = %q, want %q", got, rc)
	}
}

func TestDefaultPath(t *testing.T) {
	if got := DefaultPath(); !strings.HasSuffix(got, filepath.Join("spotstat", "config.toml")) {
		t.Errorf("DefaultPath() = %q", got)
	}
}
