package config

// Config is the root configuration structure.
type Config struct {
	Spotify  SpotifyConfig  `toml:"spotify"`
	Playlist PlaylistConfig `toml:"playlist"`
	Output   OutputConfig   `toml:"output"`
	Log      LogConfig      `toml:"log"`
}

// SpotifyConfig holds Spotify API settings.
type SpotifyConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	Backend      string `toml:"backend"` // rest or sdk
	Market       string `toml:"market"`
}

// PlaylistConfig holds the playlist to analyze when none is given.
type PlaylistConfig struct {
	ID string `toml:"id"`
}

// OutputConfig holds table, chart and export settings.
type OutputConfig struct {
	Dir        string  `toml:"dir"`
	Head       int     `toml:"head"`         // rows shown by analyze, 0 hides the table
	PlotFormat string  `toml:"plot_format"`
	PlotWidth  float64 `toml:"plot_width"`  // inches
	PlotHeight float64 `toml:"plot_height"` // inches
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// HasCredentials reports whether both client credentials are set.
func (c *SpotifyConfig) HasCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}
