package config

// Hot100PlaylistID is the Billboard Hot 100 mirror playlist.
const Hot100PlaylistID = "6UeSakyzhiEt4NB3UAd6NQ"

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Spotify: SpotifyConfig{
			Backend: "rest",
		},
		Playlist: PlaylistConfig{
			ID: Hot100PlaylistID,
		},
		Output: OutputConfig{
			Dir:        ".",
			Head:       5,
			PlotFormat: "png",
			PlotWidth:  6,
			PlotHeight: 4,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// ApplyDefaults fills in empty values with sensible defaults. Output.Head
// is left alone since zero is a valid row count.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Spotify
	if c.Spotify.Backend == "" {
		c.Spotify.Backend = d.Spotify.Backend
	}

	// Playlist
	if c.Playlist.ID == "" {
		c.Playlist.ID = d.Playlist.ID
	}

	// Output
	if c.Output.Dir == "" {
		c.Output.Dir = d.Output.Dir
	}
	if c.Output.PlotFormat == "" {
		c.Output.PlotFormat = d.Output.PlotFormat
	}
	if c.Output.PlotWidth == 0 {
		c.Output.PlotWidth = d.Output.PlotWidth
	}
	if c.Output.PlotHeight == 0 {
		c.Output.PlotHeight = d.Output.PlotHeight
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
