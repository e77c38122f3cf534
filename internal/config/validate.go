package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Spotify.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("spotify: %w", err))
	}
	if err := c.Output.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("output: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks SpotifyConfig for errors.
func (c *SpotifyConfig) Validate() error {
	switch c.Backend {
	case "", "rest", "sdk":
		// valid
	default:
		return fmt.Errorf("invalid backend: %s (must be rest or sdk)", c.Backend)
	}
	if c.Market != "" && len(c.Market) != 2 {
		return fmt.Errorf("invalid market: %s (must be an ISO 3166-1 alpha-2 code)", c.Market)
	}
	return nil
}

// Validate checks OutputConfig for errors.
func (c *OutputConfig) Validate() error {
	if c.Head < 0 {
		return errors.New("head must be non-negative")
	}
	switch c.PlotFormat {
	case "", "png", "svg", "pdf":
		// valid
	default:
		return fmt.Errorf("invalid plot_format: %s (must be png, svg, or pdf)", c.PlotFormat)
	}
	if c.PlotWidth < 0 || c.PlotHeight < 0 {
		return errors.New("plot_width and plot_height must be non-negative")
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	return nil
}
