package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/yvinc/203-proj1/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Commands for viewing and editing spotstat configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration values. The client secret is masked.`,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration file path",
	RunE:  runConfigPath,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit configuration file",
	Long:  `Open the configuration file in your default editor.`,
	RunE:  runConfigEdit,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long:  `Create a new configuration file with default values.`,
	RunE:  runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Supported keys:
  spotify.client_id      Spotify client ID
  spotify.client_secret  Spotify client secret
  spotify.backend        Catalog backend (rest/sdk)
  spotify.market         Market code (e.g. US)
  playlist.id            Default playlist ID
  output.dir             Directory for plots and exports
  output.head            Rows shown by analyze
  output.plot_format     Plot format (png/svg/pdf)
  log.level              Log level (debug/info/warn/error)
  log.file               Log file path

Examples:
  spotstat config set spotify.backend sdk
  spotstat config set output.head 10`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var intKeys = map[string]bool{
	"output.head": true,
}

var floatKeys = map[string]bool{
	"output.plot_width":  true,
	"output.plot_height": true,
}

var knownKeys = map[string]bool{
	"spotify.client_id":     true,
	"spotify.client_secret": true,
	"spotify.backend":       true,
	"spotify.market":        true,
	"playlist.id":           true,
	"output.dir":            true,
	"output.head":           true,
	"output.plot_format":    true,
	"output.plot_width":     true,
	"output.plot_height":    true,
	"log.level":             true,
	"log.file":              true,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	shown := *cfg
	if shown.Spotify.ClientSecret != "" {
		shown.Spotify.ClientSecret = maskSecret(shown.Spotify.ClientSecret)
	}

	if JSONOutput() {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(shown)
	}

	// Pretty print as TOML
	encoder := toml.NewEncoder(cmd.OutOrStdout())
	encoder.Indent = "  "
	return encoder.Encode(shown)
}

func maskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path := getConfigPath()
	if JSONOutput() {
		_, err := os.Stat(path)
		return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
			"path":   path,
			"exists": err == nil,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	configPath := getConfigPath()

	// Check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found at %s. Run 'spotstat config init' first", configPath)
	}

	// Find editor
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"nano", "vim", "vi", "notepad"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Set EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, configPath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	return editorCmd.Run()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath := cfgFile
	if configPath == "" {
		configPath = config.DefaultPath()
	}

	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists at %s", configPath)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := writeConfigFile(configPath, config.Default()); err != nil {
		return err
	}

	if JSONOutput() {
		_ = json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{
			"status": "created",
			"path":   configPath,
		})
	} else {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created config file: %s\n", configPath)
		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintln(out, "  1. Create an app at https://developer.spotify.com/dashboard")
		fmt.Fprintln(out, "  2. Set spotify.client_id and spotify.client_secret in the config file,")
		fmt.Fprintln(out, "     a .env file, or SPOTSTAT_SPOTIFY_CLIENT_ID/SPOTSTAT_SPOTIFY_CLIENT_SECRET")
		fmt.Fprintln(out, "  3. Run 'spotstat analyze'")
	}

	return nil
}

// writeConfigFile writes v as TOML with a header comment. The file holds
// credentials so it is created user-readable only.
func writeConfigFile(path string, v any) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	_, _ = fmt.Fprintln(f, "# Spotstat Configuration")
	_, _ = fmt.Fprintln(f, "")

	encoder := toml.NewEncoder(f)
	encoder.Indent = "  "
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.Path()
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	if !knownKeys[key] {
		return fmt.Errorf("unknown config key %q. Run 'spotstat config set --help' for supported keys", key)
	}

	configPath := getConfigPath()

	// Check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found at %s. Run 'spotstat config init' first", configPath)
	}

	// Read the current config file as raw TOML
	var rawConfig map[string]interface{}
	if _, err := toml.DecodeFile(configPath, &rawConfig); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if rawConfig == nil {
		rawConfig = make(map[string]interface{})
	}

	section, field, _ := strings.Cut(key, ".")

	// Get or create the section
	sectionMap, ok := rawConfig[section].(map[string]interface{})
	if !ok {
		sectionMap = make(map[string]interface{})
		rawConfig[section] = sectionMap
	}

	// Convert value to appropriate type based on field
	var typedValue interface{}
	switch {
	case intKeys[key]:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("value must be an integer for %s", key)
		}
		typedValue = i
	case floatKeys[key]:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("value must be a number for %s", key)
		}
		typedValue = f
	case key == "playlist.id":
		id, err := ParsePlaylistID(value)
		if err != nil {
			return err
		}
		typedValue = id
	default:
		typedValue = value
	}

	sectionMap[field] = typedValue

	if err := writeConfigFile(configPath, rawConfig); err != nil {
		return err
	}

	if JSONOutput() {
		_ = json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{
			"status": "updated",
			"key":    key,
			"value":  fmt.Sprint(typedValue),
		})
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typedValue)
	}

	return nil
}
