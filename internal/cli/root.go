package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yvinc/203-proj1/internal/config"
	apperrors "github.com/yvinc/203-proj1/internal/errors"
	"github.com/yvinc/203-proj1/internal/logging"
)

var (
	cfgFile     string
	jsonOut     bool
	verbose     bool
	playlistArg string
	interactive bool

	cfg      *config.Config
	logger   = zap.NewNop()
	closeLog = func() {}

	newLogger = logging.New
)

var rootCmd = &cobra.Command{
	Use:   "spotstat",
	Short: "Analyze Spotify playlists from the command line",
	Long: `Spotstat fetches a Spotify playlist (the Billboard Hot 100 by default),
joins its tracks with artist genres and audio features, and summarises,
plots or exports the result.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		return initLogger()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.spotstatrc)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&playlistArg, "playlist", "p", "", "playlist ID, URI or URL (default: configured playlist or Hot 100)")
	rootCmd.PersistentFlags().BoolVarP(&interactive, "interactive", "i", false, "prompt for the playlist")
}

func initConfig() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidConfig, err)
	}

	return nil
}

func initLogger() error {
	l, closeFn, err := newLogger(cfg.Log, verbose)
	if err != nil {
		return err
	}
	logger = l
	closeLog = closeFn
	return nil
}

// Execute runs the root command. Interrupts cancel in-flight requests.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return execute(ctx, os.Args[1:])
}

// execute runs the root command with args and releases the logger that
// PersistentPreRunE installed.
func execute(ctx context.Context, args []string) error {
	defer func() {
		closeLog()
		closeLog = func() {}
		logger = zap.NewNop()
	}()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// Config returns the loaded configuration.
func Config() *config.Config {
	return cfg
}

// JSONOutput returns true if JSON output is requested.
func JSONOutput() bool {
	return jsonOut
}

// Verbose returns true if verbose output is requested.
func Verbose() bool {
	return verbose
}
