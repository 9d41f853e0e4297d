package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/daybook"
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	settingsPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "daybook",
	Short: "A day-keyed journal with auto-categorized bullets",
	Long: `Daybook keeps a single markdown file of day sections and bullet lines.
Each bullet can carry a trailing {code} category marker; an external text
classifier fills the markers in, and manual edits keep them by position.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newService builds the service from the persistent flags.
func newService() *daybook.Service {
	opts := []daybook.Option{
		daybook.WithLogger(slog.Default()),
	}
	if settingsPath != "" {
		opts = append(opts, daybook.WithSettingsPath(settingsPath))
	}

	service, err := daybook.New(opts...)
	if err != nil {
		fatal("Failed to initialize daybook", err)
	}
	return service
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Settings file path (default: user config dir)")
}
