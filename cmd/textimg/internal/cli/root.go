// Package cli implements the textimg command-line interface.
//
// Commands render styled text to image files, list available fonts, and
// manage the preset library. All commands support --verbose (-v) for
// debug-level logging; log output goes to stderr via charmbracelet/log,
// bridged into the library's slog-based diagnostics.
package cli

import (
	"context"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	textimg "github.com/Space-Cadet-Stuff/Custom-Text-as-Images"
	"github.com/Space-Cadet-Stuff/Custom-Text-as-Images/internal/config"
)

var version = "dev"

// SetVersion sets the version string displayed by --version, typically
// injected via ldflags at build time.
func SetVersion(v string) {
	version = v
}

// Execute runs the textimg CLI.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "textimg",
		Short:        "Render styled text to bitmap images",
		Long:         `textimg composes text with gradient fills, outlines, and glow effects onto a raster canvas and exports it as PNG, JPEG, BMP, or TIFF.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			sl := slog.New(logger)
			slog.SetDefault(sl)
			textimg.SetLogger(sl)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default textimg.toml if present)")

	loadCfg := func() (config.Config, error) {
		return config.LoadOrDefault(configPath)
	}

	root.AddCommand(newRenderCmd(loadCfg))
	root.AddCommand(newFontsCmd(loadCfg))
	root.AddCommand(newPresetCmd(loadCfg))

	return root.ExecuteContext(ctx)
}
