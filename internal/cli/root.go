// Package cli provides the command-line interface for keyscope.
package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dshills/keyscope/internal/demo"
	"github.com/dshills/keyscope/internal/input/keymap"
	"github.com/dshills/keyscope/internal/logging"
)

// NewRootCmd creates the root command for keyscope.
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	var logLevel string
	var logFormat string
	var keymapPath string

	rootCmd := &cobra.Command{
		Use:   "keyscope",
		Short: "Scoped keyboard shortcut engine demo",
		Long: `keyscope resolves keyboard shortcuts against a stack of nested
scopes, innermost first. The root command runs an interactive terminal
demo showing combinations, sequences, and scope precedence.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := buildLogger(cmd, logLevel, logFormat)
			ctx := logging.WithContext(cmd.Context(), logger)
			return demo.Run(ctx, demo.Options{KeymapPath: keymapPath})
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format (console, json)")
	rootCmd.Flags().StringVar(&keymapPath, "keymap", "", "Keymap file (.json or .lua) for the editor scope")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("keyscope %s\n", version)
			fmt.Printf("commit: %s\n", commit)
			fmt.Printf("built: %s\n", buildDate)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newCheckCmd())

	return rootCmd
}

// buildLogger constructs the root logger. Explicit flags win; with
// neither flag set the KEYSCOPE_LOG_* environment variables apply.
func buildLogger(cmd *cobra.Command, level, format string) zerolog.Logger {
	if !cmd.Flags().Changed("log-level") && !cmd.Flags().Changed("log-format") {
		return logging.NewFromEnv()
	}

	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return logging.New(cfg)
}

// newCheckCmd creates the keymap validation command.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <keymap-file>...",
		Short: "Validate keymap files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, path := range args {
				km, err := loadKeymap(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if err := km.Validate(); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				fmt.Printf("%s: ok (%d bindings)\n", path, len(km.Bindings))
			}
			return nil
		},
	}
}

// loadKeymap picks the loader by file extension.
func loadKeymap(path string) (*keymap.Keymap, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lua":
		return keymap.NewLuaLoader().LoadFile(path)
	case ".json":
		return keymap.NewLoader().LoadFile(path)
	default:
		return nil, fmt.Errorf("unsupported keymap format %q", filepath.Ext(path))
	}
}
