package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/isaacphi/adminshell/internal/appState"
	"github.com/isaacphi/adminshell/internal/config"
	configCmd "github.com/isaacphi/adminshell/internal/ui/cli/config"
	"github.com/isaacphi/adminshell/internal/ui/cli/render"
	"github.com/isaacphi/adminshell/internal/ui/tui"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:               "adminshell",
	Short:             "Admin dashboard in your terminal",
	Long:              `A keyboard driven admin shell with user, dashboard, analytics and settings screens`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appState.Get()
		return tui.Run(cmd.Context(), app.Config, app.Logger)
	},
}

func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up the root command to use this context
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Add global flags for logging
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set logging level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (logs are discarded in the TUI and go to stderr otherwise)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		overrides := &config.RuntimeOverrides{}
		if logLevel != "" {
			overrides.LogLevel = &logLevel
		}
		if logFile != "" {
			overrides.LogFile = &logFile
		}
		return appState.Initialize(overrides, cmd == cmd.Root())
	}

	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return appState.Cleanup()
	}

	// Remove "completions" command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		configCmd.ConfigCmd,
		render.RenderCmd,
	)
}
