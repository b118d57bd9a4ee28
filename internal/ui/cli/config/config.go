package config

import (
	"github.com/isaacphi/adminshell/internal/appState"
	"github.com/spf13/cobra"
)

var (
	includeSources bool
	asYAML         bool

	ConfigCmd = &cobra.Command{
		Use:   "config [prefix]",
		Short: "View configuration",
		Long:  "Read configuration. If prefix is included, only show configuration under that path. E.g. adminshell config keymap",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appState.Get().Config
			out := cmd.OutOrStdout()

			if asYAML {
				return cfg.WriteYAML(out)
			}

			var prefix string
			if len(args) > 0 {
				prefix = args[0]
			}
			cfg.PrintConfig(out, includeSources, prefix)
			return nil
		},
	}
)

func init() {
	ConfigCmd.Flags().BoolVarP(&includeSources, "include-sources", "s", false, "Show source file for each configuration value")
	ConfigCmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the merged configuration as YAML")
}
