// Package cli implements the showsearch command line.
package cli

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Belphemur/ShowSearch/internal/client"
	"github.com/Belphemur/ShowSearch/internal/config"
)

// ClientFactory builds the catalog client used by a command
type ClientFactory func(cfg *config.Config) client.Client

// NewRootCommand creates the showsearch command tree. newClient is used by every
// subcommand that talks to the catalog.
func NewRootCommand(newClient ClientFactory) *cobra.Command {
	root := &cobra.Command{
		Use:           "showsearch",
		Short:         "Search the TVMaze catalog for shows and their episodes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Changed("log-level") {
				config.SetLogLevel(viper.GetString("log_level"))
			}
		},
	}

	root.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")
	lo.Must0(viper.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level")))

	root.PersistentFlags().String("base-url", "", "Catalog API base URL")
	lo.Must0(viper.BindPFlag("catalog.base_url", root.PersistentFlags().Lookup("base-url")))

	root.AddCommand(
		newServeCommand(newClient),
		newSearchCommand(newClient),
		newEpisodesCommand(newClient),
	)
	return root
}

// currentConfig returns the loaded configuration with command line overrides applied
func currentConfig(cmd *cobra.Command) *config.Config {
	cfg := *config.GetConfig()
	if cmd.Flags().Changed("base-url") {
		cfg.Catalog.BaseURL = viper.GetString("catalog.base_url")
	}
	return cfg.Normalized()
}
