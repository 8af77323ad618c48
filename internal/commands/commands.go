// Package commands defines the roster command line.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/five82/roster/internal/app"
)

// New returns the root command. Without a subcommand it runs the TUI.
func New() *cobra.Command {
	so := &SourceOptions{}
	var prefsPath string

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Browse, filter and mark a character roster in the terminal.",
		Long: `roster loads the character collection once, from a json-server style API
or a local db.json, and lets you search, filter by health, sort by power
and mark characters as viewed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: so.ConfigPath,
				PrefsPath:  prefsPath,
				DataFile:   so.DataFile,
				APIURL:     so.APIURL,
			})
		},
	}

	AddSourceArgs(cmd, so)
	cmd.Flags().StringVar(&prefsPath, "prefs", "", "Path to prefs.toml (default ~/.config/roster/prefs.toml).")

	AddCommands(cmd)
	return cmd
}

// AddCommands registers the subcommands on topLevel.
func AddCommands(topLevel *cobra.Command) {
	addList(topLevel)
	addGenerate(topLevel)
	addServe(topLevel)
}
