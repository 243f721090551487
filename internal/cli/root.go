package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the nextinctl command tree around app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "nextinctl",
		Short: "Command-line client for the nextin board",
		Long: `nextinctl talks to a nextin server. It keeps a local copy of the
board, applies moves to it immediately and reloads it from the server
whenever the server rejects a change.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.connect()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&app.BaseURL, "api", app.BaseURL, "Server base URL (env "+EnvAPI+")")
	root.PersistentFlags().StringVar(&app.Token, "token", app.Token, "Bearer token for mutations (env "+EnvToken+")")

	root.AddCommand(
		newBoardCmd(app),
		newStatsCmd(app),
		newCreateCmd(app),
		newUpdateCmd(app),
		newDeleteCmd(app),
		newMoveCmd(app),
		newTokenCmd(app),
	)
	return root
}
