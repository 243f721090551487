package cli

import (
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the board column by column",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if search != "" {
				views, err := app.API.Columns(ctx, search)
				if err != nil {
					return app.Print.Error("Could not search the board", err, "")
				}
				app.Print.Columns(views)
				return nil
			}
			board, err := app.load(ctx)
			if err != nil {
				return err
			}
			app.Print.Columns(board.Filter(""))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Only show issues whose title, assignee or description match")
	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show issue counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.load(cmd.Context()); err != nil {
				return err
			}
			app.Print.Stats(app.Board.Stats())
			return nil
		},
	}
}
