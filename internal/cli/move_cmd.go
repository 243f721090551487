package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"nextin/internal/auth"
	"nextin/internal/move"
)

func newMoveCmd(app *App) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "move ID COLUMN",
		Short: "Move an issue to a column, at the top unless --index is given",
		Example: `  nextinctl move 3f2a review
  nextinctl move 3f2a done --index 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			board, err := app.load(ctx)
			if err != nil {
				return err
			}
			id, err := resolveID(board, args[0])
			if err != nil {
				return app.Print.Error("Unknown issue", err, "")
			}
			src, srcIdx, _ := board.Locate(id)
			dest := args[1]
			if _, ok := board.Columns[dest]; !ok {
				return app.Print.Error("Unknown column", fmt.Errorf("%q is not one of %v", dest, board.ColumnOrder), "")
			}

			in := move.Intent{IssueID: id, SourceCol: src, SourceIndex: srcIdx, DestCol: dest, DestIndex: index}
			if move.IsNoop(in) {
				app.Print.Info("%s is already there", shortID(id))
				return nil
			}

			if err := <-app.Board.Drop(ctx, in); err != nil {
				if errors.Is(err, move.ErrStaleIndex) {
					app.Print.Warning("The board changed on the server; reloaded. Try again.")
				}
				return app.Print.Error("Move rejected", err, "")
			}
			app.Print.Success("Moved %s to %s", shortID(id), board.Columns[dest].Title)
			return nil
		},
	}

	cmd.Flags().IntVarP(&index, "index", "i", 0, "Position in the destination column")
	return cmd
}

func newTokenCmd(app *App) *cobra.Command {
	var secret, subject string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for a server started with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				return app.Print.Error("No secret", nil, "Pass --secret or set JWT_SECRET to the server's value.")
			}
			token, err := auth.GenerateToken(secret, subject, ttl)
			if err != nil {
				return app.Print.Error("Could not sign token", err, "")
			}
			fmt.Fprintln(app.Print.Out, token)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", envOr("JWT_SECRET", ""), "HMAC secret shared with the server")
	cmd.Flags().StringVar(&subject, "subject", "nextinctl", "Token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	return cmd
}
