package cli

import (
	"github.com/spf13/cobra"

	"nextin/internal/model"
)

func newCreateCmd(app *App) *cobra.Command {
	var f model.IssueFields
	var issueType, priority string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an issue at the top of Backlog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.Type = model.IssueType(issueType)
			f.Priority = model.Priority(priority)
			issue, err := app.Board.CreateIssue(cmd.Context(), f)
			if err != nil {
				return app.Print.Error("Failed to create issue", nil, "")
			}
			app.Print.Success("Created %s %q", shortID(issue.ID), issue.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.Title, "title", "t", "", "Issue title")
	cmd.Flags().StringVarP(&f.Assignee, "assignee", "a", "", "Assignee")
	cmd.Flags().StringVar(&issueType, "type", "", "task, story or bug")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "low, medium or high")
	cmd.Flags().StringVarP(&f.Description, "description", "d", "", "Description")
	return cmd
}

func newUpdateCmd(app *App) *cobra.Command {
	var title, assignee, issueType, priority, description string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of an issue; unset flags keep their value",
		Args:  cobra.ExactArgs(1),
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

			var patch model.IssuePatch
			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("assignee") {
				patch.Assignee = &assignee
			}
			if flags.Changed("type") {
				t := model.IssueType(issueType)
				patch.Type = &t
			}
			if flags.Changed("priority") {
				p := model.Priority(priority)
				patch.Priority = &p
			}
			if flags.Changed("description") {
				patch.Description = &description
			}

			issue, err := app.Board.UpdateIssue(ctx, id, patch)
			if err != nil {
				return app.Print.Error("Failed to update issue", nil, "")
			}
			app.Print.Success("Updated %s", shortID(issue.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Issue title")
	cmd.Flags().StringVarP(&assignee, "assignee", "a", "", "Assignee (empty to unassign)")
	cmd.Flags().StringVar(&issueType, "type", "", "task, story or bug")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "low, medium or high")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Description")
	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an issue",
		Args:  cobra.ExactArgs(1),
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
			if err := app.Board.DeleteIssue(ctx, id); err != nil {
				return app.Print.Error("Failed to delete issue", nil, "")
			}
			app.Print.Success("Deleted %s", shortID(id))
			return nil
		},
	}
}
