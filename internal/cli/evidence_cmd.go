package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/spf13/cobra"
)

func newEvidenceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evidence",
		Short: "Track the tax-planning document checklist",
	}
	cmd.AddCommand(
		newEvidenceListCmd(app),
		newEvidenceMarkCmd(app, "check", true),
		newEvidenceMarkCmd(app, "uncheck", false),
	)
	return cmd
}

func newEvidenceListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the checklist and its progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			items, err := app.Evidence.Checklist(cmd.Context(), userID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatChecklist(items))
			return nil
		},
	}
}

func newEvidenceMarkCmd(app *App, verb string, done bool) *cobra.Command {
	short := "Mark a checklist item as gathered"
	if !done {
		short = "Mark a checklist item as missing again"
	}
	return &cobra.Command{
		Use:   verb + " <key>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			// Seed the checklist first so keys exist for new users.
			if _, err := app.Evidence.Checklist(ctx, userID); err != nil {
				return err
			}
			if err := app.Evidence.Mark(ctx, userID, args[0], done); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("unknown checklist key %q: see `groundwork evidence list`", args[0])
				}
				return err
			}

			doneCount, total, err := app.Evidence.Fraction(ctx, userID)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s  %s\n", formatter.Check(done), args[0],
				formatter.Dim(fmt.Sprintf("%d of %d required items done", doneCount, total)))
			return nil
		},
	}
}
