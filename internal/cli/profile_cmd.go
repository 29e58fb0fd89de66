package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/alexanderramin/groundwork/internal/contract"
	"github.com/alexanderramin/groundwork/internal/export"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Build and inspect the recommendation profile",
	}
	cmd.AddCommand(
		newProfileBuildCmd(app),
		newProfileShowCmd(app),
		newProfileHistoryCmd(app),
	)
	return cmd
}

func newProfileBuildCmd(app *App) *cobra.Command {
	var year int
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compose a fresh profile from the intake and catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}

			req := contract.NewBuildProfileRequest(userID)
			req.Year = year
			req.DryRun = dryRun

			resp, err := app.Profiles.Build(cmd.Context(), req)
			if err != nil {
				return profileErrHint(err)
			}

			fmt.Println(formatter.FormatProfile(resp.Profile))
			if dryRun {
				fmt.Println(formatter.Dim("Dry run: nothing was saved."))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "calendar year to plan (defaults to current)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compose without saving")
	return cmd
}

// profileErrHint attaches next-step guidance to typed build failures.
func profileErrHint(err error) error {
	var perr *contract.ProfileError
	if !errors.As(err, &perr) {
		return err
	}
	switch perr.Code {
	case contract.ErrMissingIntake:
		return fmt.Errorf("%s\nRun `groundwork intake edit` first", perr.Message)
	case contract.ErrEmptyCatalog:
		return fmt.Errorf("%s\nRun `groundwork catalog reload` or reinstall", perr.Message)
	default:
		return err
	}
}

func newProfileShowCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the most recent profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			p, err := app.Profiles.GetLatest(cmd.Context(), userID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no profile yet: run `groundwork profile build`")
				}
				return err
			}

			switch format {
			case "md", "markdown":
				fmt.Print(export.Profile(p))
			default:
				fmt.Println(formatter.FormatProfile(p))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "term", "output format: term or md")
	return cmd
}

func newProfileHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past profile builds",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			profiles, err := app.Profiles.History(cmd.Context(), userID, limit)
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				fmt.Println(formatter.Dim("No profiles built yet."))
				return nil
			}

			rows := make([][]string, 0, len(profiles))
			for _, p := range profiles {
				rows = append(rows, []string{
					p.CreatedAt.Format("2006-01-02 15:04"),
					fmt.Sprintf("%d", p.Confidence),
					fmt.Sprintf("%d", len(p.Priorities)),
					fmt.Sprintf("%d", len(p.Watchlist)),
				})
			}
			fmt.Println(formatter.RenderTable(
				[]string{"Built", "Confidence", "Priorities", "Watchlist"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "number of builds to show")
	return cmd
}
