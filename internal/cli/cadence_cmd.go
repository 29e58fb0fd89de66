package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/spf13/cobra"
)

func newCadenceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cadence",
		Short: "Plan the weekly working cadence",
	}
	cmd.AddCommand(
		newCadenceSetCmd(app),
		newCadenceShowCmd(app),
		newCadenceClearCmd(app),
	)
	return cmd
}

func newCadenceSetCmd(app *App) *cobra.Command {
	var minutes int
	cmd := &cobra.Command{
		Use:   "set <day> <theme>",
		Short: "Reserve a themed block on a weekday",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			day := strings.ToLower(strings.TrimSpace(args[0]))
			if !domain.ValidCadenceDays[day] {
				return fmt.Errorf("unknown day %q: use monday through sunday", args[0])
			}
			block := &domain.CadenceBlock{
				UserID:  userID,
				Day:     domain.CadenceDay(day),
				Theme:   strings.Join(args[1:], " "),
				Minutes: minutes,
			}
			if err := app.Cadence.SetBlock(cmd.Context(), block); err != nil {
				return err
			}
			fmt.Printf("%s: %s (%d min)\n", formatter.Bold(args[0]), block.Theme, block.Minutes)
			return nil
		},
	}
	cmd.Flags().IntVar(&minutes, "minutes", 60, "length of the block in minutes")
	return cmd
}

func newCadenceShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the planned week",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			blocks, err := app.Cadence.Week(cmd.Context(), userID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatCadence(blocks))
			return nil
		},
	}
}

func newCadenceClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <day>",
		Short: "Remove the block on a weekday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			day := strings.ToLower(strings.TrimSpace(args[0]))
			if !domain.ValidCadenceDays[day] {
				return fmt.Errorf("unknown day %q: use monday through sunday", args[0])
			}
			err = app.Cadence.ClearDay(cmd.Context(), userID, domain.CadenceDay(day))
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("nothing planned on %s", day)
			}
			if err != nil {
				return err
			}
			fmt.Printf("Cleared %s.\n", day)
			return nil
		},
	}
}
