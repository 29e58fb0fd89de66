package cli

import (
	"fmt"

	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/alexanderramin/groundwork/internal/service"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect or replace the rule catalog",
	}
	cmd.AddCommand(
		newCatalogShowCmd(app),
		newCatalogSeedCmd(app),
		newCatalogReloadCmd(app),
	)
	return cmd
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Summarize the stored catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.Catalogs.Current(cmd.Context())
			if err != nil {
				return err
			}
			rows := [][]string{
				{"Priorities", fmt.Sprintf("%d", len(cat.Priorities))},
				{"Watchlist rules", fmt.Sprintf("%d", len(cat.Watchlist))},
				{"Recurring actions", fmt.Sprintf("%d", len(cat.Actions))},
				{"Suggestion rules", fmt.Sprintf("%d", len(cat.Suggestions))},
				{"Advisor questions", fmt.Sprintf("%d", len(cat.Questions))},
			}
			fmt.Println(formatter.RenderTable([]string{"Section", "Rows"}, rows))
			return nil
		},
	}
}

func newCatalogSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Install the shipped catalog if none is stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Catalogs.SeedDefault(cmd.Context())
			if err != nil {
				return err
			}
			printCatalogReport(report)
			return nil
		},
	}
}

func newCatalogReloadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reload <file>",
		Short: "Replace the stored catalog from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Catalogs.ReloadFromFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printCatalogReport(report)
			return nil
		},
	}
}

func printCatalogReport(report *service.CatalogReport) {
	fmt.Printf("Catalog source: %s\n", formatter.Bold(report.Source))
	fmt.Printf("  %d priorities, %d watchlist rules, %d actions, %d suggestions, %d questions\n",
		report.Priorities, report.Watchlist, report.Actions, report.Suggestions, report.Questions)
	for _, w := range report.Warnings {
		fmt.Println(formatter.StyleYellow.Render("  warning: " + w))
	}
}
