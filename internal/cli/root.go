package cli

import (
	"github.com/alexanderramin/groundwork/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands,
// plus the active user resolved from flags or environment.
type App struct {
	UserID string

	Intakes     service.IntakeService
	Profiles    service.ProfileService
	Memos       service.MemoService
	Catalogs    service.CatalogService
	Evidence    service.EvidenceService
	Offers      service.OfferService
	Cadence     service.CadenceService
	SOPs        service.SOPService
	Splits      service.MoneySplitService
	Assessments service.AssessmentService

	// IsInteractive reports whether stdin is a terminal; wizards refuse
	// to run without one.
	IsInteractive func() bool
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// NewRootCmd creates the top-level "groundwork" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "groundwork",
		Short: "Business coaching companion for solo owners",
		Long: "Groundwork walks a small-business owner through the program chapters:\n" +
			"intake, profile, decision memos, cadence, offers, SOPs, money split,\n" +
			"and the readiness assessment.",
	}

	root.PersistentFlags().StringVar(&app.UserID, "user", app.UserID,
		"user the command acts on (defaults to $GROUNDWORK_USER)")

	root.AddCommand(
		newIntakeCmd(app),
		newProfileCmd(app),
		newMemoCmd(app),
		newEvidenceCmd(app),
		newOfferCmd(app),
		newCadenceCmd(app),
		newSOPCmd(app),
		newSplitCmd(app),
		newAssessCmd(app),
		newCatalogCmd(app),
	)

	return root
}
