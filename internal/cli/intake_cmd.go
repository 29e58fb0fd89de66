package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var legalFormOptions = []string{
	"Sole proprietorship",
	"LLC (single member)",
	"LLC (multi-member)",
	"Partnership",
	"S corporation (Inc./Corp. or LLC that elected S status)",
	"C corporation",
	"Nonprofit",
	"Trust",
}

var taxClassOptions = []string{"sole_prop", "partnership", "s_corp", "c_corp", "nonprofit"}

var revenueOptions = []string{"0-100k", "100k-250k", "250k-1m", "1m+"}

var payrollOptions = []string{"0", "1-3", "4-5", "6-10", "10+"}

func newIntakeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intake",
		Short: "Capture the business snapshot everything else is built from",
	}
	cmd.AddCommand(
		newIntakeEditCmd(app),
		newIntakeShowCmd(app),
	)
	return cmd
}

func newIntakeEditCmd(app *App) *cobra.Command {
	var entity, tax, states, industry, revenue, payroll string
	var inventory, multiState, international bool

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Fill in or update the intake",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			in, err := loadOrNewIntake(ctx, app, userID)
			if err != nil {
				return err
			}

			if cmd.Flags().NFlag() > flagsFromParent(cmd) {
				applyIntakeFlags(cmd, in, entity, tax, states, industry, revenue, payroll,
					inventory, multiState, international)
			} else {
				if !app.interactive() {
					return fmt.Errorf("no terminal detected: pass intake values as flags instead")
				}
				if err := runIntakeWizard(in); err != nil {
					return err
				}
			}

			if err := app.Intakes.Save(ctx, in); err != nil {
				return err
			}
			fmt.Printf("Intake saved: %d of %d fields filled.\n",
				in.FilledFieldCount(), domain.TrackedFieldCount)
			fmt.Println(formatter.Dim("Next: groundwork profile build"))
			return nil
		},
	}

	cmd.Flags().StringVar(&entity, "entity", "", "legal form (free text)")
	cmd.Flags().StringVar(&tax, "tax", "", "tax classification: "+strings.Join(taxClassOptions, ", "))
	cmd.Flags().StringVar(&states, "states", "", "comma-separated state codes, e.g. NC,SC")
	cmd.Flags().StringVar(&industry, "industry", "", "industry label")
	cmd.Flags().StringVar(&revenue, "revenue", "", "revenue bracket: "+strings.Join(revenueOptions, ", "))
	cmd.Flags().StringVar(&payroll, "payroll", "", "W-2 employee bracket: "+strings.Join(payrollOptions, ", "))
	cmd.Flags().BoolVar(&inventory, "inventory", false, "business carries inventory")
	cmd.Flags().BoolVar(&multiState, "multi-state", false, "operates in more than one state")
	cmd.Flags().BoolVar(&international, "international", false, "has international activity")

	return cmd
}

// flagsFromParent counts set persistent flags so a bare --user does not
// suppress the wizard.
func flagsFromParent(cmd *cobra.Command) int {
	n := 0
	if cmd.Flags().Changed("user") {
		n++
	}
	return n
}

func loadOrNewIntake(ctx context.Context, app *App, userID string) (*domain.Intake, error) {
	in, err := app.Intakes.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewIntake(userID), nil
		}
		return nil, err
	}
	return in, nil
}

func applyIntakeFlags(cmd *cobra.Command, in *domain.Intake,
	entity, tax, states, industry, revenue, payroll string,
	inventory, multiState, international bool,
) {
	if cmd.Flags().Changed("entity") {
		in.EntityLegalForm = entity
	}
	if cmd.Flags().Changed("tax") {
		in.TaxClassification = tax
	}
	if cmd.Flags().Changed("states") {
		in.StateCodes = splitCSV(states)
	}
	if cmd.Flags().Changed("industry") {
		in.Industry = industry
	}
	if cmd.Flags().Changed("revenue") {
		in.RevenueBracket = revenue
	}
	if cmd.Flags().Changed("payroll") {
		in.PayrollW2Bracket = payroll
	}
	if cmd.Flags().Changed("inventory") {
		in.HasInventory = inventory
	}
	if cmd.Flags().Changed("multi-state") {
		in.MultiState = multiState
	}
	if cmd.Flags().Changed("international") {
		in.International = international
	}
}

func runIntakeWizard(in *domain.Intake) error {
	statesCSV := strings.Join(in.StateCodes, ", ")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Legal form").
				Options(stringOptions(legalFormOptions, in.EntityLegalForm)...).
				Value(&in.EntityLegalForm),
			huh.NewSelect[string]().
				Title("Tax classification").
				Options(stringOptions(taxClassOptions, in.TaxClassification)...).
				Value(&in.TaxClassification),
			huh.NewInput().
				Title("Industry").
				Placeholder("Consulting").
				Value(&in.Industry),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Annual revenue").
				Options(stringOptions(revenueOptions, in.RevenueBracket)...).
				Value(&in.RevenueBracket),
			huh.NewSelect[string]().
				Title("W-2 employees").
				Options(stringOptions(payrollOptions, in.PayrollW2Bracket)...).
				Value(&in.PayrollW2Bracket),
			huh.NewInput().
				Title("States you operate in (comma separated)").
				Placeholder("NC, SC").
				Value(&statesCSV),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Do you carry inventory?").
				Value(&in.HasInventory),
			huh.NewConfirm().
				Title("Do you operate in more than one state?").
				Value(&in.MultiState),
			huh.NewConfirm().
				Title("Any international vendors, customers, or accounts?").
				Value(&in.International),
		),
	).WithTheme(groundworkHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}
	in.StateCodes = splitCSV(statesCSV)
	return nil
}

func stringOptions(values []string, current string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values)+1)
	seen := false
	for _, v := range values {
		opts = append(opts, huh.NewOption(v, v))
		if v == current {
			seen = true
		}
	}
	// Keep a previously saved free-text value selectable.
	if current != "" && !seen {
		opts = append(opts, huh.NewOption(current, current))
	}
	return opts
}

func newIntakeShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored intake",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			in, err := app.Intakes.Get(cmd.Context(), userID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no intake on file: run `groundwork intake edit` first")
				}
				return err
			}

			rows := [][]string{
				{"Legal form", in.EntityLegalForm},
				{"Tax classification", in.TaxClassification},
				{"Industry", in.Industry},
				{"Revenue", in.RevenueBracket},
				{"W-2 payroll", in.PayrollW2Bracket},
				{"States", strings.Join(in.StateCodes, ", ")},
				{"Inventory", yesNo(in.HasInventory)},
				{"Multi-state", yesNo(in.MultiState)},
				{"International", yesNo(in.International)},
			}
			fmt.Println(formatter.RenderTable([]string{"Field", "Value"}, rows))
			fmt.Printf("%d of %d fields filled.\n", in.FilledFieldCount(), domain.TrackedFieldCount)
			return nil
		},
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
