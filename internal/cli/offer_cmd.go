package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newOfferCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offer",
		Short: "Shape your core offer",
	}
	cmd.AddCommand(
		newOfferEditCmd(app),
		newOfferShowCmd(app),
	)
	return cmd
}

func newOfferEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Draft or rework the offer",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			if !app.interactive() {
				return fmt.Errorf("offer edit needs a terminal")
			}
			ctx := cmd.Context()

			offer, err := app.Offers.Get(ctx, userID)
			if err != nil {
				if !errors.Is(err, repository.ErrNotFound) {
					return err
				}
				offer = &domain.OfferDraft{UserID: userID}
			}

			price := ""
			if offer.PriceUSD > 0 {
				price = strconv.Itoa(offer.PriceUSD)
			}
			deliverables := strings.Join(offer.Deliverables, ", ")

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Offer name").
						Placeholder("Monthly books package").
						Validate(validateNonEmpty).
						Value(&offer.Name),
					huh.NewInput().
						Title("Promise (the outcome the client buys)").
						Placeholder("Clean books and a cash report every month").
						Value(&offer.Promise),
					huh.NewInput().
						Title("Price in USD").
						Placeholder("750").
						Validate(validatePrice).
						Value(&price),
					huh.NewInput().
						Title("Deliverables (comma separated)").
						Placeholder("monthly close, cash report, quarterly review").
						Value(&deliverables),
				),
			).WithTheme(groundworkHuhTheme()).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}

			offer.PriceUSD, _ = strconv.Atoi(strings.TrimSpace(price))
			offer.Deliverables = splitCSV(deliverables)

			if err := app.Offers.Save(ctx, offer); err != nil {
				return err
			}
			fmt.Println("Offer saved.")
			return nil
		},
	}
}

func validatePrice(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("enter a whole dollar amount")
	}
	return nil
}

func newOfferShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current offer",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			offer, err := app.Offers.Get(cmd.Context(), userID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no offer yet: run `groundwork offer edit`")
				}
				return err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "%s\n", formatter.Bold(offer.Name))
			if offer.Promise != "" {
				fmt.Fprintf(&b, "%s\n", offer.Promise)
			}
			fmt.Fprintf(&b, "\n%s $%d\n", formatter.Bold("Price:"), offer.PriceUSD)
			if len(offer.Deliverables) > 0 {
				b.WriteString(formatter.Bold("Deliverables:") + "\n")
				for _, d := range offer.Deliverables {
					fmt.Fprintf(&b, "  - %s\n", d)
				}
			}
			fmt.Println(formatter.RenderBox("Offer", strings.TrimRight(b.String(), "\n")))
			return nil
		},
	}
}
