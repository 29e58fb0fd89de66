package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/spf13/cobra"
)

func newSplitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Allocate revenue across pay, tax, profit, and operating buckets",
	}
	cmd.AddCommand(
		newSplitSetCmd(app),
		newSplitShowCmd(app),
	)
	return cmd
}

func newSplitSetCmd(app *App) *cobra.Command {
	var ownerPay, tax, profit, opex int
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save the split percentages",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			split := &domain.MoneySplit{
				UserID:      userID,
				OwnerPayPct: ownerPay,
				TaxPct:      tax,
				ProfitPct:   profit,
				OpexPct:     opex,
			}
			if err := app.Splits.Save(cmd.Context(), split); err != nil {
				return err
			}
			fmt.Println(formatter.FormatSplit(split, nil))
			return nil
		},
	}
	cmd.Flags().IntVar(&ownerPay, "owner-pay", 50, "owner pay share, percent")
	cmd.Flags().IntVar(&tax, "tax", 20, "tax reserve share, percent")
	cmd.Flags().IntVar(&profit, "profit", 10, "profit share, percent")
	cmd.Flags().IntVar(&opex, "opex", 20, "operating expense share, percent")
	return cmd
}

func newSplitShowCmd(app *App) *cobra.Command {
	var revenue float64
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the split, optionally applied to a revenue figure",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if !cmd.Flags().Changed("revenue") {
				split, err := app.Splits.Get(ctx, userID)
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no split saved: run `groundwork split set`")
				}
				if err != nil {
					return err
				}
				fmt.Println(formatter.FormatSplit(split, nil))
				return nil
			}

			revenueCents := int64(revenue * 100)
			split, amounts, err := app.Splits.Preview(ctx, userID, revenueCents)
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no split saved: run `groundwork split set`")
			}
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSplit(split, &amounts))
			return nil
		},
	}
	cmd.Flags().Float64Var(&revenue, "revenue", 0, "revenue in dollars to allocate")
	return cmd
}
