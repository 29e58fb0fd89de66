package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/alexanderramin/groundwork/internal/contract"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/spf13/cobra"
)

func newMemoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memo",
		Short: "Compose versioned decision memos",
	}
	cmd.AddCommand(
		newMemoComposeCmd(app),
		newMemoShowCmd(app),
	)
	return cmd
}

func newMemoComposeCmd(app *App) *cobra.Command {
	var decision string

	cmd := &cobra.Command{
		Use:   "compose <topic>",
		Short: "Write the next memo version for a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}

			resp, err := app.Memos.Compose(cmd.Context(), contract.ComposeMemoRequest{
				UserID:   userID,
				Topic:    args[0],
				Decision: decision,
			})
			if err != nil {
				var merr *contract.MemoError
				if errors.As(err, &merr) && merr.Code == contract.MemoErrMissingIntake {
					return fmt.Errorf("%s\nRun `groundwork intake edit` first", merr.Message)
				}
				return err
			}

			fmt.Printf("%s %s\n",
				formatter.Bold(resp.Memo.Title),
				formatter.Dim(fmt.Sprintf("(v%d)", resp.Memo.Version)))
			if resp.Decided {
				fmt.Printf("Decision: %s\n", formatter.Bold(decision))
			} else if resp.BestFit != "" {
				fmt.Printf("Suggested: %s %s\n",
					formatter.Bold(resp.BestFit),
					formatter.Dim("(pass --decision to commit to one)"))
			}
			fmt.Printf("Confidence: %s\n",
				formatter.ConfidenceStyle(resp.Confidence).Render(fmt.Sprintf("%d/100", resp.Confidence)))
			fmt.Println(formatter.Dim("Full memo: groundwork memo show " + args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&decision, "decision", "", "the classification you are committing to")
	return cmd
}

func newMemoShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <topic>",
		Short: "Print the latest memo for a topic as markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			memo, err := app.Memos.GetLatest(cmd.Context(), userID, args[0])
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no memo for topic %q: run `groundwork memo compose %s`", args[0], args[0])
				}
				return err
			}
			fmt.Print(memo.Body)
			return nil
		},
	}
}
