package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/groundwork/internal/catalog"
	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/alexanderramin/groundwork/internal/repository"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newAssessCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Take the business readiness assessment",
	}
	cmd.AddCommand(
		newAssessRunCmd(app),
		newAssessShowCmd(app),
	)
	return cmd
}

func newAssessRunCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Answer the readiness questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			if !app.interactive() {
				return fmt.Errorf("assess run needs a terminal")
			}
			questions := app.Catalogs.Assessment()
			if len(questions) == 0 {
				return fmt.Errorf("the loaded catalog has no assessment questions")
			}

			model := newQuizModel(questions)
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return err
			}
			quiz, ok := final.(*quizModel)
			if !ok || !quiz.done {
				fmt.Println(formatter.Dim("Assessment abandoned, nothing saved."))
				return nil
			}

			result, err := app.Assessments.Score(cmd.Context(), userID, quiz.points())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatAssessment(result, maxAssessmentScore(app)))
			return nil
		},
	}
}

func newAssessShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the latest assessment result",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			result, err := app.Assessments.Latest(cmd.Context(), userID)
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no assessment taken yet: run `groundwork assess run`")
			}
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatAssessment(result, maxAssessmentScore(app)))
			return nil
		},
	}
}

func maxAssessmentScore(app *App) int {
	bundle := catalog.Bundle{Assessment: app.Catalogs.Assessment()}
	return bundle.MaxScore()
}
