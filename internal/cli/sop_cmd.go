package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newSOPCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sop",
		Short: "Write and keep standard operating procedures",
	}
	cmd.AddCommand(
		newSOPAddCmd(app),
		newSOPListCmd(app),
		newSOPShowCmd(app),
		newSOPRemoveCmd(app),
	)
	return cmd
}

func newSOPAddCmd(app *App) *cobra.Command {
	var title string
	var steps []string
	cmd := &cobra.Command{
		Use:   "add <slug>",
		Short: "Create or replace a procedure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			slug := strings.ToLower(strings.TrimSpace(args[0]))

			doc := &domain.SOPDoc{UserID: userID, Slug: slug, Title: title, Steps: steps}
			if len(doc.Steps) == 0 {
				if !app.interactive() {
					return fmt.Errorf("pass --step at least once, or run in a terminal")
				}
				if err := runSOPWizard(doc); err != nil {
					return err
				}
			}
			if doc.Title == "" {
				doc.Title = slug
			}

			if err := app.SOPs.Save(cmd.Context(), doc); err != nil {
				return err
			}
			fmt.Printf("Saved %s (%d steps).\n", formatter.Bold(doc.Slug), len(doc.Steps))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "procedure title")
	cmd.Flags().StringArrayVar(&steps, "step", nil, "a step, in order (repeatable)")
	return cmd
}

// runSOPWizard collects a title and a newline-separated step list.
func runSOPWizard(doc *domain.SOPDoc) error {
	raw := ""
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Validate(validateNonEmpty).
				Value(&doc.Title),
			huh.NewText().
				Title("Steps, one per line").
				Validate(validateNonEmpty).
				Value(&raw),
		),
	).WithTheme(groundworkHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			doc.Steps = append(doc.Steps, line)
		}
	}
	return nil
}

func newSOPListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved procedures",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			docs, err := app.SOPs.List(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if len(docs) == 0 {
				fmt.Println(formatter.Dim("No procedures yet. Add one with `groundwork sop add <slug>`."))
				return nil
			}
			rows := make([][]string, 0, len(docs))
			for _, d := range docs {
				rows = append(rows, []string{d.Slug, d.Title, fmt.Sprintf("%d", len(d.Steps))})
			}
			fmt.Println(formatter.RenderTable([]string{"Slug", "Title", "Steps"}, rows))
			return nil
		},
	}
}

func newSOPShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <slug>",
		Short: "Print one procedure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			doc, err := app.SOPs.Get(cmd.Context(), userID, strings.ToLower(args[0]))
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no procedure %q: see `groundwork sop list`", args[0])
			}
			if err != nil {
				return err
			}
			var b strings.Builder
			for i, step := range doc.Steps {
				fmt.Fprintf(&b, "%d. %s\n", i+1, step)
			}
			fmt.Println(formatter.RenderBox(doc.Title, strings.TrimRight(b.String(), "\n")))
			return nil
		},
	}
}

func newSOPRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <slug>",
		Short: "Delete a procedure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(app)
			if err != nil {
				return err
			}
			err = app.SOPs.Delete(cmd.Context(), userID, strings.ToLower(args[0]))
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no procedure %q: see `groundwork sop list`", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Printf("Removed %s.\n", args[0])
			return nil
		},
	}
}
