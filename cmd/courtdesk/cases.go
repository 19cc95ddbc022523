package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"courtdesk/internal/bootstrap"
)

func newCaseCmd(flags *globalFlags) *cobra.Command {
	cases := &cobra.Command{Use: "case", Short: "Case registry commands"}

	var status string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List cases",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				items, err := app.CaseCLI.ListCases(context.Background(), status)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no cases")
					return nil
				}
				for _, c := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n", c.CaseNumber, c.Status, c.Type, c.Priority, c.Title)
				}
				return nil
			})
		},
	}
	listCmd.Flags().StringVar(&status, "status", "", "filter: active|pending|closed")

	showCmd := &cobra.Command{
		Use:   "show <case-number>",
		Short: "Show one case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				c, err := app.CaseCLI.GetCase(context.Background(), args[0])
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "case: %s\n", c.CaseNumber)
				_, _ = fmt.Fprintf(w, "title: %s\n", c.Title)
				_, _ = fmt.Fprintf(w, "type: %s\n", c.Type)
				_, _ = fmt.Fprintf(w, "status: %s\n", c.Status)
				_, _ = fmt.Fprintf(w, "priority: %s\n", c.Priority)
				_, _ = fmt.Fprintf(w, "judge: %s\n", c.Judge)
				_, _ = fmt.Fprintf(w, "next hearing: %s\n", c.NextHearing)
				_, _ = fmt.Fprintf(w, "opened: %s\n", c.CreatedAt)
				return nil
			})
		},
	}

	var title, caseType, judge, nextHearing, priority string
	addCmd := &cobra.Command{
		Use:   "add <case-number>",
		Short: "Open a new case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				c, err := app.CaseCLI.CreateCase(context.Background(), args[0], title, caseType, judge, nextHearing, priority)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "opened %s (%s)\n", c.CaseNumber, c.ID)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&title, "title", "", "case title")
	addCmd.Flags().StringVar(&caseType, "type", "civil", "criminal|civil|family|traffic")
	addCmd.Flags().StringVar(&judge, "judge", "", "presiding judge")
	addCmd.Flags().StringVar(&nextHearing, "next-hearing", "", "YYYY-MM-DD")
	addCmd.Flags().StringVar(&priority, "priority", "", "high|medium|low")
	_ = addCmd.MarkFlagRequired("title")

	statusCmd := &cobra.Command{
		Use:   "status <case-number> <active|pending|closed>",
		Short: "Change a case status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				c, err := app.CaseCLI.UpdateStatus(context.Background(), args[0], args[1])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", c.CaseNumber, c.Status)
				return nil
			})
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <case-number>",
		Short: "Remove a case from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				removed, err := app.CaseCLI.RemoveCase(context.Background(), args[0])
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("case %s not found", args[0])
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
				return nil
			})
		},
	}

	cases.AddCommand(listCmd, showCmd, addCmd, statusCmd, removeCmd)
	return cases
}
