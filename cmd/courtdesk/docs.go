package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"courtdesk/internal/bootstrap"
)

func newDocCmd(flags *globalFlags) *cobra.Command {
	docs := &cobra.Command{Use: "doc", Short: "Court document drafts"}

	var caseNumber string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				items, err := app.DocumentCLI.ListDocuments(context.Background(), caseNumber)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no documents")
					return nil
				}
				for _, d := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Status, d.Kind, d.CaseNumber, d.Title)
				}
				return nil
			})
		},
	}
	listCmd.Flags().StringVar(&caseNumber, "case", "", "only documents for this case")

	var title, kind, contentFile string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a draft",
		RunE: func(cmd *cobra.Command, _ []string) error {
			content, err := readContent(contentFile)
			if err != nil {
				return err
			}
			return withApp(flags, func(app *bootstrap.App) error {
				d, err := app.DocumentCLI.SaveDocument(context.Background(), "", title, caseNumber, kind, content)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "drafted %s (%s)\n", d.Title, d.ID)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&title, "title", "", "document title")
	addCmd.Flags().StringVar(&caseNumber, "case", "", "case number")
	addCmd.Flags().StringVar(&kind, "kind", "order", "order|judgment|motion|notice")
	addCmd.Flags().StringVar(&contentFile, "content-file", "", "markdown body file")
	_ = addCmd.MarkFlagRequired("title")

	var editTitle, editFile string
	editCmd := &cobra.Command{
		Use:   "edit <document-id>",
		Short: "Update a draft's title or body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(editFile)
			if err != nil {
				return err
			}
			return withApp(flags, func(app *bootstrap.App) error {
				d, err := app.DocumentCLI.SaveDocument(context.Background(), args[0], editTitle, "", "", content)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s at %s\n", d.ID, d.UpdatedAt)
				return nil
			})
		},
	}
	editCmd.Flags().StringVar(&editTitle, "title", "", "new title")
	editCmd.Flags().StringVar(&editFile, "content-file", "", "new markdown body file")

	finalizeCmd := &cobra.Command{
		Use:   "finalize <document-id>",
		Short: "Finalize a draft (judge only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := actor(flags)
			if err != nil {
				return err
			}
			return withApp(flags, func(app *bootstrap.App) error {
				d, err := app.DocumentCLI.FinalizeDocument(context.Background(), r, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is %s\n", d.Title, d.Status)
				return nil
			})
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <document-id>",
		Short: "Delete a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				removed, err := app.DocumentCLI.RemoveDocument(context.Background(), args[0])
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("document %s not found", args[0])
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
				return nil
			})
		},
	}

	docs.AddCommand(listCmd, addCmd, editCmd, finalizeCmd, removeCmd)
	return docs
}

func readContent(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read content: %w", err)
	}
	return string(raw), nil
}
