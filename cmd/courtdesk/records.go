package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"courtdesk/internal/bootstrap"
	transcriptdto "courtdesk/internal/modules/transcript/dto"
)

func newRecordCmd(flags *globalFlags) *cobra.Command {
	records := &cobra.Command{Use: "record", Short: "Saved transcription records"}

	var caseNumber string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List records, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				items, err := app.TranscriptCLI.ListRecords(context.Background(), caseNumber)
				if err != nil {
					return err
				}
				printRecords(cmd.OutOrStdout(), items)
				return nil
			})
		},
	}
	listCmd.Flags().StringVar(&caseNumber, "case", "", "case number prefix")

	var language, search string
	showCmd := &cobra.Command{
		Use:   "show <record-id>",
		Short: "Show a record's entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				rec, err := app.TranscriptCLI.GetRecord(context.Background(), args[0], language, search)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "%s  %s\n", rec.CaseNumber, rec.CaseTitle)
				_, _ = fmt.Fprintf(w, "%s  %s  %s  clerk: %s\n", rec.Date, rec.Duration, rec.FileSize, rec.ClerkName)
				for _, e := range rec.Entries {
					mark := " "
					if e.IsBookmarked {
						mark = "*"
					}
					_, _ = fmt.Fprintf(w, "%s %s [%s] %s: %s\n", mark, e.Timestamp, e.ID, e.Speaker, e.Text)
					if rec.DisplayLanguage != "" && e.OriginalText != e.Text {
						_, _ = fmt.Fprintf(w, "    (%s)\n", e.OriginalText)
					}
				}
				return nil
			})
		},
	}
	showCmd.Flags().StringVar(&language, "lang", "", "display language code")
	showCmd.Flags().StringVar(&search, "search", "", "only entries matching text or speaker")

	removeCmd := &cobra.Command{
		Use:   "remove <record-id>",
		Short: "Delete a stored record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				removed, err := app.TranscriptCLI.RemoveRecord(context.Background(), args[0])
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("record %s is not stored", args[0])
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
				return nil
			})
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export <record-id>",
		Short: "Write a record as a markdown file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				path, err := app.TranscriptCLI.Export(context.Background(), args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			})
		},
	}

	bookmarkCmd := &cobra.Command{
		Use:   "bookmark <record-id> <entry-id>",
		Short: "Toggle the bookmark on a record entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				e, err := app.TranscriptCLI.ToggleBookmark(context.Background(), args[0], args[1])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s bookmarked=%t\n", e.ID, e.IsBookmarked)
				return nil
			})
		},
	}

	reindexCmd := &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the search index from the local store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				if err := app.TranscriptCLI.Reindex(context.Background()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex complete")
				return nil
			})
		},
	}

	var limit int
	searchCmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Search saved records by entry text, speaker or case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				items, err := app.TranscriptCLI.Search(context.Background(), args[0], limit)
				if err != nil {
					return err
				}
				printRecords(cmd.OutOrStdout(), items)
				return nil
			})
		},
	}
	searchCmd.Flags().IntVar(&limit, "limit", 20, "maximum results")

	records.AddCommand(listCmd, showCmd, removeCmd, exportCmd, bookmarkCmd, reindexCmd, searchCmd)
	return records
}

func printRecords(w io.Writer, items []transcriptdto.RecordOutput) {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(w, "no records")
		return
	}
	for _, r := range items {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d entries\t%s\n", r.ID, r.Date, r.CaseNumber, r.Duration, r.EntryCount, r.CaseTitle)
	}
}
