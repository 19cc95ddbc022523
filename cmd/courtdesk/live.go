package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"courtdesk/internal/bootstrap"
)

func newLiveCmd(flags *globalFlags) *cobra.Command {
	live := &cobra.Command{Use: "live", Short: "Live transcription sessions"}

	var (
		caseNumber string
		language   string
		display    string
		duration   time.Duration
		pauseAt    time.Duration
		pauseFor   time.Duration
		save       bool
	)
	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a session against the mock feed in simulated time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := actor(flags)
			if err != nil {
				return err
			}
			if pauseAt < 0 || pauseAt > duration {
				return fmt.Errorf("--pause-at must fall within --duration")
			}
			return withApp(flags, func(app *bootstrap.App) error {
				ctx := context.Background()
				sim := app.NewSimulation(time.Now())
				defer sim.LiveCLI.Close()

				if err := sim.LiveCLI.Arm(ctx, r, caseNumber, language); err != nil {
					return err
				}
				if err := sim.LiveCLI.Start(ctx); err != nil {
					return err
				}
				if pauseFor > 0 {
					sim.Advance(pauseAt)
					if _, err := sim.LiveCLI.TogglePause(ctx); err != nil {
						return err
					}
					sim.Advance(pauseFor)
					if _, err := sim.LiveCLI.TogglePause(ctx); err != nil {
						return err
					}
					sim.Advance(duration - pauseAt)
				} else {
					sim.Advance(duration)
				}
				if err := sim.LiveCLI.Stop(ctx); err != nil {
					return err
				}
				if display != "" {
					if err := sim.LiveCLI.SetDisplayLanguage(ctx, display); err != nil {
						return err
					}
				}

				snap, err := sim.LiveCLI.Snapshot(ctx)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "%s  %s  elapsed %s  %d entries\n", snap.CaseNumber, snap.State, snap.Elapsed, len(snap.Entries))
				for _, e := range snap.Entries {
					_, _ = fmt.Fprintf(w, "%s %s (%d%%): %s\n", e.Timestamp, e.Speaker, e.Confidence, e.Text)
				}

				if !save {
					return sim.LiveCLI.Discard(ctx)
				}
				out, err := sim.LiveCLI.Save(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(w, "saved %s for %s (%s, %s)\n", out.RecordID, out.CaseNumber, out.Duration, out.FileSize)
				return nil
			})
		},
	}
	simulateCmd.Flags().StringVar(&caseNumber, "case", "", "case number")
	simulateCmd.Flags().StringVar(&language, "lang", "en", "capture language")
	simulateCmd.Flags().StringVar(&display, "display", "", "display language for the printed transcript")
	simulateCmd.Flags().DurationVar(&duration, "duration", 30*time.Second, "recording time, excluding pauses")
	simulateCmd.Flags().DurationVar(&pauseAt, "pause-at", 0, "pause after this much recording")
	simulateCmd.Flags().DurationVar(&pauseFor, "pause-for", 0, "length of the pause")
	simulateCmd.Flags().BoolVar(&save, "save", false, "save the session as a record")
	_ = simulateCmd.MarkFlagRequired("case")

	live.AddCommand(simulateCmd)
	return live
}
