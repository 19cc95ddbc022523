package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"courtdesk/internal/bootstrap"
	"courtdesk/internal/platform/config"
	"courtdesk/internal/platform/logger"
	"courtdesk/internal/platform/role"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalFlags struct {
	dataDir    string
	configPath string
	role       string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "courtdesk",
		Short:         "Courtroom transcription and case desk",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.dataDir, "data", ".courtdesk", "data directory")
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default <data>/courtdesk.yaml)")
	root.PersistentFlags().StringVar(&flags.role, "role", "clerk", "acting role: judge|clerk")

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newTranslateCmd(flags))
	root.AddCommand(newLanguagesCmd(flags))
	root.AddCommand(newCaseCmd(flags))
	root.AddCommand(newRecordCmd(flags))
	root.AddCommand(newLiveCmd(flags))
	root.AddCommand(newDocCmd(flags))
	root.AddCommand(newStoreCmd(flags))
	return root
}

// withApp opens the app for the duration of fn. Logs always go to the log
// file so they never interleave with command output or the TUI.
func withApp(flags *globalFlags, fn func(app *bootstrap.App) error) error {
	cfg, err := config.Load(flags.dataDir, flags.configPath)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogMode, cfg.LogPath)
	if err != nil {
		return err
	}
	defer log.Sync()

	app, err := bootstrap.New(cfg, log)
	if err != nil {
		return err
	}
	runErr := fn(app)
	if err := app.Close(); err != nil && runErr == nil {
		return err
	}
	return runErr
}

func actor(flags *globalFlags) (role.Role, error) {
	return role.Parse(flags.role)
}

func newTUICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI for the acting role",
		RunE: func(_ *cobra.Command, _ []string) error {
			r, err := actor(flags)
			if err != nil {
				return err
			}
			return withApp(flags, func(app *bootstrap.App) error {
				return bootstrap.RunTUI(context.Background(), app, r)
			})
		},
	}
}

func newTranslateCmd(flags *globalFlags) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "translate <text>",
		Short: "Look up the exact translation of an English phrase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.TranslationCLI.Translate(context.Background(), args[0], to)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Text)
				if !out.Matched {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "no %s phrase for this text; showing original\n", out.Language)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&to, "to", "ar", "target language code")
	return cmd
}

func newLanguagesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported display languages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				langs, err := app.TranslationCLI.Languages(context.Background())
				if err != nil {
					return err
				}
				for _, l := range langs {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d phrases\n", l.Code, l.Name, l.Phrases)
				}
				return nil
			})
		},
	}
}
