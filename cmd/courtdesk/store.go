package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"courtdesk/internal/bootstrap"
)

func newStoreCmd(flags *globalFlags) *cobra.Command {
	store := &cobra.Command{Use: "store", Short: "Inspect or reset the local store"}

	store.AddCommand(&cobra.Command{
		Use:   "keys",
		Short: "List the keys written to the local store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				keys, err := app.StoreKeys()
				if err != nil {
					return err
				}
				for _, key := range keys {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), key)
				}
				return nil
			})
		},
	})

	store.AddCommand(&cobra.Command{
		Use:   "reset [key...]",
		Short: "Delete store keys so their data starts again from seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				removed, err := app.ResetStore(context.Background(), args...)
				if err != nil {
					return err
				}
				for _, key := range removed {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reset %s\n", key)
				}
				return nil
			})
		},
	})
	return store
}
