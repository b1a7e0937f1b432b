package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tingly-dev/bot-admin/internal/config"
	"github.com/tingly-dev/bot-admin/internal/db"
	"github.com/tingly-dev/bot-admin/pkg/fs"
)

// InitCommand creates the bot table and points the marker file at the database
func InitCommand(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <db-path>",
		Short: "Create the bot database and write the marker file",
		Long: `Create the database file and bot table if they do not exist, then record
the database path in the marker file of the working directory.
An existing bot table is left untouched.
Example: bot-admin init ~/.bot-admin/bot.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			dbPath, err := fs.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve database path: %w", err)
			}

			store, err := db.OpenBotStore(dbPath, append([]db.StoreOption{db.WithCreate()}, app.storeOptions...)...)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.EnsureSchema(); err != nil {
				return err
			}
			count, err := store.Count(cmd.Context())
			if err != nil {
				return err
			}

			written, err := config.WriteDBPath(app.MarkerPath, store.Path())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized bot database at %s (%d bots)\n", written, count)
			return nil
		},
	}

	return cmd
}
