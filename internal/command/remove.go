package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tingly-dev/bot-admin/internal/db"
)

// RemoveCommand represents the remove bot command
func RemoveCommand(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove the target bot from management",
		Long: `Delete a bot by id.
Example: bot-admin remove 3
Use "--" when the id starts with a dash: bot-admin remove -- -1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			id, err := parseBotID("remove", args[0])
			if err != nil {
				return err
			}
			return app.withStore(func(store *db.BotStore) error {
				if err := store.Remove(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed bot %d\n", id)
				return nil
			})
		},
	}

	return cmd
}
