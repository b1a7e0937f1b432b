package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tingly-dev/bot-admin/internal/command/options"
	"github.com/tingly-dev/bot-admin/internal/db"
)

// UpdateCommand represents the update bot command
func UpdateCommand(app *AppContext) *cobra.Command {
	var flags options.BotFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the target bot",
		Long: `Update the given fields of a bot. Fields that are not passed keep their value.
Example: bot-admin update 3 --enable false
Put flags before "--" when the id starts with a dash.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			id, err := parseBotID("update", args[0])
			if err != nil {
				return err
			}
			opts := options.ResolveBotOptions(cmd, flags)
			if err := opts.ValidateForUpdate(); err != nil {
				return err
			}

			return app.withStore(func(store *db.BotStore) error {
				if err := store.Update(cmd.Context(), id, opts); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated bot %d\n", id)
				return nil
			})
		},
	}

	options.AddBotFlags(cmd, &flags, false)
	return cmd
}
