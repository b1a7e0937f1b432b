package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tingly-dev/bot-admin/internal/command/options"
	"github.com/tingly-dev/bot-admin/internal/db"
)

// AddCommand represents the add bot command
func AddCommand(app *AppContext) *cobra.Command {
	var flags options.BotFlags

	cmd := &cobra.Command{
		Use:   "add --name <name> --description <text> --enable <true|false>",
		Short: "Add a bot to manage",
		Long: `Register a new bot. Storage assigns the id and token and records the
registration time.
Example: bot-admin add --name grid --description "BTC grid" --enable true --operation backtest`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			opts := options.ResolveBotOptions(cmd, flags)
			return app.withStore(func(store *db.BotStore) error {
				id, err := store.Add(cmd.Context(), opts)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added bot %d\n", id)
				return nil
			})
		},
	}

	options.AddBotFlags(cmd, &flags, true)
	return cmd
}
