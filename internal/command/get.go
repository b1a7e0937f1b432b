package command

import (
	"github.com/spf13/cobra"

	"github.com/tingly-dev/bot-admin/internal/command/options"
	"github.com/tingly-dev/bot-admin/internal/db"
	"github.com/tingly-dev/bot-admin/internal/output"
)

// GetCommand represents the get bot command
func GetCommand(app *AppContext) *cobra.Command {
	var flags options.OutputFlags

	cmd := &cobra.Command{
		Use:   "get <id> (--json | --yaml)",
		Short: "Get the target bot",
		Long: `Print one bot as JSON or YAML.
Example: bot-admin get 3 --json
Put flags before "--" when the id starts with a dash: bot-admin get --json -- -1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			id, err := parseBotID("get", args[0])
			if err != nil {
				return err
			}
			return app.withStore(func(store *db.BotStore) error {
				bot, err := store.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				return output.Write(cmd.OutOrStdout(), flags.Format(), bot)
			})
		},
	}

	options.AddOutputFlags(cmd, &flags)
	return cmd
}
