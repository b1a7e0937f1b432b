package command

import (
	"github.com/spf13/cobra"

	"github.com/tingly-dev/bot-admin/internal/command/options"
	"github.com/tingly-dev/bot-admin/internal/db"
	"github.com/tingly-dev/bot-admin/internal/output"
	"github.com/tingly-dev/bot-admin/internal/typ"
)

// ListCommand represents the list bots command
func ListCommand(app *AppContext) *cobra.Command {
	var flags options.OutputFlags

	cmd := &cobra.Command{
		Use:   "list (--json | --yaml)",
		Short: "List managed bots",
		Long: `Print every bot as {bot: [...]} in JSON or YAML, in storage order.
Example: bot-admin list --yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return app.withStore(func(store *db.BotStore) error {
				bots, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				return output.Write(cmd.OutOrStdout(), flags.Format(), typ.BotList{Bot: bots})
			})
		},
	}

	options.AddOutputFlags(cmd, &flags)
	return cmd
}
