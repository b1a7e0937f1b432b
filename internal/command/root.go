package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tingly-dev/bot-admin/internal/constant"
	"github.com/tingly-dev/bot-admin/internal/logging"
)

// BuildInfo holds build information set by main from -ldflags
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
}

// NewRootCommand builds the bot-admin command tree.
// Running it without a subcommand prints usage and succeeds.
// Callers must call app.Close after Execute, whether or not it failed.
func NewRootCommand(app *AppContext, info BuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constant.AppName,
		Short: "Manage trading bot records",
		Long: `bot-admin manages the records describing trading bots in a local SQLite
database. The database path is read from the marker file (` + constant.MarkerFileName + `)
in the working directory; run "bot-admin init <db-path>" to create both.`,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.logCloser = logging.Setup(app.Verbose, app.LogFile, cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "write logs to a rotating file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&app.MarkerPath, "marker", constant.MarkerFileName, "marker file holding the database path")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Bot Admin CLI\n")
			fmt.Fprintf(out, "Version:    %s\n", info.Version)
			fmt.Fprintf(out, "Git Commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "Build Time: %s\n", info.BuildTime)
			fmt.Fprintf(out, "Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "Platform:   %s\n", info.Platform)
		},
	}
	rootCmd.AddCommand(versionCmd)

	rootCmd.AddCommand(AddCommand(app))
	rootCmd.AddCommand(UpdateCommand(app))
	rootCmd.AddCommand(RemoveCommand(app))
	rootCmd.AddCommand(GetCommand(app))
	rootCmd.AddCommand(ListCommand(app))
	rootCmd.AddCommand(InitCommand(app))

	return rootCmd
}
